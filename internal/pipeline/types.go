package pipeline

import (
	"io"
	"time"

	"salesreport-srv/internal/model"
)

// Error kinds recorded on failed jobs, one per pipeline stage.
const (
	ErrorKindParse    = "PARSE"
	ErrorKindAgent    = "AGENT"
	ErrorKindStore    = "STORE"
	ErrorKindRate     = "RATE"
	ErrorKindInternal = "INTERNAL"
)

type UploadInput struct {
	FileName string
	Reader   io.Reader
	Size     int64
}

type UploadOutput struct {
	JobID    string
	FileName string
	Status   model.JobStatus
}

type ProcessInput struct {
	JobID string
}

type ProcessOutput struct {
	JobID   string
	Status  model.JobStatus
	Message string
}

type GetStatusInput struct {
	JobID string
}

type StatusOutput struct {
	Job *model.UploadJob
}

type GetReportInput struct {
	JobID string
}

type ReportOutput struct {
	Job  *model.UploadJob
	Rows []model.ReportRow
}

type GetLogInput struct {
	JobID string
	// Since is the number of entries the client has already seen; only
	// entries from that offset onward are returned.
	Since int
}

type LogOutput struct {
	Entries []model.LogEntry
	// Next is the offset to pass as Since on the following poll.
	Next int
}

// JobResult is the event published when a job reaches a terminal state.
type JobResult struct {
	JobID      string    `json:"job_id"`
	FileName   string    `json:"file_name"`
	Status     string    `json:"status"`
	RowCount   int       `json:"row_count"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	Error      string    `json:"error,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}

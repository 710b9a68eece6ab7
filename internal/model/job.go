package model

import "time"

// JobStatus is the lifecycle state of an upload job.
type JobStatus string

const (
	JobStatusUploaded   JobStatus = "UPLOADED"
	JobStatusProcessing JobStatus = "PROCESSING"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusFailed     JobStatus = "FAILED"
)

// Terminal reports whether the status admits no further transitions.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// UploadJob represents one upload-to-report processing run. Created on
// upload, mutated only by the pipeline, retained for log retrieval.
type UploadJob struct {
	ID       string
	FileName string
	FileURL  string // s3://bucket/object reference to the raw CSV
	Status   JobStatus

	// Terminal error, set only when Status is FAILED.
	ErrorKind    string
	ErrorMessage string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// LogLevel is the severity of a job log entry.
type LogLevel string

const (
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

// LogEntry is one record in a job's append-only log stream.
type LogEntry struct {
	Timestamp time.Time `json:"ts"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
}

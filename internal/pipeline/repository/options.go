package repository

import (
	"time"

	"salesreport-srv/internal/model"
)

type CreateJobOptions struct {
	ID       string
	FileName string
	FileURL  string
}

type UpdateCompletedOptions struct {
	JobID       string
	CompletedAt time.Time
}

type UpdateFailedOptions struct {
	JobID        string
	ErrorKind    string
	ErrorMessage string
}

type GetRegionalDataOptions struct {
	Products []string
}

type SaveReportRowsOptions struct {
	JobID string
	Rows  []model.ReportRow
}

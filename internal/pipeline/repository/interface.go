package repository

import (
	"context"

	"salesreport-srv/internal/model"
)

//go:generate mockery --name JobRepository
type JobRepository interface {
	CreateJob(ctx context.Context, opts CreateJobOptions) (*model.UploadJob, error)
	GetJobByID(ctx context.Context, id string) (*model.UploadJob, error)
	UpdateProcessing(ctx context.Context, jobID string) error
	UpdateCompleted(ctx context.Context, opts UpdateCompletedOptions) error
	UpdateFailed(ctx context.Context, opts UpdateFailedOptions) error
	ListJobsByStatus(ctx context.Context, status model.JobStatus) ([]*model.UploadJob, error)
	SaveReportRows(ctx context.Context, opts SaveReportRowsOptions) error
	GetReportRows(ctx context.Context, jobID string) ([]model.ReportRow, error)
}

//go:generate mockery --name RegionalDataRepository
type RegionalDataRepository interface {
	// GetRegionalData returns every record whose product matches one of the
	// given names, compared case-insensitively.
	GetRegionalData(ctx context.Context, opts GetRegionalDataOptions) ([]model.RegionalRecord, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	JobRepository
	RegionalDataRepository
}

// LogRepository is the append-only per-job processing log.
//
//go:generate mockery --name LogRepository
type LogRepository interface {
	Append(ctx context.Context, jobID string, entry model.LogEntry) error
	Range(ctx context.Context, jobID string, since int) ([]model.LogEntry, error)
	Length(ctx context.Context, jobID string) (int, error)
}

package pipeline

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Upload(ctx context.Context, input UploadInput) (UploadOutput, error)
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	GetStatus(ctx context.Context, input GetStatusInput) (StatusOutput, error)
	GetReport(ctx context.Context, input GetReportInput) (ReportOutput, error)
	GetLog(ctx context.Context, input GetLogInput) (LogOutput, error)

	// ReconcileAbandoned marks jobs left in PROCESSING by a previous run as
	// failed. Called once at startup, before the server accepts traffic.
	ReconcileAbandoned(ctx context.Context) (int, error)
}

// EventPublisher emits a terminal-state event for every finished job. A nil
// publisher disables event emission.
type EventPublisher interface {
	PublishJobResult(ctx context.Context, result JobResult) error
}

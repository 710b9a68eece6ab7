package usecase

import (
	"context"

	"salesreport-srv/internal/model"
	"salesreport-srv/internal/pipeline"
	"salesreport-srv/internal/pipeline/repository"
)

const abandonedMessage = "processing interrupted by service restart"

// ReconcileAbandoned fails every job stuck in PROCESSING. Background runs do
// not survive a restart, so at startup any job still in that state can never
// finish on its own.
func (uc *implUseCase) ReconcileAbandoned(ctx context.Context) (int, error) {
	jobs, err := uc.repo.ListJobsByStatus(ctx, model.JobStatusProcessing)
	if err != nil {
		uc.l.Errorf(ctx, "pipeline.usecase.ReconcileAbandoned: Failed to list processing jobs: %v", err)
		return 0, err
	}

	reconciled := 0
	for _, job := range jobs {
		if err := uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
			JobID:        job.ID,
			ErrorKind:    pipeline.ErrorKindInternal,
			ErrorMessage: abandonedMessage,
		}); err != nil {
			uc.l.Errorf(ctx, "pipeline.usecase.ReconcileAbandoned: Failed to fail job %s: %v", job.ID, err)
			continue
		}
		uc.appendLog(ctx, job.ID, model.LogLevelError, "Processing failed: %s", abandonedMessage)
		reconciled++
	}

	if reconciled > 0 {
		uc.l.Infof(ctx, "pipeline.usecase.ReconcileAbandoned: Marked %d abandoned jobs as failed", reconciled)
	}

	return reconciled, nil
}

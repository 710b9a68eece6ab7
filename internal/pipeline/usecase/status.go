package usecase

import (
	"context"

	"salesreport-srv/internal/model"
	"salesreport-srv/internal/pipeline"
	"salesreport-srv/internal/pipeline/repository"
)

// GetStatus returns the current lifecycle state of a job.
func (uc *implUseCase) GetStatus(ctx context.Context, input pipeline.GetStatusInput) (pipeline.StatusOutput, error) {
	job, err := uc.getJob(ctx, input.JobID)
	if err != nil {
		return pipeline.StatusOutput{}, err
	}
	return pipeline.StatusOutput{Job: job}, nil
}

// GetReport returns the consolidated report of a completed job.
func (uc *implUseCase) GetReport(ctx context.Context, input pipeline.GetReportInput) (pipeline.ReportOutput, error) {
	job, err := uc.getJob(ctx, input.JobID)
	if err != nil {
		return pipeline.ReportOutput{}, err
	}

	if job.Status != model.JobStatusCompleted {
		return pipeline.ReportOutput{}, pipeline.ErrReportNotReady
	}

	rows, err := uc.repo.GetReportRows(ctx, job.ID)
	if err != nil {
		uc.l.Errorf(ctx, "pipeline.usecase.GetReport: Failed to load report rows: %v", err)
		return pipeline.ReportOutput{}, err
	}

	return pipeline.ReportOutput{
		Job:  job,
		Rows: rows,
	}, nil
}

// GetLog returns job log entries from the client's offset onward. Clients
// poll by passing the returned Next as the following Since.
func (uc *implUseCase) GetLog(ctx context.Context, input pipeline.GetLogInput) (pipeline.LogOutput, error) {
	if input.Since < 0 {
		return pipeline.LogOutput{}, pipeline.ErrInvalidLogOffset
	}

	if _, err := uc.getJob(ctx, input.JobID); err != nil {
		return pipeline.LogOutput{}, err
	}

	entries, err := uc.logRepo.Range(ctx, input.JobID, input.Since)
	if err != nil {
		uc.l.Errorf(ctx, "pipeline.usecase.GetLog: Failed to read log: %v", err)
		return pipeline.LogOutput{}, err
	}

	return pipeline.LogOutput{
		Entries: entries,
		Next:    input.Since + len(entries),
	}, nil
}

func (uc *implUseCase) getJob(ctx context.Context, jobID string) (*model.UploadJob, error) {
	job, err := uc.repo.GetJobByID(ctx, jobID)
	if err == repository.ErrJobNotFound {
		return nil, pipeline.ErrJobNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "pipeline.usecase.getJob: Failed to get job %s: %v", jobID, err)
		return nil, err
	}
	return job, nil
}

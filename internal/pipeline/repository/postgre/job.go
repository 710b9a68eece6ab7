package postgre

import (
	"context"
	"database/sql"
	"time"

	"salesreport-srv/internal/model"
	"salesreport-srv/internal/pipeline/repository"
)

// CreateJob - Insert a new upload job in UPLOADED state.
func (r *implRepository) CreateJob(ctx context.Context, opts repository.CreateJobOptions) (*model.UploadJob, error) {
	now := time.Now()

	const q = `
		INSERT INTO upload_jobs (id, file_name, file_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)`
	if _, err := r.db.ExecContext(ctx, q, opts.ID, opts.FileName, opts.FileURL, model.JobStatusUploaded, now); err != nil {
		r.l.Errorf(ctx, "pipeline.repository.postgre.CreateJob: Failed to insert job: %v", err)
		return nil, repository.ErrJobCreateFailed
	}

	return &model.UploadJob{
		ID:        opts.ID,
		FileName:  opts.FileName,
		FileURL:   opts.FileURL,
		Status:    model.JobStatusUploaded,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetJobByID - Get job by primary key.
func (r *implRepository) GetJobByID(ctx context.Context, id string) (*model.UploadJob, error) {
	const q = `
		SELECT id, file_name, file_url, status, COALESCE(error_kind, ''), COALESCE(error_message, ''),
		       created_at, updated_at, completed_at
		FROM upload_jobs
		WHERE id = $1`

	job, err := scanJob(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrJobNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "pipeline.repository.postgre.GetJobByID: Failed to get job: %v", err)
		return nil, err
	}

	return job, nil
}

// UpdateProcessing - Move a job into PROCESSING and clear any previous error.
func (r *implRepository) UpdateProcessing(ctx context.Context, jobID string) error {
	const q = `
		UPDATE upload_jobs
		SET status = $2, error_kind = NULL, error_message = NULL, updated_at = $3
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, jobID, model.JobStatusProcessing, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "pipeline.repository.postgre.UpdateProcessing: Failed to update job: %v", err)
		return repository.ErrJobUpdateFailed
	}
	return checkAffected(res)
}

// UpdateCompleted - Mark job as COMPLETED.
func (r *implRepository) UpdateCompleted(ctx context.Context, opts repository.UpdateCompletedOptions) error {
	const q = `
		UPDATE upload_jobs
		SET status = $2, completed_at = $3, updated_at = $4
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, opts.JobID, model.JobStatusCompleted, opts.CompletedAt, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "pipeline.repository.postgre.UpdateCompleted: Failed to update job: %v", err)
		return repository.ErrJobUpdateFailed
	}
	return checkAffected(res)
}

// UpdateFailed - Mark job as FAILED with error kind and message.
func (r *implRepository) UpdateFailed(ctx context.Context, opts repository.UpdateFailedOptions) error {
	const q = `
		UPDATE upload_jobs
		SET status = $2, error_kind = $3, error_message = $4, completed_at = $5, updated_at = $5
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, opts.JobID, model.JobStatusFailed, opts.ErrorKind, opts.ErrorMessage, time.Now())
	if err != nil {
		r.l.Errorf(ctx, "pipeline.repository.postgre.UpdateFailed: Failed to update job: %v", err)
		return repository.ErrJobUpdateFailed
	}
	return checkAffected(res)
}

// ListJobsByStatus - List all jobs currently in the given status.
func (r *implRepository) ListJobsByStatus(ctx context.Context, status model.JobStatus) ([]*model.UploadJob, error) {
	const q = `
		SELECT id, file_name, file_url, status, COALESCE(error_kind, ''), COALESCE(error_message, ''),
		       created_at, updated_at, completed_at
		FROM upload_jobs
		WHERE status = $1
		ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, q, status)
	if err != nil {
		r.l.Errorf(ctx, "pipeline.repository.postgre.ListJobsByStatus: Failed to list jobs: %v", err)
		return nil, err
	}
	defer rows.Close()

	var jobs []*model.UploadJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			r.l.Errorf(ctx, "pipeline.repository.postgre.ListJobsByStatus: Failed to scan job: %v", err)
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*model.UploadJob, error) {
	var (
		job         model.UploadJob
		completedAt sql.NullTime
	)
	err := row.Scan(
		&job.ID, &job.FileName, &job.FileURL, &job.Status,
		&job.ErrorKind, &job.ErrorMessage,
		&job.CreatedAt, &job.UpdatedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		job.CompletedAt = &completedAt.Time
	}
	return &job, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrJobNotFound
	}
	return nil
}

package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"salesreport-srv/internal/model"
	"salesreport-srv/internal/pipeline"
	"salesreport-srv/internal/pipeline/repository"
	"salesreport-srv/pkg/minio"
)

// Upload stores the raw CSV in object storage and registers a job in UPLOADED
// state. Processing does not start until the job is explicitly triggered.
func (uc *implUseCase) Upload(ctx context.Context, input pipeline.UploadInput) (pipeline.UploadOutput, error) {
	if !strings.EqualFold(filepath.Ext(input.FileName), ".csv") {
		return pipeline.UploadOutput{}, pipeline.ErrInvalidFile
	}

	jobID := uuid.New().String()
	objectName := fmt.Sprintf("uploads/%s.csv", jobID)

	_, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.config.UploadBucket,
		ObjectName:  objectName,
		Reader:      input.Reader,
		Size:        input.Size,
		ContentType: "text/csv",
		Metadata: map[string]string{
			"job_id":             jobID,
			"original_file_name": input.FileName,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "pipeline.usecase.Upload: Failed to store file: %v", err)
		return pipeline.UploadOutput{}, pipeline.ErrUploadFailed
	}

	job, err := uc.repo.CreateJob(ctx, repository.CreateJobOptions{
		ID:       jobID,
		FileName: input.FileName,
		FileURL:  minio.FormatObjectURL(uc.config.UploadBucket, objectName),
	})
	if err != nil {
		uc.l.Errorf(ctx, "pipeline.usecase.Upload: Failed to create job: %v", err)
		return pipeline.UploadOutput{}, pipeline.ErrUploadFailed
	}

	uc.appendLog(ctx, job.ID, model.LogLevelInfo, "File %s uploaded", input.FileName)

	return pipeline.UploadOutput{
		JobID:    job.ID,
		FileName: job.FileName,
		Status:   job.Status,
	}, nil
}

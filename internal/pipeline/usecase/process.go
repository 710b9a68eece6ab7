package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"salesreport-srv/internal/extraction"
	"salesreport-srv/internal/model"
	"salesreport-srv/internal/pipeline"
	"salesreport-srv/internal/pipeline/repository"
	"salesreport-srv/pkg/minio"
)

// Process triggers the background run for an uploaded job.
// Flow: load job → reject running/finished jobs → claim the run → mark
// PROCESSING → kick off background processing.
func (uc *implUseCase) Process(ctx context.Context, input pipeline.ProcessInput) (pipeline.ProcessOutput, error) {
	job, err := uc.repo.GetJobByID(ctx, input.JobID)
	if err != nil {
		if err == repository.ErrJobNotFound {
			return pipeline.ProcessOutput{}, pipeline.ErrJobNotFound
		}
		uc.l.Errorf(ctx, "pipeline.usecase.Process: Failed to get job: %v", err)
		return pipeline.ProcessOutput{}, err
	}

	if job.Status == model.JobStatusProcessing {
		return pipeline.ProcessOutput{}, pipeline.ErrJobAlreadyRunning
	}
	if job.Status.Terminal() {
		return pipeline.ProcessOutput{}, pipeline.ErrJobFinished
	}

	if !uc.runner.acquire(job.ID) {
		return pipeline.ProcessOutput{}, pipeline.ErrJobAlreadyRunning
	}

	if err := uc.repo.UpdateProcessing(ctx, job.ID); err != nil {
		uc.runner.release(job.ID)
		uc.l.Errorf(ctx, "pipeline.usecase.Process: Failed to mark job processing: %v", err)
		return pipeline.ProcessOutput{}, err
	}

	go uc.processInBackground(job)

	return pipeline.ProcessOutput{
		JobID:   job.ID,
		Status:  model.JobStatusProcessing,
		Message: "Processing started",
	}, nil
}

// processInBackground runs the full pipeline for one job.
// This is called in a goroutine and must handle its own errors.
//
// Pipeline: download → parse → extract products → regional lookup →
// rate snapshot → convert + consolidate → persist report
func (uc *implUseCase) processInBackground(job *model.UploadJob) {
	ctx, cancel := context.WithTimeout(context.Background(), uc.config.JobTimeout)
	defer cancel()
	defer uc.runner.release(job.ID)

	start := time.Now()
	defer func() {
		uc.l.Infof(ctx, "pipeline.usecase.processInBackground: Run for job %s finished in %.1fs", job.ID, time.Since(start).Seconds())
	}()

	// Panic recovery
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "pipeline.usecase.processInBackground: panic recovered: %v", r)
			uc.fail(ctx, job, pipeline.ErrorKindInternal, fmt.Sprintf("internal panic: %v", r))
		}
	}()

	uc.l.Infof(ctx, "pipeline.usecase.processInBackground: Starting run for job %s", job.ID)
	uc.appendLog(ctx, job.ID, model.LogLevelInfo, "Processing started for %s", job.FileName)

	// Phase 1: Download the raw CSV
	data, err := uc.downloadCSV(ctx, job)
	if err != nil {
		uc.l.Errorf(ctx, "pipeline.usecase.processInBackground: Download failed: %v", err)
		uc.fail(ctx, job, pipeline.ErrorKindInternal, fmt.Sprintf("failed to read uploaded file: %v", err))
		return
	}

	// Phase 2: Parse and validate
	rows, skippedRows, err := parseRows(data)
	if err != nil {
		uc.fail(ctx, job, pipeline.ErrorKindParse, fmt.Sprintf("failed to parse CSV: %v", err))
		return
	}
	uc.appendLog(ctx, job.ID, model.LogLevelInfo, "Parsed %d data rows", len(rows))
	if skippedRows > 0 {
		uc.appendLog(ctx, job.ID, model.LogLevelWarn, "Skipped %d malformed rows", skippedRows)
	}

	// Phase 3: Extract product identifiers via the agent
	extracted, err := uc.extractor.Extract(ctx, extraction.ExtractInput{CSV: string(data)})
	if err != nil {
		uc.fail(ctx, job, pipeline.ErrorKindAgent, fmt.Sprintf("product extraction failed: %v", err))
		return
	}
	products := extracted.Products
	if len(products) == 0 {
		uc.appendLog(ctx, job.ID, model.LogLevelWarn, "No products extracted, report is empty")
		uc.complete(ctx, job, nil)
		return
	}
	uc.appendLog(ctx, job.ID, model.LogLevelInfo, "Extracted %d products: %s", len(products), strings.Join(products, ", "))

	// Phase 4: Regional data lookup, retried once on failure
	records, err := uc.lookupRegionalData(ctx, products)
	if err != nil {
		uc.fail(ctx, job, pipeline.ErrorKindStore, fmt.Sprintf("regional data lookup failed: %v", err))
		return
	}
	uc.appendLog(ctx, job.ID, model.LogLevelInfo, "Found %d regional records", len(records))

	// Phase 5: One exchange-rate snapshot for the whole job
	rate, err := uc.fetchRate(ctx)
	if err != nil {
		uc.fail(ctx, job, pipeline.ErrorKindRate, fmt.Sprintf("exchange rate fetch failed: %v", err))
		return
	}
	uc.appendLog(ctx, job.ID, model.LogLevelInfo, "Fetched USD to EUR rate %s", rate.Rate)

	// Phase 6: Consolidate
	reportRows, missing := buildReportRows(products, records, rate.Rate)
	for _, product := range missing {
		uc.appendLog(ctx, job.ID, model.LogLevelWarn, "No regional data found for product %s", product)
	}

	uc.complete(ctx, job, reportRows)
}

func (uc *implUseCase) downloadCSV(ctx context.Context, job *model.UploadJob) ([]byte, error) {
	bucket, objectName, err := minio.ParseObjectURL(job.FileURL)
	if err != nil {
		return nil, err
	}

	reader, err := uc.storage.DownloadFile(ctx, &minio.DownloadRequest{
		BucketName: bucket,
		ObjectName: objectName,
	})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

func (uc *implUseCase) lookupRegionalData(ctx context.Context, products []string) ([]model.RegionalRecord, error) {
	opts := repository.GetRegionalDataOptions{Products: products}

	lookupCtx, cancel := context.WithTimeout(ctx, uc.config.LookupTimeout)
	records, err := uc.repo.GetRegionalData(lookupCtx, opts)
	cancel()
	if err == nil {
		return records, nil
	}
	uc.l.Warnf(ctx, "pipeline.usecase.lookupRegionalData: First attempt failed, retrying: %v", err)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(500 * time.Millisecond):
	}

	lookupCtx, cancel = context.WithTimeout(ctx, uc.config.LookupTimeout)
	defer cancel()
	return uc.repo.GetRegionalData(lookupCtx, opts)
}

func (uc *implUseCase) fetchRate(ctx context.Context) (model.ExchangeRate, error) {
	rateCtx, cancel := context.WithTimeout(ctx, uc.config.RateTimeout)
	defer cancel()

	rate, err := uc.rates.GetRate(rateCtx, "USD", "EUR")
	if err != nil {
		return model.ExchangeRate{}, err
	}

	return model.ExchangeRate{
		From:      "USD",
		To:        "EUR",
		Rate:      rate,
		FetchedAt: time.Now(),
	}, nil
}

// complete persists the report, marks the job COMPLETED and emits the
// terminal event.
func (uc *implUseCase) complete(ctx context.Context, job *model.UploadJob, rows []model.ReportRow) {
	if err := uc.repo.SaveReportRows(ctx, repository.SaveReportRowsOptions{
		JobID: job.ID,
		Rows:  rows,
	}); err != nil {
		uc.fail(ctx, job, pipeline.ErrorKindInternal, fmt.Sprintf("failed to persist report: %v", err))
		return
	}

	completedAt := time.Now()
	if err := uc.repo.UpdateCompleted(ctx, repository.UpdateCompletedOptions{
		JobID:       job.ID,
		CompletedAt: completedAt,
	}); err != nil {
		uc.l.Errorf(ctx, "pipeline.usecase.complete: Failed to mark job completed: %v", err)
		return
	}

	uc.appendLog(ctx, job.ID, model.LogLevelInfo, "Processing completed, report contains %d rows", len(rows))
	uc.l.Infof(ctx, "pipeline.usecase.complete: Job %s completed with %d rows", job.ID, len(rows))

	uc.publishResult(ctx, pipeline.JobResult{
		JobID:      job.ID,
		FileName:   job.FileName,
		Status:     string(model.JobStatusCompleted),
		RowCount:   len(rows),
		FinishedAt: completedAt,
	})
}

// fail marks the job FAILED. Log entries written before the failure stay
// available to pollers.
func (uc *implUseCase) fail(ctx context.Context, job *model.UploadJob, kind, message string) {
	// The run context may already be expired; the failure must still be
	// recorded.
	if ctx.Err() != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
	}

	uc.appendLog(ctx, job.ID, model.LogLevelError, "Processing failed: %s", message)

	if err := uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
		JobID:        job.ID,
		ErrorKind:    kind,
		ErrorMessage: message,
	}); err != nil {
		uc.l.Errorf(ctx, "pipeline.usecase.fail: Failed to mark job failed: %v", err)
	}

	uc.publishResult(ctx, pipeline.JobResult{
		JobID:      job.ID,
		FileName:   job.FileName,
		Status:     string(model.JobStatusFailed),
		ErrorKind:  kind,
		Error:      message,
		FinishedAt: time.Now(),
	})
}

func (uc *implUseCase) publishResult(ctx context.Context, result pipeline.JobResult) {
	if uc.events == nil {
		return
	}
	if err := uc.events.PublishJobResult(ctx, result); err != nil {
		uc.l.Warnf(ctx, "pipeline.usecase.publishResult: Failed to publish result for job %s: %v", result.JobID, err)
	}
}

package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"salesreport-srv/internal/extraction"
	"salesreport-srv/internal/model"
	"salesreport-srv/internal/pipeline"
	"salesreport-srv/internal/pipeline/repository"
	"salesreport-srv/pkg/log"
	"salesreport-srv/pkg/minio"
)

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "console"})
}

// fakeRepo is an in-memory PostgresRepository. done receives the job ID once
// a job reaches a terminal state, so tests can wait for background runs.
type fakeRepo struct {
	mu          sync.Mutex
	jobs        map[string]*model.UploadJob
	rows        map[string][]model.ReportRow
	records     []model.RegionalRecord
	lookupFails int
	lookupCalls int
	done        chan string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		jobs: make(map[string]*model.UploadJob),
		rows: make(map[string][]model.ReportRow),
		done: make(chan string, 4),
	}
}

func (r *fakeRepo) CreateJob(ctx context.Context, opts repository.CreateJobOptions) (*model.UploadJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	job := &model.UploadJob{
		ID:        opts.ID,
		FileName:  opts.FileName,
		FileURL:   opts.FileURL,
		Status:    model.JobStatusUploaded,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.jobs[job.ID] = job
	copy := *job
	return &copy, nil
}

func (r *fakeRepo) GetJobByID(ctx context.Context, id string) (*model.UploadJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, repository.ErrJobNotFound
	}
	copy := *job
	return &copy, nil
}

func (r *fakeRepo) UpdateProcessing(ctx context.Context, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return repository.ErrJobNotFound
	}
	job.Status = model.JobStatusProcessing
	job.ErrorKind = ""
	job.ErrorMessage = ""
	return nil
}

func (r *fakeRepo) UpdateCompleted(ctx context.Context, opts repository.UpdateCompletedOptions) error {
	r.mu.Lock()
	job, ok := r.jobs[opts.JobID]
	if ok {
		job.Status = model.JobStatusCompleted
		job.CompletedAt = &opts.CompletedAt
	}
	r.mu.Unlock()
	if !ok {
		return repository.ErrJobNotFound
	}
	r.done <- opts.JobID
	return nil
}

func (r *fakeRepo) UpdateFailed(ctx context.Context, opts repository.UpdateFailedOptions) error {
	r.mu.Lock()
	job, ok := r.jobs[opts.JobID]
	if ok {
		job.Status = model.JobStatusFailed
		job.ErrorKind = opts.ErrorKind
		job.ErrorMessage = opts.ErrorMessage
	}
	r.mu.Unlock()
	if !ok {
		return repository.ErrJobNotFound
	}
	r.done <- opts.JobID
	return nil
}

func (r *fakeRepo) ListJobsByStatus(ctx context.Context, status model.JobStatus) ([]*model.UploadJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var jobs []*model.UploadJob
	for _, job := range r.jobs {
		if job.Status == status {
			copy := *job
			jobs = append(jobs, &copy)
		}
	}
	return jobs, nil
}

func (r *fakeRepo) SaveReportRows(ctx context.Context, opts repository.SaveReportRowsOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[opts.JobID] = opts.Rows
	return nil
}

func (r *fakeRepo) GetReportRows(ctx context.Context, jobID string) ([]model.ReportRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[jobID], nil
}

func (r *fakeRepo) GetRegionalData(ctx context.Context, opts repository.GetRegionalDataOptions) ([]model.RegionalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookupCalls++
	if r.lookupCalls <= r.lookupFails {
		return nil, repository.ErrRegionalLookup
	}

	wanted := make(map[string]bool, len(opts.Products))
	for _, p := range opts.Products {
		wanted[strings.ToLower(p)] = true
	}
	var matched []model.RegionalRecord
	for _, rec := range r.records {
		if wanted[strings.ToLower(rec.Product)] {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// fakeLogRepo captures job log entries in memory.
type fakeLogRepo struct {
	mu      sync.Mutex
	entries map[string][]model.LogEntry
}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{entries: make(map[string][]model.LogEntry)}
}

func (r *fakeLogRepo) Append(ctx context.Context, jobID string, entry model.LogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[jobID] = append(r.entries[jobID], entry)
	return nil
}

func (r *fakeLogRepo) Range(ctx context.Context, jobID string, since int) ([]model.LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.entries[jobID]
	if since >= len(all) {
		return nil, nil
	}
	out := make([]model.LogEntry, len(all)-since)
	copy(out, all[since:])
	return out, nil
}

func (r *fakeLogRepo) Length(ctx context.Context, jobID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries[jobID]), nil
}

func (r *fakeLogRepo) messages(jobID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries[jobID]))
	for _, e := range r.entries[jobID] {
		out = append(out, e.Message)
	}
	return out
}

// fakeExtractor returns canned products or an error. When block is set,
// Extract stalls until it is closed, keeping the background run in flight.
type fakeExtractor struct {
	mu       sync.Mutex
	products []string
	err      error
	gotCSV   string
	block    chan struct{}
}

func (e *fakeExtractor) Extract(ctx context.Context, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	e.mu.Lock()
	e.gotCSV = input.CSV
	block := e.block
	e.mu.Unlock()
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return extraction.ExtractOutput{}, ctx.Err()
		}
	}
	if e.err != nil {
		return extraction.ExtractOutput{}, e.err
	}
	return extraction.ExtractOutput{Products: e.products}, nil
}

// fakeStorage is an in-memory object store.
type fakeStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: make(map[string][]byte)}
}

func objectKey(bucket, object string) string {
	return bucket + "/" + object
}

func (s *fakeStorage) put(bucket, object string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[objectKey(bucket, object)] = data
}

func (s *fakeStorage) HealthCheck(ctx context.Context) error                 { return nil }
func (s *fakeStorage) EnsureBucket(ctx context.Context, bucket string) error { return nil }
func (s *fakeStorage) DeleteFile(ctx context.Context, bucket, object string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, objectKey(bucket, object))
	return nil
}

func (s *fakeStorage) FileExists(ctx context.Context, bucket, object string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[objectKey(bucket, object)]
	return ok, nil
}

func (s *fakeStorage) UploadFile(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	data, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	s.put(req.BucketName, req.ObjectName, data)
	return &minio.FileInfo{
		BucketName: req.BucketName,
		ObjectName: req.ObjectName,
		Size:       int64(len(data)),
	}, nil
}

func (s *fakeStorage) DownloadFile(ctx context.Context, req *minio.DownloadRequest) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.data[objectKey(req.BucketName, req.ObjectName)]
	if !ok {
		return nil, fmt.Errorf("object %s not found", req.ObjectName)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// fakeRates returns a fixed rate and counts calls.
type fakeRates struct {
	mu    sync.Mutex
	rate  decimal.Decimal
	err   error
	calls int
}

func (f *fakeRates) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return decimal.Zero, f.err
	}
	return f.rate, nil
}

func (f *fakeRates) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeEvents records published job results.
type fakeEvents struct {
	mu      sync.Mutex
	results []pipeline.JobResult
}

func (f *fakeEvents) PublishJobResult(ctx context.Context, result pipeline.JobResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, result)
	return nil
}

func (f *fakeEvents) published() []pipeline.JobResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]pipeline.JobResult, len(f.results))
	copy(out, f.results)
	return out
}

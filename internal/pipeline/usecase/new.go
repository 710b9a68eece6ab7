package usecase

import (
	"time"

	"salesreport-srv/internal/extraction"
	"salesreport-srv/internal/pipeline"
	"salesreport-srv/internal/pipeline/repository"
	"salesreport-srv/pkg/currency"
	"salesreport-srv/pkg/log"
	"salesreport-srv/pkg/minio"
)

const (
	defaultUploadBucket  = "salesreport-uploads"
	defaultJobTimeout    = 10 * time.Minute
	defaultLookupTimeout = 10 * time.Second
	defaultRateTimeout   = 10 * time.Second
)

// Config holds configuration for the processing pipeline.
type Config struct {
	UploadBucket  string
	JobTimeout    time.Duration
	LookupTimeout time.Duration
	RateTimeout   time.Duration
}

type implUseCase struct {
	repo      repository.PostgresRepository
	logRepo   repository.LogRepository
	extractor extraction.UseCase
	storage   minio.MinIO
	rates     currency.ICurrency
	events    pipeline.EventPublisher
	l         log.Logger
	config    Config
	runner    *runner
}

// New creates a new pipeline UseCase implementation. events may be nil, in
// which case no terminal-state events are published.
func New(
	l log.Logger,
	repo repository.PostgresRepository,
	logRepo repository.LogRepository,
	extractor extraction.UseCase,
	storage minio.MinIO,
	rates currency.ICurrency,
	events pipeline.EventPublisher,
	cfg Config,
) pipeline.UseCase {
	if cfg.UploadBucket == "" {
		cfg.UploadBucket = defaultUploadBucket
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = defaultJobTimeout
	}
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = defaultLookupTimeout
	}
	if cfg.RateTimeout <= 0 {
		cfg.RateTimeout = defaultRateTimeout
	}

	return &implUseCase{
		repo:      repo,
		logRepo:   logRepo,
		extractor: extractor,
		storage:   storage,
		rates:     rates,
		events:    events,
		l:         l,
		config:    cfg,
		runner:    newRunner(),
	}
}

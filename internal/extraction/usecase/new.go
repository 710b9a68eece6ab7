package usecase

import (
	"time"

	"salesreport-srv/internal/extraction"
	"salesreport-srv/pkg/log"
	"salesreport-srv/pkg/ollama"
)

// Config tunes the retry behaviour of the extraction usecase.
type Config struct {
	// Retries is the number of extra attempts after the first call.
	Retries int
	// RetryWait is the initial backoff; it doubles per attempt.
	RetryWait time.Duration
}

// implUseCase implements the extraction.UseCase interface
type implUseCase struct {
	l      log.Logger
	ollama ollama.IOllama
	cfg    Config
}

// New creates a new extraction usecase
func New(l log.Logger, ollamaClient ollama.IOllama, cfg Config) extraction.UseCase {
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = 500 * time.Millisecond
	}
	return &implUseCase{
		l:      l,
		ollama: ollamaClient,
		cfg:    cfg,
	}
}

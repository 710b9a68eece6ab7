package ollama

import (
	"context"
	"fmt"
	"strings"
	"time"

	pkghttp "salesreport-srv/pkg/http"
)

// IOllama defines the interface for text generation against a local Ollama
// server. Implementations are safe for concurrent use.
type IOllama interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// NewOllama creates a new Ollama client. Model defaults to DefaultModel if
// empty. BaseURL must be set (e.g. http://localhost:11434).
func NewOllama(cfg OllamaConfig) (IOllama, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("ollama: base URL is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &ollamaImpl{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   120 * time.Second,
			Retries:   2,
			RetryWait: 1 * time.Second,
		}),
	}, nil
}

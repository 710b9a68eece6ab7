package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"salesreport-srv/internal/extraction"
)

const systemPrompt = `You are a data extraction assistant. You receive the raw content of a CSV file describing product sales. Identify every distinct product name mentioned in the data rows. Respond with a JSON array of strings containing only the product names, in the order they first appear. Respond with the JSON array only, no explanation.`

// Extract asks the model for the product identifiers contained in the CSV.
// Transport failures are retried with doubling backoff; an answer that is not
// a JSON array of strings yields an empty extraction, not an error.
func (uc *implUseCase) Extract(ctx context.Context, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	prompt := fmt.Sprintf("CSV content:\n%s", input.CSV)

	answer, err := uc.generate(ctx, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Extract: generate: %v", err)
		return extraction.ExtractOutput{}, extraction.ErrAgentUnreachable
	}

	products, ok := parseProducts(answer)
	if !ok {
		uc.l.Warnf(ctx, "extraction.usecase.Extract: unusable model answer, treating as zero extraction: %.200s", answer)
		return extraction.ExtractOutput{}, nil
	}

	return extraction.ExtractOutput{Products: products}, nil
}

func (uc *implUseCase) generate(ctx context.Context, prompt string) (string, error) {
	wait := uc.cfg.RetryWait

	var lastErr error
	for attempt := 0; attempt <= uc.cfg.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
		}

		answer, err := uc.ollama.Generate(ctx, systemPrompt, prompt)
		if err == nil {
			return answer, nil
		}
		lastErr = err
		uc.l.Warnf(ctx, "extraction.usecase.generate: attempt %d failed: %v", attempt+1, err)
	}

	return "", lastErr
}

// parseProducts validates the model answer. It accepts a bare JSON array of
// strings, possibly wrapped in surrounding prose or a code fence, and returns
// the trimmed, order-preserving deduplicated product list. ok is false when
// no valid array can be found.
func parseProducts(answer string) ([]string, bool) {
	start := strings.Index(answer, "[")
	end := strings.LastIndex(answer, "]")
	if start < 0 || end < start {
		return nil, false
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(answer[start:end+1]), &raw); err != nil {
		return nil, false
	}

	seen := make(map[string]struct{}, len(raw))
	products := make([]string, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			// Any non-string element invalidates the whole answer.
			return nil, false
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		products = append(products, s)
	}

	return products, true
}

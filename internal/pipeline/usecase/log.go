package usecase

import (
	"context"
	"fmt"
	"time"

	"salesreport-srv/internal/model"
)

// appendLog writes one entry to the job's client-visible log stream. Log
// writes are best effort: a failed append never fails the pipeline.
func (uc *implUseCase) appendLog(ctx context.Context, jobID string, level model.LogLevel, format string, args ...any) {
	entry := model.LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   fmt.Sprintf(format, args...),
	}
	if err := uc.logRepo.Append(ctx, jobID, entry); err != nil {
		uc.l.Warnf(ctx, "pipeline.usecase.appendLog: Failed to append log for job %s: %v", jobID, err)
	}
}

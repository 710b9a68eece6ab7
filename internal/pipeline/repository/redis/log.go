package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"salesreport-srv/internal/model"
	"salesreport-srv/internal/pipeline/repository"
)

// Job logs live in one Redis list per job. RPUSH keeps append order, LRANGE
// from a client-held offset gives cheap polling.
func logKey(jobID string) string {
	return fmt.Sprintf("salesreport:joblog:%s", jobID)
}

// Append - Add one entry to the end of the job's log stream.
func (r *implRepository) Append(ctx context.Context, jobID string, entry model.LogEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		r.l.Errorf(ctx, "pipeline.repository.redis.Append: Marshal failed: %v", err)
		return repository.ErrLogAppendFailed
	}

	if err := r.client.RPush(ctx, logKey(jobID), payload); err != nil {
		r.l.Errorf(ctx, "pipeline.repository.redis.Append: RPush failed: %v", err)
		return repository.ErrLogAppendFailed
	}

	return nil
}

// Range - Read entries from offset since to the end, in append order.
func (r *implRepository) Range(ctx context.Context, jobID string, since int) ([]model.LogEntry, error) {
	raw, err := r.client.LRange(ctx, logKey(jobID), int64(since), -1)
	if err != nil {
		r.l.Errorf(ctx, "pipeline.repository.redis.Range: LRange failed: %v", err)
		return nil, repository.ErrLogReadFailed
	}

	entries := make([]model.LogEntry, 0, len(raw))
	for _, item := range raw {
		var entry model.LogEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			r.l.Warnf(ctx, "pipeline.repository.redis.Range: Skipping corrupt entry: %v", err)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Length - Number of entries currently in the job's log.
func (r *implRepository) Length(ctx context.Context, jobID string) (int, error) {
	n, err := r.client.LLen(ctx, logKey(jobID))
	if err != nil {
		r.l.Errorf(ctx, "pipeline.repository.redis.Length: LLen failed: %v", err)
		return 0, repository.ErrLogReadFailed
	}
	return int(n), nil
}

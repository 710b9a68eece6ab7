package repository

import "errors"

var (
	ErrJobNotFound     = errors.New("repository: job not found")
	ErrJobCreateFailed = errors.New("repository: failed to create job")
	ErrJobUpdateFailed = errors.New("repository: failed to update job")
	ErrRowsWriteFailed = errors.New("repository: failed to save report rows")
	ErrRegionalLookup  = errors.New("repository: regional data lookup failed")
	ErrLogAppendFailed = errors.New("repository: failed to append log entry")
	ErrLogReadFailed   = errors.New("repository: failed to read log entries")
)

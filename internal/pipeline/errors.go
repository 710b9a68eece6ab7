package pipeline

import "errors"

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrJobAlreadyRunning = errors.New("job is already being processed")
	ErrJobFinished       = errors.New("job already reached a terminal state")
	ErrInvalidFile       = errors.New("only .csv files are accepted")
	ErrInvalidLogOffset  = errors.New("log offset must not be negative")
	ErrReportNotReady    = errors.New("report is not completed")
	ErrUploadFailed      = errors.New("upload failed")
)

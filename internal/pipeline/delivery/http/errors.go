package http

import (
	"errors"

	"salesreport-srv/internal/pipeline"
	pkgErrors "salesreport-srv/pkg/errors"
)

var (
	errFileRequired      = pkgErrors.NewHTTPError(400, "A file upload is required")
	errInvalidFile       = pkgErrors.NewHTTPError(400, "Only .csv files are accepted")
	errInvalidSince      = pkgErrors.NewHTTPError(400, "Query parameter since must be a non-negative integer")
	errJobNotFound       = pkgErrors.NewHTTPError(404, "Job not found")
	errJobAlreadyRunning = pkgErrors.NewHTTPError(409, "Job is already being processed")
	errJobFinished       = pkgErrors.NewHTTPError(409, "Job already finished")
	errReportNotReady    = pkgErrors.NewHTTPError(400, "Report is not completed yet")
	errUploadFailed      = pkgErrors.NewHTTPError(500, "Upload failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, pipeline.ErrInvalidFile):
		return errInvalidFile
	case errors.Is(err, pipeline.ErrInvalidLogOffset):
		return errInvalidSince
	case errors.Is(err, pipeline.ErrJobNotFound):
		return errJobNotFound
	case errors.Is(err, pipeline.ErrJobAlreadyRunning):
		return errJobAlreadyRunning
	case errors.Is(err, pipeline.ErrJobFinished):
		return errJobFinished
	case errors.Is(err, pipeline.ErrReportNotReady):
		return errReportNotReady
	case errors.Is(err, pipeline.ErrUploadFailed):
		return errUploadFailed
	default:
		return err
	}
}

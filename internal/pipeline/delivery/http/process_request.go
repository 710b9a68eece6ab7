package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"salesreport-srv/internal/pipeline"
)

// processUploadRequest pulls the multipart file out of the request. The
// returned cleanup closes the opened part and must always be called.
func (h *handler) processUploadRequest(c *gin.Context) (pipeline.UploadInput, func(), error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return pipeline.UploadInput{}, nil, errFileRequired
	}

	file, err := fileHeader.Open()
	if err != nil {
		return pipeline.UploadInput{}, nil, err
	}

	input := pipeline.UploadInput{
		FileName: fileHeader.Filename,
		Reader:   file,
		Size:     fileHeader.Size,
	}
	return input, func() { file.Close() }, nil
}

type jobReq struct {
	JobID string
}

func (h *handler) processJobRequest(c *gin.Context) jobReq {
	return jobReq{
		JobID: c.Param("job_id"),
	}
}

type logReq struct {
	JobID string
	Since int
}

func (h *handler) processLogRequest(c *gin.Context) (logReq, error) {
	req := logReq{
		JobID: c.Param("job_id"),
	}

	if raw := c.Query("since"); raw != "" {
		since, err := strconv.Atoi(raw)
		if err != nil || since < 0 {
			return logReq{}, errInvalidSince
		}
		req.Since = since
	}

	return req, nil
}

func (r jobReq) toInput() pipeline.ProcessInput {
	return pipeline.ProcessInput{JobID: r.JobID}
}

func (r jobReq) toStatusInput() pipeline.GetStatusInput {
	return pipeline.GetStatusInput{JobID: r.JobID}
}

func (r jobReq) toReportInput() pipeline.GetReportInput {
	return pipeline.GetReportInput{JobID: r.JobID}
}

func (r logReq) toInput() pipeline.GetLogInput {
	return pipeline.GetLogInput{
		JobID: r.JobID,
		Since: r.Since,
	}
}

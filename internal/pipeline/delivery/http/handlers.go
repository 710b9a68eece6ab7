package http

import (
	"github.com/gin-gonic/gin"

	"salesreport-srv/pkg/response"
)

// @Summary Upload a CSV file
// @Description Store a CSV upload and register a processing job for it
// @Tags Jobs
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} uploadResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/jobs/upload [post]
func (h *handler) UploadFile(c *gin.Context) {
	ctx := c.Request.Context()

	input, cleanup, err := h.processUploadRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "pipeline.delivery.http.UploadFile: processUploadRequest failed: %v", err)
		response.Error(c, err)
		return
	}
	defer cleanup()

	o, err := h.uc.Upload(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "pipeline.delivery.http.UploadFile: usecase Upload failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUploadResp(o))
}

// @Summary Start processing a job
// @Description Kick off the asynchronous pipeline for an uploaded job
// @Tags Jobs
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} processResp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/jobs/{job_id}/process [post]
func (h *handler) ProcessJob(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processJobRequest(c)

	o, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "pipeline.delivery.http.ProcessJob: usecase Process failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProcessResp(o))
}

// @Summary Get job status
// @Description Return the current lifecycle state of a job
// @Tags Jobs
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} statusResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/jobs/{job_id}/status [get]
func (h *handler) GetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processJobRequest(c)

	o, err := h.uc.GetStatus(ctx, req.toStatusInput())
	if err != nil {
		h.l.Errorf(ctx, "pipeline.delivery.http.GetStatus: usecase GetStatus failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatusResp(o))
}

// @Summary Get job report
// @Description Return the consolidated report of a completed job
// @Tags Jobs
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} reportResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/jobs/{job_id}/report [get]
func (h *handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processJobRequest(c)

	o, err := h.uc.GetReport(ctx, req.toReportInput())
	if err != nil {
		h.l.Errorf(ctx, "pipeline.delivery.http.GetReport: usecase GetReport failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReportResp(o))
}

// @Summary Poll the job log
// @Description Return job log entries from the given offset onward
// @Tags Jobs
// @Produce json
// @Param job_id path string true "Job ID"
// @Param since query int false "Number of entries already seen" default(0)
// @Success 200 {object} logResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/jobs/{job_id}/log [get]
func (h *handler) GetLog(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLogRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "pipeline.delivery.http.GetLog: processLogRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.GetLog(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "pipeline.delivery.http.GetLog: usecase GetLog failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLogResp(o))
}

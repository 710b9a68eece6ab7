package http

import (
	"github.com/gin-gonic/gin"

	"salesreport-srv/internal/middleware"
	"salesreport-srv/internal/pipeline"
	"salesreport-srv/pkg/log"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc pipeline.UseCase
}

func New(l log.Logger, uc pipeline.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// RegisterRoutes mounts the job endpoints under the given group.
func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/upload", h.UploadFile)
	r.POST("/:job_id/process", h.ProcessJob)
	r.GET("/:job_id/status", h.GetStatus)
	r.GET("/:job_id/report", h.GetReport)
	r.GET("/:job_id/log", h.GetLog)
}

package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	extractionUsecase "salesreport-srv/internal/extraction/usecase"
	"salesreport-srv/internal/middleware"
	"salesreport-srv/internal/pipeline"
	pipelineHTTP "salesreport-srv/internal/pipeline/delivery/http"
	pipelineKafka "salesreport-srv/internal/pipeline/delivery/kafka"
	pipelinePostgre "salesreport-srv/internal/pipeline/repository/postgre"
	pipelineRedis "salesreport-srv/internal/pipeline/repository/redis"
	pipelineUsecase "salesreport-srv/internal/pipeline/usecase"
)

func (srv *HTTPServer) setupPipelineDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := pipelinePostgre.New(srv.postgresDB, srv.l)
	logRepo := pipelineRedis.New(srv.redisClient, srv.l)

	extractor := extractionUsecase.New(srv.l, srv.ollamaClient, extractionUsecase.Config{
		Retries: srv.config.Pipeline.AgentRetries,
	})

	var events pipeline.EventPublisher
	if srv.producer != nil {
		events = pipelineKafka.New(srv.l, srv.producer)
	}

	uc := pipelineUsecase.New(srv.l, repo, logRepo, extractor, srv.minioClient, srv.currencyClient, events, pipelineUsecase.Config{
		UploadBucket:  srv.config.MinIO.Bucket,
		JobTimeout:    time.Duration(srv.config.Pipeline.JobTimeout) * time.Second,
		LookupTimeout: time.Duration(srv.config.Pipeline.LookupTimeout) * time.Second,
		RateTimeout:   time.Duration(srv.config.Pipeline.RateTimeout) * time.Second,
	})

	// Jobs stuck in PROCESSING from a previous run can never finish.
	if n, err := uc.ReconcileAbandoned(ctx); err != nil {
		return err
	} else if n > 0 {
		srv.l.Infof(ctx, "Reconciled %d abandoned jobs", n)
	}

	handler := pipelineHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r.Group("/jobs"), mw)

	srv.l.Infof(ctx, "Pipeline domain registered")
	return nil
}

package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

// Run maps the handlers and serves until the process is told to stop.
// SIGINT/SIGTERM drains in-flight requests for the configured shutdown
// window before the listener closes.
func (srv HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.l.Errorf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}

	stopCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "%s listening on %s", ServiceName, server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-stopCtx.Done():
		srv.l.Infof(ctx, "%s shutting down, draining in-flight requests", ServiceName)
	}

	drain := time.Duration(srv.config.HTTPServer.ShutdownTimeout) * time.Second
	shutdownCtx, cancel := context.WithTimeout(ctx, drain)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "Forced shutdown after %s: %v", drain, err)
		return err
	}

	srv.l.Infof(ctx, "%s stopped", ServiceName)
	return nil
}

// Package server exposes a page source over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/sqlpage/config"
	"github.com/ncobase/sqlpage/ctxutil"
	"github.com/ncobase/sqlpage/logging/logger"
)

// Server represents the application server.
type Server struct {
	config  *config.Server
	logger  *logger.Logger
	handler *Handler
	http    *http.Server
}

// New creates a server for h. runMode selects the gin mode and defaults to
// release.
func New(cfg *config.Server, runMode string, h *Handler, log *logger.Logger) *Server {
	if log == nil {
		log = logger.StdLogger()
	}
	switch runMode {
	case gin.DebugMode, gin.TestMode, gin.ReleaseMode:
		gin.SetMode(runMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{config: cfg, logger: log, handler: h}
	s.http = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.SetupRouter(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// SetupRouter sets up the gin router.
func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ctxutil.Trace())
	r.Use(s.loggerMiddleware())

	r.NoRoute(s.handler.NotFound)
	r.GET("/healthz", s.handler.Health)

	v1 := r.Group("/v1")
	v1.GET("/pages", s.handler.ListPage)
	v1.GET("/tokens", s.handler.DecodeToken)

	return r
}

// loggerMiddleware creates request logging middleware.
func (s *Server) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		s.logger.Info(c.Request.Context(), "HTTP request",
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"client_ip", ctxutil.ClientIP(c),
			"duration", time.Since(start).String(),
		)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	s.logger.Info(ctx, "server shutting down")
	return s.http.Shutdown(shutdownCtx)
}

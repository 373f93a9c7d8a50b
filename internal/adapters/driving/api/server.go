// Package api serves search over HTTP with gin.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/sercha-captions/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-captions/internal/logger"
)

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("api: search service is required")

// Ports aggregates the driving ports the API exposes.
type Ports struct {
	Search driving.SearchService

	// Library backs the document and version endpoints. Optional.
	Library driving.LibraryService
}

// Server is the HTTP search API.
type Server struct {
	ports  Ports
	engine *gin.Engine
}

// NewServer builds the router. extra handlers are mounted at their
// paths, e.g. an MCP handler at "/mcp".
func NewServer(ports Ports, extra map[string]http.Handler) (*Server, error) {
	if ports.Search == nil {
		return nil, ErrMissingSearchService
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	s := &Server{ports: ports, engine: engine}

	engine.GET("/healthz", s.handleHealth)
	v1 := engine.Group("/v1")
	v1.GET("/search", s.handleSearch)
	v1.GET("/documents", s.handleDocuments)
	v1.GET("/documents/:id", s.handleDocument)
	v1.GET("/verses/versions", s.handleVersions)

	for path, h := range extra {
		engine.Any(path, gin.WrapH(h))
	}

	return s, nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("api listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// requestLogger logs each request in verbose mode.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

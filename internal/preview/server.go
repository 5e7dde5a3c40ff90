// Package preview serves generated pages and the component catalog over
// HTTP for local browsing.
package preview

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/toyz/morsedoc/internal/models"
	"github.com/toyz/morsedoc/internal/utils"
	"github.com/toyz/morsedoc/pkg/component"
)

// ShutdownTimeout bounds the graceful shutdown of the server
const ShutdownTimeout = 5 * time.Second

// Config holds the preview server settings
type Config struct {
	Root string // directory holding the generated pages
	Mode string // gin mode: debug, release or test
}

// Server serves the output root, the catalog API and the metrics
type Server struct {
	engine      *gin.Engine
	diagnostics *utils.DiagnosticSystem
	metrics     *Metrics

	mu      sync.RWMutex
	records []*models.ComponentRecord
}

// NewServer creates a preview server for records
func NewServer(config Config, records []*models.ComponentRecord, diagnostics *utils.DiagnosticSystem) *Server {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	if config.Mode != "" {
		gin.SetMode(config.Mode)
	}

	s := &Server{
		engine:      gin.New(),
		diagnostics: diagnostics,
		metrics:     NewMetrics(),
	}
	s.countComponents(records)
	s.records = records
	s.engine.Use(gin.Recovery(), s.logRequests)

	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	api := s.engine.Group("/api")
	api.GET("/components", s.listComponents)
	api.GET("/components/:module", s.getComponent)
	s.engine.NoRoute(gin.WrapH(http.FileServer(http.Dir(config.Root))))

	return s
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Metrics returns the metrics of the server
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// SetRecords replaces the catalog, e.g. after pages were regenerated
func (s *Server) SetRecords(records []*models.ComponentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.countComponents(records)
	s.metrics.CatalogReloads.Inc()
}

func (s *Server) countComponents(records []*models.ComponentRecord) {
	counts := make(map[component.Category]int)
	for _, record := range records {
		counts[record.Category]++
	}
	for _, category := range component.Categories {
		s.metrics.Components.WithLabelValues(string(category)).Set(float64(counts[category]))
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.diagnostics.Info("Serving pages on http://%s", listener.Addr())
		errCh <- server.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.diagnostics.Info("Shutting down preview server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) listComponents(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category := c.Query("category")
	result := make([]*models.ComponentRecord, 0, len(s.records))
	for _, record := range s.records {
		if category == "" || string(record.Category) == category {
			result = append(result, record)
		}
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) getComponent(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	module := c.Param("module")
	for _, record := range s.records {
		if record.Module == module || record.ModuleName() == module {
			c.JSON(http.StatusOK, record)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "component not found", "module": module})
}

func (s *Server) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()

	elapsed := time.Since(start)
	route := c.FullPath()
	if route == "" {
		route = "static"
	}
	s.metrics.RecordRequest(c.Request.Method, route, c.Writer.Status(), elapsed)
	s.diagnostics.Verbose("%s %s %d (%s)", c.Request.Method, c.Request.URL.Path,
		c.Writer.Status(), elapsed.Round(time.Microsecond))
}

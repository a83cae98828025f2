// Package api exposes the control plane: report creation and health.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/channeling-app/reportpipe/pkg/bus"
	"github.com/channeling-app/reportpipe/pkg/config"
	"github.com/channeling-app/reportpipe/pkg/database"
	"github.com/channeling-app/reportpipe/pkg/services"
)

// Server is the HTTP control plane.
type Server struct {
	router  *gin.Engine
	httpSrv *http.Server

	db       *database.Client
	reports  *services.ReportService
	tasks    *services.TaskService
	videos   *services.VideoService
	producer *bus.Producer
	kafka    config.KafkaConfig
	pipeline config.PipelineConfig
}

// NewServer creates the control-plane server and registers its routes.
func NewServer(addr string, db *database.Client, reports *services.ReportService, tasks *services.TaskService, videos *services.VideoService, producer *bus.Producer, kafka config.KafkaConfig, pipeline config.PipelineConfig) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	s := &Server{
		router:   router,
		db:       db,
		reports:  reports,
		tasks:    tasks,
		videos:   videos,
		producer: producer,
		kafka:    kafka,
		pipeline: pipeline,
	}
	s.registerRoutes()

	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/reports", s.handleCreateReport)
	s.router.POST("/reports/v2", s.handleCreateReportV2)
	s.router.GET("/tasks/:id", s.handleGetTask)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start begins serving. Blocks until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	slog.Info("Control plane listening", "addr", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		slog.Info("Request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

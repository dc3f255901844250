// Package api exposes the detection service over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikey/spam-detector-api/internal/config"
	"github.com/mikey/spam-detector-api/internal/core"
	"go.uber.org/zap"
)

// Server is the HTTP front of the detection service
type Server struct {
	cfg        config.ServerConfig
	service    *core.DetectionService
	limiter    core.RateLimiter
	logger     *zap.Logger
	engine     *gin.Engine
	httpServer *http.Server
	now        func() time.Time

	// limitMessage is the body of every 429 response
	limitMessage string
}

// NewServer creates the server and registers every route
func NewServer(
	cfg config.ServerConfig,
	service *core.DetectionService,
	limiter core.RateLimiter,
	logger *zap.Logger,
) (*Server, error) {
	s := &Server{
		cfg:          cfg,
		service:      service,
		limiter:      limiter,
		logger:       logger,
		now:          time.Now,
		limitMessage: rateLimitMessage(limiter.Limit(), limiter.Window()),
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	var proxies []string
	if len(cfg.TrustedProxies) > 0 {
		proxies = cfg.TrustedProxies
	}
	if err := engine.SetTrustedProxies(proxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	engine.Use(s.requestID(), s.accessLog(), s.recovery())

	corsHandler, err := newCORS(cfg.CORSOrigins)
	if err != nil {
		return nil, err
	}
	if corsHandler != nil {
		engine.Use(corsHandler)
	}

	s.registerRoutes(engine)
	s.engine = engine

	s.httpServer = &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s, nil
}

func (s *Server) registerRoutes(engine *gin.Engine) {
	group := engine.Group(s.cfg.BasePath)
	{
		group.GET("/health", s.handleHealth)
		group.POST("/detect", s.rateLimit(), s.handleDetect)
		group.POST("/detect/batch", s.rateLimit(), s.handleDetectBatch)
		group.GET("/stats", s.handleStats)
		group.POST("/stats/reset", s.handleResetStats)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorBody("Endpoint not found"))
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorBody("Method not allowed"))
	})
}

// Handler returns the HTTP handler serving every route
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start starts listening in the background
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.cfg.ListenAddress),
		zap.String("base_path", s.cfg.BasePath))

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
		}
	}()

	return nil
}

// Stop waits for in-flight requests to finish, up to the context deadline
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop HTTP server: %w", err)
	}
	return nil
}

// rateLimitMessage renders the 429 body, e.g.
// "Rate limit exceeded. Maximum 100 requests per hour."
func rateLimitMessage(limit int, window time.Duration) string {
	var per string
	switch window {
	case time.Hour:
		per = "hour"
	case time.Minute:
		per = "minute"
	case time.Second:
		per = "second"
	case 24 * time.Hour:
		per = "day"
	default:
		per = window.String()
	}
	return fmt.Sprintf("Rate limit exceeded. Maximum %d requests per %s.", limit, per)
}

func errorBody(message string) gin.H {
	return gin.H{"error": message}
}

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mikey/spam-detector-api/internal/core"
	"go.uber.org/zap"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestID tags every request with an id, reusing the caller's if present
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", c.ClientIP()),
			zap.String("request_id", c.GetString(requestIDKey)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		s.logger.Info("HTTP request", fields...)
	}
}

// recovery turns panics into a generic 500; details only go to the log
func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error("Panic while handling request",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)))
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody("Internal server error"))
	})
}

// rateLimit consumes one unit for the client before the body is read, so
// rejected and malformed requests count too. Limiter failures let the
// request through.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		client := c.ClientIP()
		allowed, err := s.limiter.Allow(c.Request.Context(), client)
		if err != nil {
			s.logger.Warn("Rate limiter unavailable, allowing request",
				zap.String("client", client),
				zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			_ = c.Error(core.ErrRateLimited)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorBody(s.limitMessage))
			return
		}
		c.Next()
	}
}

// newCORS builds the CORS middleware. It returns nil when no origin is allowed.
func newCORS(origins []string) (gin.HandlerFunc, error) {
	if len(origins) == 0 {
		return nil, nil
	}

	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			break
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = origins
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CORS origins: %w", err)
	}
	return cors.New(cfg), nil
}

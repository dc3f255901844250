package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/mikey/spam-detector-api/internal/api"
	"github.com/mikey/spam-detector-api/internal/config"
	"github.com/mikey/spam-detector-api/internal/core"
	"github.com/mikey/spam-detector-api/internal/di"
	"github.com/mikey/spam-detector-api/internal/stats"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	serverCfg config.ServerConfig,
	server *api.Server,
	limiter core.RateLimiter,
	persister *stats.Persister,
) error {
	defer logger.Sync()

	// Restore stats before accepting traffic
	if err := persister.Start(context.Background()); err != nil {
		logger.Error("Failed to start stats persistence", zap.Error(err))
		limiter.Stop()
		return err
	}

	if err := server.Start(); err != nil {
		logger.Error("Failed to start server", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Error("Failed to stop server", zap.Error(err))
	}

	limiter.Stop()

	if err := persister.Stop(ctx); err != nil {
		logger.Error("Failed to save stats", zap.Error(err))
	}

	logger.Info("Shutdown complete")
	return nil
}

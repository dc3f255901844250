package di

import (
	"context"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/spam-detector-api/internal/api"
	"github.com/mikey/spam-detector-api/internal/classifier"
	"github.com/mikey/spam-detector-api/internal/config"
	"github.com/mikey/spam-detector-api/internal/core"
	"github.com/mikey/spam-detector-api/internal/factory"
	"github.com/mikey/spam-detector-api/internal/logging"
	"github.com/mikey/spam-detector-api/internal/stats"
	"github.com/mikey/spam-detector-api/internal/utils"
)

// connectTimeout bounds how long startup waits for Redis or MySQL
const connectTimeout = 30 * time.Second

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}
	if err := container.Provide(func(cfg *config.Config) (config.ServerConfig, error) {
		return cfg.GetServer()
	}); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewRateLimiterFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewStatsStoreFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register classifier
	if err := container.Provide(func() core.Classifier {
		return classifier.New()
	}); err != nil {
		return nil, err
	}

	// Register rate limiter
	if err := container.Provide(func(f *factory.RateLimiterFactory) (core.RateLimiter, error) {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		return f.CreateRateLimiter(ctx)
	}); err != nil {
		return nil, err
	}

	// Register stats accumulator and its persistence
	if err := container.Provide(stats.NewAccumulator); err != nil {
		return nil, err
	}
	if err := container.Provide(func(acc *stats.Accumulator) core.StatsAccumulator {
		return acc
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(
		f *factory.StatsStoreFactory,
		acc *stats.Accumulator,
		logger *zap.Logger,
	) (*stats.Persister, error) {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		repo, err := f.CreateStatsRepository(ctx)
		if err != nil {
			return nil, err
		}
		flushFreq, err := f.GetFlushFrequency()
		if err != nil {
			return nil, err
		}
		return stats.NewPersister(acc, repo, logger, flushFreq), nil
	}); err != nil {
		return nil, err
	}

	// Register detection service
	if err := container.Provide(core.NewDetectionService); err != nil {
		return nil, err
	}

	// Register HTTP server
	if err := container.Provide(api.NewServer); err != nil {
		return nil, err
	}

	return container, nil
}

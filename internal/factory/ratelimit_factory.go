package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/mikey/spam-detector-api/internal/config"
	"github.com/mikey/spam-detector-api/internal/core"
	"github.com/mikey/spam-detector-api/internal/ratelimit"
	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// RateLimiterFactory creates rate limiters based on configuration
type RateLimiterFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewRateLimiterFactory creates a new rate limiter factory
func NewRateLimiterFactory(cfg *config.Config, logger *zap.Logger) *RateLimiterFactory {
	return &RateLimiterFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateRateLimiter creates a rate limiter based on the configuration
func (f *RateLimiterFactory) CreateRateLimiter(ctx context.Context) (core.RateLimiter, error) {
	rlCfg, err := f.cfg.GetRateLimit()
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit configuration: %w", err)
	}
	if rlCfg.Limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", rlCfg.Limit)
	}
	if rlCfg.Window <= 0 {
		return nil, fmt.Errorf("rate limit window must be positive, got %s", rlCfg.Window)
	}

	f.logger.Info("Creating rate limiter",
		zap.String("type", rlCfg.Type),
		zap.Int("limit", rlCfg.Limit),
		zap.Duration("window", rlCfg.Window))

	switch rlCfg.Type {
	case "memory":
		return ratelimit.NewMemoryLimiter(rlCfg.Limit, rlCfg.Window, f.logger,
			ratelimit.WithCleanupFrequency(rlCfg.CleanupFrequency)), nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     rlCfg.RedisAddr,
			Password: rlCfg.RedisPassword,
			DB:       rlCfg.RedisDB,
		})
		if err := pingRedis(ctx, rdb, f.logger); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", rlCfg.RedisAddr, err)
		}
		return ratelimit.NewRedisLimiter(rdb, rlCfg.Limit, rlCfg.Window, f.logger,
			ratelimit.WithKeyPrefix(rlCfg.RedisPrefix)), nil
	default:
		return nil, fmt.Errorf("unsupported rate limiter type: %s", rlCfg.Type)
	}
}

func pingRedis(ctx context.Context, rdb redis.UniversalClient, logger *zap.Logger) error {
	b := retry.WithMaxRetries(5, retry.NewExponential(200*time.Millisecond))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis not reachable yet", zap.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
}

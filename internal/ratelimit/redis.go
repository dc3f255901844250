package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// allowScript applies the window rules atomically. The key expires one
// millisecond after its window would, so idle clients are evicted by Redis.
var allowScript = redis.NewScript(`
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

local state = redis.call('HMGET', KEYS[1], 'start', 'count')
local start = tonumber(state[1])
local count = tonumber(state[2])

if start == nil or now - start > window then
	start = now
	count = 0
	redis.call('HSET', KEYS[1], 'start', start, 'count', 0)
	redis.call('PEXPIRE', KEYS[1], window + 1)
end

if count >= limit then
	return 0
end

redis.call('HINCRBY', KEYS[1], 'count', 1)
return 1
`)

// RedisLimiter shares client windows between instances through Redis
type RedisLimiter struct {
	rdb    redis.UniversalClient
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// RedisOption configures a RedisLimiter
type RedisOption func(*RedisLimiter)

// WithRedisClock replaces time.Now as the limiter's clock
func WithRedisClock(now func() time.Time) RedisOption {
	return func(l *RedisLimiter) { l.now = now }
}

// WithKeyPrefix sets the prefix of every window key
func WithKeyPrefix(prefix string) RedisOption {
	return func(l *RedisLimiter) { l.prefix = strings.Trim(prefix, ":") }
}

// NewRedisLimiter creates a limiter backed by rdb
func NewRedisLimiter(rdb redis.UniversalClient, limit int, window time.Duration, logger *zap.Logger, opts ...RedisOption) *RedisLimiter {
	l := &RedisLimiter{
		rdb:    rdb,
		prefix: "spamapi:ratelimit",
		limit:  limit,
		window: window,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow implements core.RateLimiter
func (l *RedisLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	accepted, err := allowScript.Run(ctx, l.rdb,
		[]string{l.key(clientKey)},
		l.now().UnixMilli(),
		l.window.Milliseconds(),
		l.limit,
	).Int()
	if err != nil {
		return false, fmt.Errorf("failed to evaluate rate limit: %w", err)
	}
	return accepted == 1, nil
}

// windowCount returns the number of accepted requests in the client's stored window
func (l *RedisLimiter) windowCount(ctx context.Context, clientKey string) (int, error) {
	count, err := l.rdb.HGet(ctx, l.key(clientKey), "count").Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read rate limit window: %w", err)
	}
	return count, nil
}

// Limit returns the number of requests accepted per window
func (l *RedisLimiter) Limit() int { return l.limit }

// Window returns the window length
func (l *RedisLimiter) Window() time.Duration { return l.window }

func (l *RedisLimiter) key(clientKey string) string {
	return l.prefix + ":" + clientKey
}

// Stop closes the Redis connection
func (l *RedisLimiter) Stop() {
	if err := l.rdb.Close(); err != nil {
		l.logger.Error("Failed to close Redis client", zap.Error(err))
	}
}

// Package ratelimit caps how many requests a client may issue per window.
//
// A window opens on the first request of a client and lasts for a fixed
// duration. Once it has expired the next request starts a fresh window;
// counts never decay partially.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultLimit is the number of accepted requests per window
	DefaultLimit = 100
	// DefaultWindow is the length of a counting window
	DefaultWindow = time.Hour
)

type clientWindow struct {
	count int
	start time.Time
}

// MemoryLimiter keeps one window per client key in process memory
type MemoryLimiter struct {
	mu          sync.Mutex
	windows     map[string]*clientWindow
	limit       int
	window      time.Duration
	now         func() time.Time
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
	stopOnce    sync.Once
}

// Option configures a MemoryLimiter
type Option func(*MemoryLimiter)

// WithClock replaces time.Now as the limiter's clock
func WithClock(now func() time.Time) Option {
	return func(l *MemoryLimiter) { l.now = now }
}

// WithCleanupFrequency sets how often expired windows are swept. Zero
// disables the background sweep.
func WithCleanupFrequency(d time.Duration) Option {
	return func(l *MemoryLimiter) { l.cleanupFreq = d }
}

// NewMemoryLimiter creates an in-memory limiter
func NewMemoryLimiter(limit int, window time.Duration, logger *zap.Logger, opts ...Option) *MemoryLimiter {
	l := &MemoryLimiter{
		windows: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
		now:     time.Now,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.cleanupFreq > 0 {
		go l.startCleanupTask()
	}

	return l
}

// Allow implements core.RateLimiter
func (l *MemoryLimiter) Allow(_ context.Context, clientKey string) (bool, error) {
	return l.AllowAt(clientKey, l.now()), nil
}

// AllowAt consumes one unit for clientKey at the given time
func (l *MemoryLimiter) AllowAt(clientKey string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[clientKey]
	if !ok {
		w = &clientWindow{start: now}
		l.windows[clientKey] = w
	}

	if now.Sub(w.start) > l.window {
		w.count = 0
		w.start = now
	}

	if w.count >= l.limit {
		return false
	}

	w.count++
	return true
}

// windowCount returns the number of accepted requests in the client's current window
func (l *MemoryLimiter) windowCount(clientKey string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w, ok := l.windows[clientKey]; ok {
		return w.count
	}
	return 0
}

// Len returns the number of tracked clients
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// Limit returns the number of requests accepted per window
func (l *MemoryLimiter) Limit() int { return l.limit }

// Window returns the window length
func (l *MemoryLimiter) Window() time.Duration { return l.window }

// Sweep drops windows that have expired at now. A dropped client starts a
// fresh window on its next request, exactly as an expired one would.
func (l *MemoryLimiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, w := range l.windows {
		if now.Sub(w.start) > l.window {
			delete(l.windows, key)
			removed++
		}
	}
	return removed
}

// startCleanupTask periodically sweeps expired windows
func (l *MemoryLimiter) startCleanupTask() {
	ticker := time.NewTicker(l.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := l.Sweep(l.now())
			l.logger.Debug("Swept expired rate limit windows", zap.Int("removed", removed))
		case <-l.stopCh:
			return
		}
	}
}

// Stop stops the background sweep
func (l *MemoryLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

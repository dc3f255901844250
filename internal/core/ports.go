package core

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

import (
	"context"
	"time"
)

// Classifier scores email text
type Classifier interface {
	// Classify scores a subject/body pair. It never fails on string input.
	Classify(subject, body string) ScoreResult
}

// RateLimiter decides whether a client may issue another request
type RateLimiter interface {
	// Allow consumes one unit for clientKey and reports whether it was accepted
	Allow(ctx context.Context, clientKey string) (bool, error)

	// Limit returns the number of requests accepted per window
	Limit() int

	// Window returns the window length
	Window() time.Duration

	// Stop releases background resources
	Stop()
}

// StatsAccumulator keeps the process-wide classification tallies
type StatsAccumulator interface {
	Record(result ScoreResult)
	RecordBatch(results []ScoreResult)
	Snapshot() StatsReport
	Reset()
}

// StatsRepository persists Stats across restarts
type StatsRepository interface {
	// Load returns the stored stats, or zero Stats when nothing was saved yet
	Load(ctx context.Context) (Stats, error)

	// Save replaces the stored stats
	Save(ctx context.Context, stats Stats) error

	// Close releases the underlying connection
	Close() error
}

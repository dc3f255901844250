package stats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mikey/spam-detector-api/internal/core"
	"go.uber.org/zap"
)

// Persister keeps an Accumulator in sync with a StatsRepository. A nil
// repository disables persistence and turns every method into a no-op.
type Persister struct {
	acc       *Accumulator
	repo      core.StatsRepository
	logger    *zap.Logger
	flushFreq time.Duration

	mu           sync.Mutex
	savedVersion uint64
	stopCh       chan struct{}
	done         chan struct{}
}

// NewPersister creates a persister flushing every flushFreq
func NewPersister(acc *Accumulator, repo core.StatsRepository, logger *zap.Logger, flushFreq time.Duration) *Persister {
	return &Persister{
		acc:       acc,
		repo:      repo,
		logger:    logger,
		flushFreq: flushFreq,
	}
}

// Enabled reports whether a repository is configured
func (p *Persister) Enabled() bool {
	return p.repo != nil
}

// Start loads the stored stats into the accumulator and starts the flush task
func (p *Persister) Start(ctx context.Context) error {
	if !p.Enabled() {
		p.logger.Info("Stats persistence disabled")
		return nil
	}

	stored, err := p.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}
	p.acc.Restore(stored)

	_, version := p.acc.state()
	p.mu.Lock()
	p.savedVersion = version
	p.mu.Unlock()

	p.logger.Info("Loaded stored stats",
		zap.Int64("total_analyzed", stored.TotalAnalyzed),
		zap.Int64("spam_count", stored.SpamCount))

	if p.flushFreq > 0 {
		p.stopCh = make(chan struct{})
		p.done = make(chan struct{})
		go p.startFlushTask()
	}
	return nil
}

// Flush saves the accumulator when it changed since the last save
func (p *Persister) Flush(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	current, version := p.acc.state()
	if version == p.savedVersion {
		return nil
	}

	if err := p.repo.Save(ctx, current); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	p.savedVersion = version
	return nil
}

// startFlushTask periodically flushes the accumulator
func (p *Persister) startFlushTask() {
	defer close(p.done)

	ticker := time.NewTicker(p.flushFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.Flush(context.Background()); err != nil {
				p.logger.Error("Failed to flush stats", zap.Error(err))
			}
		case <-p.stopCh:
			return
		}
	}
}

// Stop stops the flush task, saves pending changes and closes the repository
func (p *Persister) Stop(ctx context.Context) error {
	if !p.Enabled() {
		return nil
	}

	if p.stopCh != nil {
		close(p.stopCh)
		<-p.done
		p.stopCh = nil
	}

	flushErr := p.Flush(ctx)
	if err := p.repo.Close(); err != nil {
		p.logger.Error("Failed to close stats repository", zap.Error(err))
	}
	return flushErr
}

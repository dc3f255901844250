package factory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mikey/spam-detector-api/internal/adapters/store"
	"github.com/mikey/spam-detector-api/internal/config"
	"github.com/mikey/spam-detector-api/internal/core"
	"go.uber.org/zap"
)

// StatsStoreFactory creates stats repositories based on configuration
type StatsStoreFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewStatsStoreFactory creates a new stats store factory
func NewStatsStoreFactory(cfg *config.Config, logger *zap.Logger) *StatsStoreFactory {
	return &StatsStoreFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateStatsRepository creates a stats repository based on the
// configuration. It returns nil when persistence is disabled.
func (f *StatsStoreFactory) CreateStatsRepository(ctx context.Context) (core.StatsRepository, error) {
	statsCfg, err := f.cfg.GetStats()
	if err != nil {
		return nil, fmt.Errorf("invalid stats configuration: %w", err)
	}

	switch statsCfg.Store {
	case "", "none":
		return nil, nil
	case "sqlite":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(statsCfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		f.logger.Info("Using SQLite stats store", zap.String("path", statsCfg.SQLitePath))
		return store.NewSQLiteStore(statsCfg.SQLitePath, f.logger)
	case "mysql":
		f.logger.Info("Using MySQL stats store")
		return store.NewMySQLStore(ctx, statsCfg.MySQLDSN, f.logger)
	default:
		return nil, fmt.Errorf("unsupported stats store: %s", statsCfg.Store)
	}
}

// GetFlushFrequency returns how often stats are written to the store
func (f *StatsStoreFactory) GetFlushFrequency() (time.Duration, error) {
	return f.cfg.GetDuration("stats.flush_frequency")
}

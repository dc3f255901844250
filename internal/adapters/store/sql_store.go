// Package store persists detection statistics in SQL databases.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mikey/spam-detector-api/internal/core"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
)

// statsRowID is the id of the single row holding the aggregate
const statsRowID = 1

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "0001_detection_stats",
			Up: []string{`
				CREATE TABLE IF NOT EXISTS detection_stats (
					id INTEGER PRIMARY KEY,
					total_analyzed BIGINT NOT NULL,
					spam_count BIGINT NOT NULL,
					legitimate_count BIGINT NOT NULL,
					average_confidence DOUBLE PRECISION NOT NULL,
					updated_at BIGINT NOT NULL
				)`,
			},
			Down: []string{`DROP TABLE detection_stats`},
		},
	},
}

type statsRow struct {
	ID                int64   `db:"id"`
	TotalAnalyzed     int64   `db:"total_analyzed"`
	SpamCount         int64   `db:"spam_count"`
	LegitimateCount   int64   `db:"legitimate_count"`
	AverageConfidence float64 `db:"average_confidence"`
	UpdatedAt         int64   `db:"updated_at"`
}

// SQLStore is a StatsRepository backed by a SQL database
type SQLStore struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// newSQLStore wraps an open connection and applies pending migrations
func newSQLStore(db *sqlx.DB, dialect string, logger *zap.Logger) (*SQLStore, error) {
	applied, err := migrate.Exec(db.DB, dialect, migrations, migrate.Up)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	if applied > 0 {
		logger.Info("Applied stats migrations", zap.Int("count", applied), zap.String("dialect", dialect))
	}

	return &SQLStore{db: db, logger: logger}, nil
}

// Load returns the stored stats, or zero stats when none were saved
func (s *SQLStore) Load(ctx context.Context) (core.Stats, error) {
	var row statsRow
	err := s.db.GetContext(ctx, &row, `
		SELECT id, total_analyzed, spam_count, legitimate_count, average_confidence, updated_at
		FROM detection_stats
		WHERE id = ?
	`, statsRowID)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Stats{}, nil
	}
	if err != nil {
		return core.Stats{}, fmt.Errorf("failed to query stats: %w", err)
	}

	return core.Stats{
		TotalAnalyzed:     row.TotalAnalyzed,
		SpamCount:         row.SpamCount,
		LegitimateCount:   row.LegitimateCount,
		AverageConfidence: row.AverageConfidence,
	}, nil
}

// Save replaces the stored stats
func (s *SQLStore) Save(ctx context.Context, stats core.Stats) error {
	row := statsRow{
		ID:                statsRowID,
		TotalAnalyzed:     stats.TotalAnalyzed,
		SpamCount:         stats.SpamCount,
		LegitimateCount:   stats.LegitimateCount,
		AverageConfidence: stats.AverageConfidence,
		UpdatedAt:         time.Now().Unix(),
	}

	// REPLACE is understood by both SQLite and MySQL
	_, err := s.db.NamedExecContext(ctx, `
		REPLACE INTO detection_stats (id, total_analyzed, spam_count, legitimate_count, average_confidence, updated_at)
		VALUES (:id, :total_analyzed, :spam_count, :legitimate_count, :average_confidence, :updated_at)
	`, row)
	if err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	s.logger.Debug("Saved stats", zap.Int64("total_analyzed", stats.TotalAnalyzed))
	return nil
}

// Close closes the database connection
func (s *SQLStore) Close() error {
	return s.db.Close()
}

package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// NewSQLiteStore opens (and creates if needed) a SQLite stats store
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLStore, error) {
	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// SQLite allows a single writer; in-memory databases are per connection.
	db.SetMaxOpenConns(1)

	return newSQLStore(db, "sqlite3", logger)
}

package store

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// NewMySQLStore connects to MySQL, retrying while the server comes up
func NewMySQLStore(ctx context.Context, dsn string, logger *zap.Logger) (*SQLStore, error) {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	b := retry.NewFibonacci(500 * time.Millisecond)
	err = retry.Do(ctx, retry.WithMaxRetries(5, b), func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			logger.Warn("MySQL not reachable yet", zap.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	return newSQLStore(db, "mysql", logger)
}

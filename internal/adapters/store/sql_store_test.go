package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mikey/spam-detector-api/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()

	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "stats.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLStore_LoadEmpty(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.Stats{}, stats)
}

func TestSQLStore_SaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := core.Stats{TotalAnalyzed: 3, SpamCount: 1, LegitimateCount: 2, AverageConfidence: 0.4}
	require.NoError(t, s.Save(ctx, first))

	second := core.Stats{TotalAnalyzed: 4, SpamCount: 2, LegitimateCount: 2, AverageConfidence: 0.55}
	require.NoError(t, s.Save(ctx, second))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}

func TestSQLStore_ReopenKeepsStatsAndSkipsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, core.Stats{TotalAnalyzed: 1, SpamCount: 1, AverageConfidence: 1}))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded.TotalAnalyzed)
	assert.Equal(t, 1.0, loaded.AverageConfidence)
}

func TestMySQLStore_GivesUpWhenUnreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMySQLStore(ctx, "user:pass@tcp(127.0.0.1:1)/nothing?timeout=50ms", zap.NewNop())
	assert.Error(t, err)
}

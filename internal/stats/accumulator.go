// Package stats accumulates classification statistics and persists them.
package stats

import (
	"sync"

	"github.com/mikey/spam-detector-api/internal/core"
)

// Accumulator holds the process-wide classification tallies. All methods are
// safe for concurrent use.
type Accumulator struct {
	mu    sync.Mutex
	stats core.Stats
	// version increases on every mutation so persistence can skip clean state
	version uint64
}

// NewAccumulator creates an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Record adds one classification result
func (a *Accumulator) Record(result core.ScoreResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.record(result)
	a.version++
}

// RecordBatch adds results in order, as if Record had been called for each,
// without letting other callers interleave.
func (a *Accumulator) RecordBatch(results []core.ScoreResult) {
	if len(results) == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, result := range results {
		a.record(result)
	}
	a.version++
}

func (a *Accumulator) record(result core.ScoreResult) {
	previous := a.stats.TotalAnalyzed
	a.stats.TotalAnalyzed++
	if result.IsSpam {
		a.stats.SpamCount++
	} else {
		a.stats.LegitimateCount++
	}
	a.stats.AverageConfidence = (a.stats.AverageConfidence*float64(previous) + result.Confidence) / float64(a.stats.TotalAnalyzed)
}

// Snapshot returns the reporting view of the current tallies
func (a *Accumulator) Snapshot() core.StatsReport {
	return Report(a.Stats())
}

// Stats returns a copy of the raw tallies
func (a *Accumulator) Stats() core.Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Reset sets every tally back to zero
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stats = core.Stats{}
	a.version++
}

// Restore replaces the tallies, typically with values loaded from storage
func (a *Accumulator) Restore(s core.Stats) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stats = s
	a.version++
}

// state returns the tallies together with their version
func (a *Accumulator) state() (core.Stats, uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats, a.version
}

// Report derives the reported figures from raw tallies
func Report(s core.Stats) core.StatsReport {
	report := core.StatsReport{
		TotalAnalyzed:     s.TotalAnalyzed,
		SpamDetected:      s.SpamCount,
		LegitimateEmails:  s.LegitimateCount,
		AverageConfidence: core.Round(s.AverageConfidence, 3),
	}
	if s.TotalAnalyzed > 0 {
		total := float64(s.TotalAnalyzed)
		report.SpamPercentage = core.Round(float64(s.SpamCount)/total*100, 2)
		report.AccuracyRate = core.Round(float64(s.SpamCount+s.LegitimateCount)/total, 3)
	}
	return report
}

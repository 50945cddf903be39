// Package stats tracks the guessing agent's lifetime record across daily runs.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/joe-boudreau/llm-quordle-solver/internal/game"
	"github.com/joe-boudreau/llm-quordle-solver/internal/store"
)

// GuesserStats is the win/loss record. AttemptsDistributionForWins histograms
// how many guesses winning games took, keyed by attempt count 1..9.
type GuesserStats struct {
	WinCount                    int         `json:"winCount"`
	LossCount                   int         `json:"lossCount"`
	AttemptsDistributionForWins map[int]int `json:"attemptsDistributionForWins"`
	CurrentStreak               int         `json:"currentStreak"`
}

// NewGuesserStats returns zeroed stats with every histogram bucket present.
func NewGuesserStats() GuesserStats {
	dist := make(map[int]int, game.MaxAttempts)
	for i := 1; i <= game.MaxAttempts; i++ {
		dist[i] = 0
	}
	return GuesserStats{AttemptsDistributionForWins: dist}
}

// Repository persists stats in the blob store. Read-modify-write with a
// single assumed writer; last write wins.
type Repository struct {
	blob store.Blob
	log  *zap.Logger
}

// NewRepository wraps a blob store.
func NewRepository(blob store.Blob, log *zap.Logger) *Repository {
	return &Repository{blob: blob, log: log}
}

// Load reads current stats, returning zeroed stats when none exist yet.
func (r *Repository) Load(ctx context.Context) (GuesserStats, error) {
	raw, err := r.blob.Download(ctx, store.StatsKey)
	if errors.Is(err, store.ErrNotFound) {
		return NewGuesserStats(), nil
	}
	if err != nil {
		return GuesserStats{}, fmt.Errorf("load stats: %w", err)
	}

	stats := NewGuesserStats()
	if err := json.Unmarshal(raw, &stats); err != nil {
		return GuesserStats{}, fmt.Errorf("decode stats: %w", err)
	}
	return stats, nil
}

// Update folds a finished game into the record and saves it back. A win
// bumps the count, the histogram bucket and the streak; a loss resets the
// streak.
func (r *Repository) Update(ctx context.Context, state game.State) (GuesserStats, error) {
	stats, err := r.Load(ctx)
	if err != nil {
		return GuesserStats{}, err
	}

	if state.IsSolved() {
		stats.WinCount++
		stats.AttemptsDistributionForWins[state.NumAttempts()]++
		stats.CurrentStreak++
	} else {
		stats.LossCount++
		stats.CurrentStreak = 0
	}

	raw, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return GuesserStats{}, fmt.Errorf("encode stats: %w", err)
	}
	if err := r.blob.Upload(ctx, store.StatsKey, raw); err != nil {
		return GuesserStats{}, fmt.Errorf("save stats: %w", err)
	}

	r.log.Info("stats updated",
		zap.Int("wins", stats.WinCount),
		zap.Int("losses", stats.LossCount),
		zap.Int("streak", stats.CurrentStreak))
	return stats, nil
}

package storage

import (
	"context"
	"fmt"
)

type StatsRepo struct {
	store Store
}

func NewStatsRepo(store Store) *StatsRepo {
	return &StatsRepo{store: store}
}

// DefaultStats is the zeroed record used when nothing has been stored yet. An
// empty LastActiveDate means the user has never been active.
func DefaultStats() UserStats {
	return UserStats{}
}

// Load returns the stored stats, or DefaultStats when the key is missing or
// unreadable. Negative counters are clamped to zero.
func (r *StatsRepo) Load(ctx context.Context) (UserStats, error) {
	var st UserStats
	found, err := loadJSON(ctx, r.store, KeyStats, &st)
	if err != nil {
		return DefaultStats(), fmt.Errorf("stats repo: %w", err)
	}
	if !found {
		return DefaultStats(), nil
	}
	st.TotalCoins = max(st.TotalCoins, 0)
	st.CurrentStreak = max(st.CurrentStreak, 0)
	st.LongestStreak = max(st.LongestStreak, st.CurrentStreak)
	st.TasksCompletedToday = max(st.TasksCompletedToday, 0)
	st.TasksCompletedThisWeek = max(st.TasksCompletedThisWeek, 0)
	return st, nil
}

func (r *StatsRepo) Stage(b *Batch, st UserStats) {
	b.Put(KeyStats, st)
}

package engine

import (
	"context"

	"dailyquest/internal/storage"
)

// ensureRollover is the only place the daily reset happens. It runs at most once
// per calendar day per session; when the last activity was on an earlier day it
// clears task completion and recomputes stats from the ledger.
//
// LastActiveDate is left alone so the first completion of the new day can still
// tell whether yesterday was active. Nothing happens when the stats failed to
// load.
func (s *Service) ensureRollover(ctx context.Context) error {
	now := s.clock()
	today := DayKey(now)
	if s.rolledOver == today {
		return nil
	}
	s.rolledOver = today

	// Without the stored stats there is no last active day to compare against.
	if s.unreadable[storage.KeyStats] {
		return nil
	}

	last := s.state.stats.LastActiveDate
	if !shouldReset(last, today) {
		return nil
	}

	s.resetDaily()
	s.recomputeStats(last == previousDayKey(now))
	s.log.Info("daily rollover", "last_active", last, "today", today, "tasks", len(s.state.tasks))
	return s.persist(ctx, "rollover", storage.KeyTasks, storage.KeyStats)
}

// recomputeStats rebuilds the derived counters from the task list and ledger.
// A streak whose last active day is older than yesterday has lapsed.
func (s *Service) recomputeStats(streakAlive bool) {
	st := &s.state.stats
	st.TotalCoins = Balance(s.state.ledger)
	st.TasksCompletedToday = countCompleted(s.state.tasks)
	st.TasksCompletedThisWeek = sumCompleted(WeeklyStats(s.state.ledger, s.clock()))
	if !streakAlive {
		st.CurrentStreak = 0
	}
	st.LongestStreak = max(st.LongestStreak, st.CurrentStreak)
}

// updateDailyStats runs after every toggle. The streak only moves on the first
// update of a day that has at least one completed task: once LastActiveDate is
// today the guard below is false for the rest of the day.
func (s *Service) updateDailyStats() bool {
	now := s.clock()
	today := DayKey(now)
	st := &s.state.stats

	completed := countCompleted(s.state.tasks)
	st.TasksCompletedToday = completed

	moved := false
	if completed > 0 && st.LastActiveDate != today {
		if st.LastActiveDate == previousDayKey(now) {
			st.CurrentStreak++
		} else {
			st.CurrentStreak = 1
		}
		st.LongestStreak = max(st.LongestStreak, st.CurrentStreak)
		moved = true
	}

	st.LastActiveDate = today
	st.TasksCompletedThisWeek = sumCompleted(WeeklyStats(s.state.ledger, now))
	return moved
}

// Stats returns the current stats record.
func (s *Service) Stats(ctx context.Context) storage.UserStats {
	s.begin(ctx)
	defer s.mu.Unlock()
	return s.state.stats
}

// Summary is the numbers shown on the status screen.
type Summary struct {
	Stats          storage.UserStats
	CompletedToday int
	TotalTasks     int
	CoinsEarned    int
	OwnedItems     int
}

func (s *Service) Summary(ctx context.Context) Summary {
	s.begin(ctx)
	defer s.mu.Unlock()
	return Summary{
		Stats:          s.state.stats,
		CompletedToday: countCompleted(s.state.tasks),
		TotalTasks:     len(s.state.tasks),
		CoinsEarned:    Earned(s.state.ledger),
		OwnedItems:     len(s.state.inventory.OwnedItems),
	}
}

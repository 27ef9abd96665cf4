package engine

import (
	"context"
	"fmt"

	"dailyquest/internal/storage"
)

type ToggleResult struct {
	Task storage.Task
	// CoinsChanged is +reward when the task was checked and -reward when unchecked.
	CoinsChanged int
	Transaction  storage.CoinTransaction
	Stats        storage.UserStats
	// StreakUpdated is true when this toggle was the first completion of the day.
	StreakUpdated bool
}

// ToggleTask flips a task's completion. Checking it credits the task reward and
// unchecking it debits the same amount; either way exactly one ledger entry is
// written and the daily stats are updated.
func (s *Service) ToggleTask(ctx context.Context, id string) (*ToggleResult, error) {
	s.begin(ctx)
	defer s.mu.Unlock()

	i := s.findTask(id)
	if i < 0 {
		return nil, NotFoundError{Kind: "task", ID: id}
	}

	task := &s.state.tasks[i]
	task.Completed = !task.Completed
	if task.Completed {
		now := s.clock()
		task.LastCompletedAt = &now
	} else {
		task.LastCompletedAt = nil
	}

	var (
		txn   storage.CoinTransaction
		delta int
		err   error
	)
	if task.Completed {
		txn, err = s.addCoins(s.reward, fmt.Sprintf("Completed task: %s", task.Title), task.ID)
		delta = s.reward
	} else {
		txn, err = s.deductCoins(s.reward, fmt.Sprintf("Unchecked task: %s", task.Title), task.ID)
		delta = -s.reward
	}
	if err != nil {
		return nil, err
	}

	moved := s.updateDailyStats()
	res := &ToggleResult{
		Task:          *task,
		CoinsChanged:  delta,
		Transaction:   txn,
		Stats:         s.state.stats,
		StreakUpdated: moved,
	}

	if err := s.persist(ctx, "toggle task", storage.KeyTasks, storage.KeyLedger, storage.KeyStats); err != nil {
		return nil, err
	}
	return res, nil
}

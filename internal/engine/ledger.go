package engine

import (
	"context"

	"dailyquest/internal/storage"
)

// AddCoins appends a credit and raises the balance by amount.
func (s *Service) AddCoins(ctx context.Context, amount int, reason string, taskID string) (*storage.CoinTransaction, error) {
	s.begin(ctx)
	defer s.mu.Unlock()

	txn, err := s.addCoins(amount, reason, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "add coins", storage.KeyLedger, storage.KeyStats); err != nil {
		return nil, err
	}
	return &txn, nil
}

// DeductCoins appends a debit of -amount. The balance never drops below zero even
// when amount exceeds it; the ledger still records the full debit.
func (s *Service) DeductCoins(ctx context.Context, amount int, reason string, taskID string) (*storage.CoinTransaction, error) {
	s.begin(ctx)
	defer s.mu.Unlock()

	txn, err := s.deductCoins(amount, reason, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, "deduct coins", storage.KeyLedger, storage.KeyStats); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *Service) addCoins(amount int, reason string, taskID string) (storage.CoinTransaction, error) {
	if amount <= 0 {
		return storage.CoinTransaction{}, ValidationError{Field: "amount", Reason: "must be positive"}
	}
	txn := s.appendTxn(amount, reason, taskID)
	s.state.stats.TotalCoins += amount
	s.log.Debug("coins added", "amount", amount, "reason", reason, "balance", s.state.stats.TotalCoins)
	return txn, nil
}

func (s *Service) deductCoins(amount int, reason string, taskID string) (storage.CoinTransaction, error) {
	if amount <= 0 {
		return storage.CoinTransaction{}, ValidationError{Field: "amount", Reason: "must be positive"}
	}
	txn := s.appendTxn(-amount, reason, taskID)
	s.state.stats.TotalCoins = max(0, s.state.stats.TotalCoins-amount)
	s.log.Debug("coins deducted", "amount", amount, "reason", reason, "balance", s.state.stats.TotalCoins)
	return txn, nil
}

func (s *Service) appendTxn(amount int, reason string, taskID string) storage.CoinTransaction {
	now := s.clock()
	txn := storage.CoinTransaction{
		ID:        s.newID(),
		Amount:    amount,
		Reason:    reason,
		Timestamp: now,
		TaskID:    taskID,
	}
	s.state.ledger = append(s.state.ledger, txn)
	s.state.stats.TasksCompletedThisWeek = sumCompleted(WeeklyStats(s.state.ledger, now))
	return txn
}

// WeeklyStats returns the seven-day completion chart ending today.
func (s *Service) WeeklyStats(ctx context.Context) []DayStat {
	s.begin(ctx)
	defer s.mu.Unlock()
	return WeeklyStats(s.state.ledger, s.clock())
}

// RecentTransactions returns up to limit ledger entries, newest first. A
// non-positive limit returns the whole ledger.
func (s *Service) RecentTransactions(ctx context.Context, limit int) []storage.CoinTransaction {
	s.begin(ctx)
	defer s.mu.Unlock()

	n := len(s.state.ledger)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]storage.CoinTransaction, 0, limit)
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.state.ledger[i])
	}
	return out
}

// Ledger returns a copy of the full ledger in append order.
func (s *Service) Ledger(ctx context.Context) []storage.CoinTransaction {
	s.begin(ctx)
	defer s.mu.Unlock()
	return append([]storage.CoinTransaction(nil), s.state.ledger...)
}

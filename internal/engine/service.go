package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"dailyquest/internal/storage"
)

// Clock returns the current time. Tests inject a fixed clock.
type Clock func() time.Time

type Option func(*Service)

func WithClock(c Clock) Option { return func(s *Service) { s.now = c } }

// WithLocation sets the time zone that decides calendar days.
func WithLocation(loc *time.Location) Option { return func(s *Service) { s.loc = loc } }

func WithLogger(l *slog.Logger) Option { return func(s *Service) { s.log = l } }

func WithCatalog(c *Catalog) Option { return func(s *Service) { s.catalog = c } }

// WithTaskReward overrides DefaultTaskReward. Non-positive values are ignored.
func WithTaskReward(coins int) Option {
	return func(s *Service) {
		if coins > 0 {
			s.reward = coins
		}
	}
}

func WithIDGenerator(f func() string) Option { return func(s *Service) { s.newID = f } }

// Service is one session over the persisted state. It loads every blob when
// opened, mutates its snapshot in memory and flushes the touched keys after each
// operation.
type Service struct {
	mu sync.Mutex

	store     storage.Store
	tasks     *storage.TaskRepo
	ledger    *storage.LedgerRepo
	stats     *storage.StatsRepo
	inventory *storage.InventoryRepo

	now     Clock
	loc     *time.Location
	log     *slog.Logger
	catalog *Catalog
	reward  int
	newID   func() string

	state snapshot
	// dirty holds keys whose last write failed; they ride along with the next flush.
	dirty map[string]bool
	// unreadable holds keys whose load failed. Their in-memory value is a default,
	// so they are never written back during this session.
	unreadable map[string]bool
	// rolledOver is the day ensureRollover last ran for.
	rolledOver string
}

type snapshot struct {
	tasks     []storage.Task
	ledger    []storage.CoinTransaction
	stats     storage.UserStats
	inventory storage.UserInventory
}

// Open starts a session: it loads the four blobs from store (falling back to
// defaults on read failures) and applies the daily rollover if the calendar day
// has changed since the last activity. Keys that could not be read are never
// written during the session.
func Open(ctx context.Context, store storage.Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("engine: store is required")
	}
	s := &Service{
		store:      store,
		tasks:      storage.NewTaskRepo(store),
		ledger:     storage.NewLedgerRepo(store),
		stats:      storage.NewStatsRepo(store),
		inventory:  storage.NewInventoryRepo(store),
		now:        time.Now,
		loc:        time.Local,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		catalog:    DefaultCatalog(),
		reward:     DefaultTaskReward,
		newID:      uuid.NewString,
		dirty:      map[string]bool{},
		unreadable: map[string]bool{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)
	if err := s.ensureRollover(ctx); err != nil {
		s.log.Warn("rollover not persisted", "err", err)
	}
	return s, nil
}

func (s *Service) load(ctx context.Context) {
	var err error
	if s.state.tasks, err = s.tasks.Load(ctx); err != nil {
		s.markUnreadable(storage.KeyTasks, err)
	}
	if s.state.ledger, err = s.ledger.Load(ctx); err != nil {
		s.markUnreadable(storage.KeyLedger, err)
	}
	if s.state.stats, err = s.stats.Load(ctx); err != nil {
		s.markUnreadable(storage.KeyStats, err)
	}
	if s.state.inventory, err = s.inventory.Load(ctx); err != nil {
		s.markUnreadable(storage.KeyInventory, err)
	}
}

func (s *Service) markUnreadable(key string, err error) {
	s.unreadable[key] = true
	s.log.Warn("load failed, using defaults", "key", key, "err", err)
}

// begin locks the service and applies a pending rollover. Callers must
// defer s.mu.Unlock().
func (s *Service) begin(ctx context.Context) {
	s.mu.Lock()
	if err := s.ensureRollover(ctx); err != nil {
		s.log.Warn("rollover not persisted", "err", err)
	}
}

// Flush retries writes that failed earlier.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flush(ctx, "flush")
}

// persist marks keys as changed and writes every pending key in one SetMany.
func (s *Service) persist(ctx context.Context, op string, keys ...string) error {
	for _, k := range keys {
		s.dirty[k] = true
	}
	return s.flush(ctx, op)
}

func (s *Service) flush(ctx context.Context, op string) error {
	if len(s.dirty) == 0 {
		return nil
	}
	// All or nothing: a write that touches a key we could not read would replace
	// stored data with defaults.
	var blocked []string
	for key := range s.dirty {
		if s.unreadable[key] {
			blocked = append(blocked, key)
		}
	}
	if len(blocked) > 0 {
		sort.Strings(blocked)
		s.log.Warn("write skipped", "op", op, "unreadable", blocked)
		return PersistenceError{Op: op, Err: fmt.Errorf("%w: %s", ErrUnreadable, strings.Join(blocked, ", "))}
	}
	b := storage.NewBatch()
	for key := range s.dirty {
		switch key {
		case storage.KeyTasks:
			s.tasks.Stage(b, s.state.tasks)
		case storage.KeyLedger:
			s.ledger.Stage(b, s.state.ledger)
		case storage.KeyStats:
			s.stats.Stage(b, s.state.stats)
		case storage.KeyInventory:
			s.inventory.Stage(b, s.state.inventory)
		}
	}
	if err := b.Commit(ctx, s.store); err != nil {
		s.log.Error("write failed", "op", op, "keys", b.Keys(), "err", err)
		return PersistenceError{Op: op, Err: err}
	}
	s.dirty = map[string]bool{}
	return nil
}

// Pending reports whether some state has not reached the store yet.
func (s *Service) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dirty) > 0
}

func (s *Service) clock() time.Time {
	return s.now().In(s.loc)
}

func (s *Service) todayKey() string {
	return DayKey(s.clock())
}

// Catalog returns the shop catalog the service sells from.
func (s *Service) Catalog() *Catalog { return s.catalog }

// TaskReward is the coin amount granted per completed task.
func (s *Service) TaskReward() int { return s.reward }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ValidationError{Field: "title", Reason: "title is required"}
	}
	return t, nil
}

func (s *Service) findTask(id string) int {
	for i := range s.state.tasks {
		if s.state.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

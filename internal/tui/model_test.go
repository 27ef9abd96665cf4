package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dailyquest/internal/engine"
	"dailyquest/internal/storage"
)

func newTestBoard(t *testing.T) (boardModel, *engine.Service) {
	t.Helper()
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	svc, err := engine.Open(context.Background(), storage.NewMemoryStore(),
		engine.WithClock(func() time.Time { return now }),
		engine.WithLocation(time.UTC),
	)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return newBoardModel(context.Background(), svc), svc
}

// run applies msg and then feeds every produced command back into the model,
// stopping at quit.
func run(m boardModel, msg tea.Msg) boardModel {
	for msg != nil {
		next, cmd := m.Update(msg)
		m = next.(boardModel)
		if cmd == nil {
			return m
		}
		msg = cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return m
		}
	}
	return m
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBoardAddToggleDelete(t *testing.T) {
	m, svc := newTestBoard(t)
	ctx := context.Background()
	m = run(m, m.Init()())

	m = run(m, keys("a"))
	if !m.adding {
		t.Fatalf("expected input mode")
	}
	m = run(m, keys("Drink"))
	m = run(m, tea.KeyMsg{Type: tea.KeySpace})
	m = run(m, keys("water"))
	m = run(m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(m.tasks) != 1 || m.tasks[0].Title != "Drink water" {
		t.Fatalf("tasks=%+v", m.tasks)
	}

	m = run(m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.tasks[0].Completed {
		t.Fatalf("task should be completed")
	}
	if m.summary.Stats.TotalCoins != 5 {
		t.Fatalf("coins=%d, want 5", m.summary.Stats.TotalCoins)
	}
	if !strings.Contains(m.View(), "Coins 5") {
		t.Fatalf("header missing coins:\n%s", m.View())
	}
	if m.week[6].Completed != 1 {
		t.Fatalf("week today=%d, want 1", m.week[6].Completed)
	}

	m = run(m, keys("x"))
	if len(m.tasks) != 0 {
		t.Fatalf("tasks=%d, want 0", len(m.tasks))
	}
	if got := svc.Stats(ctx).TotalCoins; got != 5 {
		t.Fatalf("delete should keep coins, got %d", got)
	}
}

func TestBoardEscCancelsAdd(t *testing.T) {
	m, svc := newTestBoard(t)
	m = run(m, m.Init()())
	m = run(m, keys("a"))
	m = run(m, keys("nope"))
	m = run(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.adding {
		t.Fatalf("input mode should end")
	}
	if n := len(svc.Tasks(context.Background())); n != 0 {
		t.Fatalf("tasks=%d, want 0", n)
	}
}

func TestBoardBlankTitleIsRejected(t *testing.T) {
	m, _ := newTestBoard(t)
	m = run(m, m.Init()())
	m = run(m, keys("a"))
	m = run(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.HasPrefix(m.lastLog, "Add failed") {
		t.Fatalf("lastLog=%q", m.lastLog)
	}
}

func TestProgressBar(t *testing.T) {
	if got := progressBar(5, 10, 10); got != "[#####-----]" {
		t.Fatalf("bar=%q", got)
	}
	if got := progressBar(20, 10, 4); got != "[####]" {
		t.Fatalf("bar=%q", got)
	}
	if got := progressBar(0, 0, 4); got != "[----]" {
		t.Fatalf("bar=%q", got)
	}
}

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dailyquest/internal/engine"
	"dailyquest/internal/storage"
	"dailyquest/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	summary engine.Summary
	tasks   []storage.Task
	week    []engine.DayStat

	selected int

	// adding is true while the user types a new task title into input.
	adding bool
	input  []rune

	lastLog string
	loading bool
}

type loadedMsg struct {
	summary engine.Summary
	tasks   []storage.Task
	week    []engine.DayStat
}

type toggledMsg struct {
	res *engine.ToggleResult
	err error
}

type deletedMsg struct {
	title   string
	removed bool
	err     error
}

type addedMsg struct {
	task *storage.Task
	err  error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{
			summary: m.svc.Summary(m.ctx),
			tasks:   m.svc.Tasks(m.ctx),
			week:    m.svc.WeeklyStats(m.ctx),
		}
	}
}

func (m boardModel) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ToggleTask(m.ctx, id)
		return toggledMsg{res: res, err: err}
	}
}

func (m boardModel) deleteCmd(t storage.Task) tea.Cmd {
	return func() tea.Msg {
		removed, err := m.svc.DeleteTask(m.ctx, t.ID)
		return deletedMsg{title: t.Title, removed: removed, err: err}
	}
}

func (m boardModel) addCmd(title string) tea.Cmd {
	return func() tea.Msg {
		t, err := m.svc.AddTask(m.ctx, title)
		return addedMsg{task: t, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.summary = msg.summary
		m.tasks = msg.tasks
		m.week = msg.week
		m.clampSelection()
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Toggle failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		verb := "Completed"
		if !msg.res.Task.Completed {
			verb = "Unchecked"
		}
		m.lastLog = fmt.Sprintf("%s %q: %+d coins", verb, msg.res.Task.Title, msg.res.CoinsChanged)
		if msg.res.StreakUpdated {
			m.lastLog += fmt.Sprintf(" | streak %d", msg.res.Stats.CurrentStreak)
		}
		return m, m.loadCmd()
	case deletedMsg:
		switch {
		case msg.err != nil:
			m.lastLog = "Delete failed: " + msg.err.Error()
		case msg.removed:
			m.lastLog = fmt.Sprintf("Deleted %q.", msg.title)
		default:
			m.lastLog = "Task already gone."
		}
		return m, m.loadCmd()
	case addedMsg:
		if msg.err != nil {
			m.lastLog = "Add failed: " + msg.err.Error()
		} else {
			m.lastLog = fmt.Sprintf("Added %q.", msg.task.Title)
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		if m.adding {
			return m.updateInput(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "a":
			m.adding = true
			m.input = m.input[:0]
			return m, nil
		case "c", " ", "enter":
			t := m.current()
			if t == nil {
				m.lastLog = "No task selected."
				return m, nil
			}
			return m, m.toggleCmd(t.ID)
		case "x", "delete":
			t := m.current()
			if t == nil {
				m.lastLog = "No task selected."
				return m, nil
			}
			return m, m.deleteCmd(*t)
		}
	}
	return m, nil
}

func (m boardModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.adding = false
		m.lastLog = "Add cancelled."
		return m, nil
	case tea.KeyEnter:
		m.adding = false
		title := string(m.input)
		m.input = m.input[:0]
		return m, m.addCmd(title)
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	case tea.KeySpace:
		m.input = append(m.input, ' ')
		return m, nil
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
		return m, nil
	}
	return m, nil
}

func (m *boardModel) clampSelection() {
	if m.selected >= len(m.tasks) {
		m.selected = len(m.tasks) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) current() *storage.Task {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return nil
	}
	t := m.tasks[m.selected]
	return &t
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		leftW = min(leftW, m.width/2)
		leftW = max(leftW, 18)
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	rows := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.loading && m.tasks == nil {
		return "DailyQuest | loading…"
	}
	st := m.summary.Stats
	done := progressBar(m.summary.CompletedToday, m.summary.TotalTasks, 20)
	return fmt.Sprintf("DailyQuest | Coins %d | Streak %d (best %d) | Today %d/%d %s",
		st.TotalCoins, st.CurrentStreak, st.LongestStreak,
		m.summary.CompletedToday, m.summary.TotalTasks, done)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"This week"}
	peak := 1
	for _, d := range m.week {
		peak = max(peak, d.Completed)
	}
	for _, d := range m.week {
		lines = append(lines, fmt.Sprintf("%s %s %d", d.DayLabel, progressBar(d.Completed, peak, 12), d.Completed))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- space/c: toggle")
	lines = append(lines, "- a: add task")
	lines = append(lines, "- x: delete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading && m.tasks == nil {
		return "Loading…"
	}
	out := []string{"Today's quests"}
	if len(m.tasks) == 0 {
		out = append(out, "(no tasks yet, press a to add one)")
	}
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		out = append(out, fmt.Sprintf("%s%s %s", cursor, ui.Checkbox(t.Completed), t.Title))
	}
	if m.adding {
		out = append(out, "", "New task: "+string(m.input)+"▌")
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	value = max(0, min(value, total))
	filled := min(value*width/total, width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DailyQuest theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTodo    = "⬜"
	IconTrophy  = "🏆"
	IconCoin    = "🪙"
	IconFire    = "🔥"
	IconCart    = "🛒"
	IconShirt   = "👕"
	IconGlasses = "🕶️"
	IconFrame   = "🖼️"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconUndo    = "↩️"
	IconTrash   = "🗑️"
	IconScroll  = "📜"
	IconChart   = "📊"
	IconLock    = "🔒"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeStreak = lipgloss.NewStyle().Bold(true).Foreground(cWarn).Render("STREAK UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Coins renders a balance such as "🪙 45".
func Coins(n int) string {
	return Gold.Render(fmt.Sprintf("%s %d", IconCoin, n))
}

// Delta renders a signed coin change: green for credits, red for debits.
func Delta(n int) string {
	if n >= 0 {
		return Good.Render(fmt.Sprintf("+%d", n))
	}
	return Bad.Render(fmt.Sprintf("%d", n))
}

func Streak(days int) string {
	if days == 0 {
		return Muted.Render(IconFire + " 0 days")
	}
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return Warn.Render(fmt.Sprintf("%s %d %s", IconFire, days, unit))
}

func Checkbox(done bool) string {
	if done {
		return IconDone
	}
	return IconTodo
}

// CategoryIcon maps an equip slot name to its emoji.
func CategoryIcon(category string) string {
	switch strings.ToLower(category) {
	case "clothing":
		return IconShirt
	case "accessory":
		return IconGlasses
	case "background":
		return IconFrame
	default:
		return IconSparkle
	}
}

// Bar draws a fixed-width bar for value out of total.
func Bar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 0 {
		width = 1
	}
	value = max(0, min(value, total))
	filled := value * width / total
	return strings.Repeat("█", filled) + Muted.Render(strings.Repeat("░", width-filled))
}

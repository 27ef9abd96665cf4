package engine

import (
	"time"

	"dailyquest/internal/storage"
)

// Balance replays the ledger the way totalCoins is maintained: credits add and
// debits subtract with a floor of zero at each step.
func Balance(txns []storage.CoinTransaction) int {
	total := 0
	for _, t := range txns {
		total += t.Amount
		if total < 0 {
			total = 0
		}
	}
	return total
}

// Earned is the sum of every credit in the ledger.
func Earned(txns []storage.CoinTransaction) int {
	earned := 0
	for _, t := range txns {
		if t.Amount > 0 {
			earned += t.Amount
		}
	}
	return earned
}

// isTaskReward reports whether t is a task-completion credit.
func isTaskReward(t storage.CoinTransaction) bool {
	return t.Amount > 0 && t.TaskID != ""
}

// DayStat is one bar of the weekly chart.
type DayStat struct {
	Date      string // YYYY-MM-DD
	DayLabel  string // Mon, Tue, ...
	Completed int
}

// WeeklyStats counts task-completion credits for each of the seven calendar days
// ending with now's day, oldest first. Days are taken in now's location.
func WeeklyStats(txns []storage.CoinTransaction, now time.Time) []DayStat {
	today := startOfDay(now)
	out := make([]DayStat, 0, 7)
	index := make(map[string]int, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := DayKey(day)
		index[key] = len(out)
		out = append(out, DayStat{Date: key, DayLabel: day.Format("Mon")})
	}
	for _, t := range txns {
		if !isTaskReward(t) {
			continue
		}
		if i, ok := index[DayKey(t.Timestamp.In(now.Location()))]; ok {
			out[i].Completed++
		}
	}
	return out
}

func sumCompleted(days []DayStat) int {
	n := 0
	for _, d := range days {
		n += d.Completed
	}
	return n
}

func countCompleted(tasks []storage.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

package engine

import "time"

// DayLayout is the calendar-date format stored in UserStats.LastActiveDate.
const DayLayout = "2006-01-02"

// DayKey formats t as a calendar date in t's location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// previousDayKey is the calendar day before now. AddDate keeps this correct
// across DST changes where now-24h would not be.
func previousDayKey(now time.Time) string {
	return DayKey(startOfDay(now).AddDate(0, 0, -1))
}

// shouldReset compares calendar-date strings, not elapsed time.
func shouldReset(lastActiveDate, today string) bool {
	return lastActiveDate != today
}

// ShouldReset reports whether lastActiveDate differs from today.
func (s *Service) ShouldReset(lastActiveDate string) bool {
	return shouldReset(lastActiveDate, s.todayKey())
}

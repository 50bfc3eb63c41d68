package calendar

import "time"

const day = 24 * time.Hour

// DateSpan is the Monday..Sunday range covered by one roster week.
type DateSpan struct {
	Start time.Time
	End   time.Time
}

// FirstMonday returns the Monday on which week 1 of year starts.
//
// If January 1 falls on Friday, Saturday or Sunday, week 1 starts on the
// following Monday; otherwise it starts on the Monday on or before January 1.
func FirstMonday(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	weekday := mondayIndex(jan1.Weekday())
	if weekday > 3 {
		return jan1.AddDate(0, 0, 7-weekday)
	}
	return jan1.AddDate(0, 0, -weekday)
}

// WeekSpan returns the dates covered by week in year. Weeks are not clamped
// to the year, so week 0 or week 53 resolve to dates in the adjacent year.
func WeekSpan(year, week int) DateSpan {
	start := FirstMonday(year).AddDate(0, 0, (week-1)*7)
	return DateSpan{Start: start, End: start.AddDate(0, 0, 6)}
}

// Days reports the inclusive length of the span.
func (s DateSpan) Days() int {
	return int(s.End.Sub(s.Start)/day) + 1
}

// mondayIndex converts a time.Weekday to Monday=0..Sunday=6.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

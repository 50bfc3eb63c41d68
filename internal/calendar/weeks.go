// Package calendar enumerates the weeks of a roster year and maps week numbers
// to calendar dates.
package calendar

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// WeekPolicy decides how many weeks a roster year has.
type WeekPolicy string

const (
	// PolicyFixed always yields 52 weeks.
	PolicyFixed WeekPolicy = "fixed"
	// PolicyISO yields the ISO-8601 week count of the year (52 or 53).
	PolicyISO WeekPolicy = "iso"

	fixedWeekCount = 52
)

// ParseWeekPolicy maps a config or flag value to a WeekPolicy.
// An empty value selects PolicyFixed.
func ParseWeekPolicy(value string) (WeekPolicy, error) {
	switch WeekPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", PolicyFixed:
		return PolicyFixed, nil
	case PolicyISO:
		return PolicyISO, nil
	default:
		return "", fmt.Errorf("week policy must be 'fixed' or 'iso', got %q", value)
	}
}

// WeekCount returns the number of weeks the policy produces for year.
func WeekCount(year int, policy WeekPolicy) int {
	if policy != PolicyISO {
		return fixedWeekCount
	}
	// December 28 always sits in the last ISO week of its year.
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// Weeks yields 1..WeekCount(year, policy) in order. Every range over the
// returned sequence starts again at week 1.
func Weeks(year int, policy WeekPolicy) iter.Seq[int] {
	n := WeekCount(year, policy)
	return func(yield func(int) bool) {
		for week := 1; week <= n; week++ {
			if !yield(week) {
				return
			}
		}
	}
}

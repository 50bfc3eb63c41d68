// Package render turns roster weeks into output rows.
package render

import (
	"fmt"
	"strings"
)

// Format is an output mode.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatLaTeX Format = "latex"
	FormatXLSX  Format = "xlsx"
)

// ParseFormat maps a config or flag value to a Format.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case FormatCSV, FormatLaTeX, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("format must be 'csv', 'latex' or 'xlsx', got %q", value)
	}
}

// Highlights marks weeks that get special styling.
type Highlights struct {
	Holidays   []int
	Exams      []int
	SwitchWeek int
}

// IsHoliday reports whether week is a holiday week.
func (h Highlights) IsHoliday(week int) bool {
	return containsWeek(h.Holidays, week)
}

// IsExam reports whether week is an exam week.
func (h Highlights) IsExam(week int) bool {
	return containsWeek(h.Exams, week)
}

// IsSwitch reports whether week carries the one-time side note.
func (h Highlights) IsSwitch(week int) bool {
	return h.SwitchWeek != 0 && week == h.SwitchWeek
}

// Note joins the labels of the highlights that apply to week, in holiday,
// exam, switch order. It is empty for an ordinary week.
func (h Highlights) Note(week int, labels Labels) string {
	var notes []string
	if h.IsHoliday(week) {
		notes = append(notes, labels.Holiday)
	}
	if h.IsExam(week) {
		notes = append(notes, labels.Exam)
	}
	if h.IsSwitch(week) {
		notes = append(notes, labels.Switch)
	}
	return strings.Join(notes, ", ")
}

func containsWeek(weeks []int, week int) bool {
	for _, w := range weeks {
		if w == week {
			return true
		}
	}
	return false
}

package render

import (
	"strconv"

	"github.com/kingrea/duty-roster/internal/calendar"
	"github.com/kingrea/duty-roster/internal/roster"
)

// Terminal produces table cells for the interactive preview.
type Terminal struct {
	Locale     calendar.Locale
	Highlights Highlights
}

// Cells returns one row in Labels.Header order.
func (t Terminal) Cells(rec roster.WeekRecord, span calendar.DateSpan) []string {
	cells := []string{
		strconv.Itoa(rec.Week),
		t.Locale.ShortDate(span.Start),
		t.Locale.ShortDate(span.End),
	}
	for _, s := range rec.Slots {
		if s == "" {
			s = "-"
		}
		cells = append(cells, s)
	}
	return append(cells, t.Note(rec.Week))
}

// Note joins the highlight labels that apply to week.
func (t Terminal) Note(week int) string {
	return t.Highlights.Note(week, LabelsFor(t.Locale))
}

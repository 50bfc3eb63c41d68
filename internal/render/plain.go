package render

import (
	"io"

	"github.com/kingrea/duty-roster/internal/calendar"
	"github.com/kingrea/duty-roster/internal/roster"
)

// Plain writes the raw comma-delimited record.
type Plain struct{}

// RenderLine implements roster.LineRenderer.
func (Plain) RenderLine(w io.Writer, rec roster.WeekRecord, _ calendar.DateSpan) error {
	_, err := io.WriteString(w, rec.String()+"\n")
	return err
}

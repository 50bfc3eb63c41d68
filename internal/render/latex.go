package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/kingrea/duty-roster/internal/calendar"
	"github.com/kingrea/duty-roster/internal/roster"
)

const (
	rowEvenColor = `\rowcolor{\evencolor}` + "\n"
	rowOddColor  = `\rowcolor{\oddcolor}` + "\n"
	rowExamColor = `\rowcolor{\examcolor}` + "\n"
	checkMark    = ` \check `
	sideNote     = `\sidenotetrue\tikzmark{sidenote} `
	rowEnd       = `\\` + "\n"
)

// LaTeX writes one tabular row per week, e.g.
//
//	1 & Dec 31 & Jan 6 & F \check & G \check &  & H \check \\
type LaTeX struct {
	Locale     calendar.Locale
	Highlights Highlights
}

// RenderLine implements roster.LineRenderer.
func (l LaTeX) RenderLine(w io.Writer, rec roster.WeekRecord, span calendar.DateSpan) error {
	_, err := io.WriteString(w, l.Row(rec, span))
	return err
}

// Row returns the full text written for one week, row colour lines included.
func (l LaTeX) Row(rec roster.WeekRecord, span calendar.DateSpan) string {
	var b strings.Builder
	week := rec.Week
	if l.Highlights.IsHoliday(week) {
		if week%2 == 0 {
			b.WriteString(rowEvenColor)
		} else {
			b.WriteString(rowOddColor)
		}
	}
	if l.Highlights.IsExam(week) {
		b.WriteString(rowExamColor)
	}

	b.WriteString(strconv.Itoa(week))
	b.WriteString(" & ")
	b.WriteString(l.Locale.ShortDate(span.Start))
	b.WriteString(" & ")
	b.WriteString(l.Locale.ShortDate(span.End))

	rest := rec.Rest()
	rest = strings.ReplaceAll(rest, ",,", ", & ")
	rest = strings.ReplaceAll(rest, ",", checkMark+"& ")
	b.WriteString(" & ")
	b.WriteString(rest)
	b.WriteString(checkMark)

	if l.Highlights.IsSwitch(week) {
		b.WriteString(sideNote)
	}
	b.WriteString(rowEnd)
	return b.String()
}

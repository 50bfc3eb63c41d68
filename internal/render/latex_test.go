package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/duty-roster/internal/calendar"
	"github.com/kingrea/duty-roster/internal/roster"
)

func weeksOf2019(t *testing.T) map[int]roster.WeekRecord {
	t.Helper()
	gen, err := roster.NewGenerator(roster.DefaultPlan(2019))
	require.NoError(t, err)
	out := map[int]roster.WeekRecord{}
	for _, rec := range gen.Records() {
		out[rec.Week] = rec
	}
	return out
}

func TestLaTeXRowFormat(t *testing.T) {
	recs := weeksOf2019(t)
	l := LaTeX{Locale: calendar.English}

	assert.Equal(t,
		`1 & Dec 31 & Jan 6 & F \check & G \check &  & H \check \\`+"\n",
		l.Row(recs[1], calendar.WeekSpan(2019, 1)))
	assert.Equal(t,
		`2 & Jan 7 & Jan 13 & D \check &  & A \check & B \check \\`+"\n",
		l.Row(recs[2], calendar.WeekSpan(2019, 2)))
}

func TestLaTeXHolidayColorsFollowParity(t *testing.T) {
	recs := weeksOf2019(t)
	l := LaTeX{Locale: calendar.English, Highlights: Highlights{Holidays: []int{1, 10}}}

	row := l.Row(recs[10], calendar.WeekSpan(2019, 10))
	assert.True(t, strings.HasPrefix(row, `\rowcolor{\evencolor}`+"\n10 & Mar 4 & Mar 10 & "), row)

	row = l.Row(recs[1], calendar.WeekSpan(2019, 1))
	assert.True(t, strings.HasPrefix(row, `\rowcolor{\oddcolor}`+"\n1 & "), row)

	row = l.Row(recs[3], calendar.WeekSpan(2019, 3))
	assert.False(t, strings.Contains(row, `\rowcolor`), row)
}

func TestLaTeXExamColorComesAfterHoliday(t *testing.T) {
	recs := weeksOf2019(t)
	l := LaTeX{Locale: calendar.English, Highlights: Highlights{Holidays: []int{4}, Exams: []int{4, 5}}}

	row := l.Row(recs[4], calendar.WeekSpan(2019, 4))
	assert.True(t, strings.HasPrefix(row, `\rowcolor{\evencolor}`+"\n"+`\rowcolor{\examcolor}`+"\n4 & "), row)

	row = l.Row(recs[5], calendar.WeekSpan(2019, 5))
	assert.True(t, strings.HasPrefix(row, `\rowcolor{\examcolor}`+"\n5 & "), row)
}

func TestLaTeXIgnoresHighlightsOutsideYear(t *testing.T) {
	gen, err := roster.NewGenerator(roster.DefaultPlan(2019))
	require.NoError(t, err)

	var plain, highlighted bytes.Buffer
	require.NoError(t, gen.Write(&plain, LaTeX{Locale: calendar.English}))
	require.NoError(t, gen.Write(&highlighted, LaTeX{
		Locale:     calendar.English,
		Highlights: Highlights{Holidays: []int{0, 99}, Exams: []int{-1, 53}},
	}))
	assert.Equal(t, plain.String(), highlighted.String())
	assert.NotContains(t, highlighted.String(), `\rowcolor`)
}

func TestLaTeXSideNoteOnlyOnSwitchWeek(t *testing.T) {
	plan := roster.DefaultPlan(2019)
	plan.SwitchWeek = 28
	gen, err := roster.NewGenerator(plan)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gen.Write(&buf, LaTeX{Locale: calendar.English, Highlights: Highlights{SwitchWeek: 28}}))
	assert.Equal(t, 1, strings.Count(buf.String(), `\sidenotetrue\tikzmark{sidenote}`))
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "28 & ") {
			assert.True(t, strings.HasSuffix(line, ` \check \sidenotetrue\tikzmark{sidenote} \\`), line)
		}
	}

	buf.Reset()
	require.NoError(t, gen.Write(&buf, LaTeX{Locale: calendar.English}))
	assert.NotContains(t, buf.String(), "sidenote")
}

func TestLaTeXUsesLocaleMonths(t *testing.T) {
	recs := weeksOf2019(t)
	l := LaTeX{Locale: calendar.Dutch}
	row := l.Row(recs[10], calendar.WeekSpan(2019, 10))
	assert.True(t, strings.HasPrefix(row, "10 & mrt 4 & mrt 10 & "), row)
}

func TestPlainWritesRawRecord(t *testing.T) {
	recs := weeksOf2019(t)
	var buf bytes.Buffer
	require.NoError(t, Plain{}.RenderLine(&buf, recs[1], calendar.WeekSpan(2019, 1)))
	assert.Equal(t, "1,F,G,,H\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" LaTeX ")
	require.NoError(t, err)
	assert.Equal(t, FormatLaTeX, f)
	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

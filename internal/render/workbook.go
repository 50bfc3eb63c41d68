package render

import (
	"fmt"
	"io"
	"iter"

	"github.com/xuri/excelize/v2"

	"github.com/kingrea/duty-roster/internal/calendar"
	"github.com/kingrea/duty-roster/internal/roster"
)

// SheetName is the worksheet that holds the roster.
const SheetName = "Roster"

const (
	evenFill = "#DDEBF7"
	oddFill  = "#E2EFDA"
	examFill = "#FCE4D6"
)

// Workbook writes the roster as an xlsx spreadsheet.
type Workbook struct {
	Locale     calendar.Locale
	Highlights Highlights
}

type workbookStyles struct {
	header, even, odd, exam int
}

// Build creates the workbook. The caller owns the returned file and must
// Close it.
func (wb Workbook) Build(weeks iter.Seq2[roster.WeekRecord, calendar.DateSpan]) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := wb.fill(f, weeks); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// Write builds the workbook and streams it to w.
func (wb Workbook) Write(w io.Writer, weeks iter.Seq2[roster.WeekRecord, calendar.DateSpan]) error {
	f, err := wb.Build(weeks)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("render: write workbook: %w", err)
	}
	return nil
}

func (wb Workbook) fill(f *excelize.File, weeks iter.Seq2[roster.WeekRecord, calendar.DateSpan]) error {
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("render: rename sheet: %w", err)
	}
	styles, err := newWorkbookStyles(f)
	if err != nil {
		return err
	}

	labels := LabelsFor(wb.Locale)
	header := labels.Header()
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("render: header row: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", styles.header); err != nil {
		return fmt.Errorf("render: header style: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "C", 12); err != nil {
		return fmt.Errorf("render: column width: %w", err)
	}

	row := 2
	for rec, span := range weeks {
		values := []any{
			rec.Week,
			wb.Locale.ShortDate(span.Start),
			wb.Locale.ShortDate(span.End),
		}
		for _, s := range rec.Slots {
			values = append(values, s)
		}
		if note := wb.Highlights.Note(rec.Week, labels); note != "" {
			values = append(values, note)
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("render: week %d: %w", rec.Week, err)
		}
		if style, ok := styles.forWeek(wb.Highlights, rec.Week); ok {
			end, _ := excelize.CoordinatesToCellName(len(header), row)
			if err := f.SetCellStyle(SheetName, cell, end, style); err != nil {
				return fmt.Errorf("render: week %d style: %w", rec.Week, err)
			}
		}
		row++
	}
	f.SetActiveSheet(0)
	return nil
}

// forWeek picks the row fill. A cell holds a single fill, so exam weeks win
// over holidays.
func (s workbookStyles) forWeek(h Highlights, week int) (int, bool) {
	switch {
	case h.IsExam(week):
		return s.exam, true
	case h.IsHoliday(week) && week%2 == 0:
		return s.even, true
	case h.IsHoliday(week):
		return s.odd, true
	default:
		return 0, false
	}
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	var s workbookStyles
	var err error
	if s.header, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, fmt.Errorf("render: header style: %w", err)
	}
	for _, target := range []struct {
		id    *int
		color string
	}{
		{&s.even, evenFill},
		{&s.odd, oddFill},
		{&s.exam, examFill},
	} {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{target.color}},
		})
		if err != nil {
			return s, fmt.Errorf("render: fill style: %w", err)
		}
		*target.id = id
	}
	return s, nil
}

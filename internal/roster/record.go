package roster

import (
	"fmt"
	"strconv"
	"strings"
)

// WeekRecord is the assignment for one week. An empty slot is "".
type WeekRecord struct {
	Week  int
	Side  int
	Slots [Slots]string
}

// EmptySlot returns the index of the chore column left empty: 1 on even
// weeks, 2 on odd weeks.
func EmptySlot(week int) int {
	if week%2 == 0 {
		return 1
	}
	return 2
}

// String renders the raw comma-joined record, e.g. "1,F,G,,H".
func (r WeekRecord) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(r.Week))
	for _, s := range r.Slots {
		b.WriteByte(',')
		b.WriteString(s)
	}
	return b.String()
}

// Rest returns the record without its leading week number.
func (r WeekRecord) Rest() string {
	s := r.String()
	return s[strings.IndexByte(s, ',')+1:]
}

// ParseRecord reads a raw record produced by String. The side cannot be
// recovered from the text and is returned as -1.
func ParseRecord(line string) (WeekRecord, error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), ",")
	if len(fields) != Slots+1 {
		return WeekRecord{}, fmt.Errorf("roster: record %q: want %d fields, got %d", line, Slots+1, len(fields))
	}
	week, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return WeekRecord{}, fmt.Errorf("roster: record %q: week: %w", line, err)
	}
	rec := WeekRecord{Week: week, Side: -1}
	copy(rec.Slots[:], fields[1:])
	return rec, nil
}

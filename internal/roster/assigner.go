package roster

import "fmt"

// AssignerOptions configures a rotation run.
type AssignerOptions struct {
	Rooms     Rooms
	StartTurn [Sides]int
	// SwitchWeek is the week from which side parity flips. Zero flips the
	// parity every eight weeks.
	SwitchWeek int
}

// Assigner carries the rotation cursors through one year. It is not safe for
// concurrent use; build a new one per run.
type Assigner struct {
	rooms      Rooms
	turn       [Sides]int
	switchWeek int
}

// NewAssigner validates opts and returns an assigner positioned at the start
// of the year.
func NewAssigner(opts AssignerOptions) (*Assigner, error) {
	if err := opts.Rooms.Validate(); err != nil {
		return nil, err
	}
	for side, t := range opts.StartTurn {
		if t < 0 || t >= RoomsPerSide {
			return nil, fmt.Errorf("roster: start turn for side %d must be in [0,%d), got %d", side, RoomsPerSide, t)
		}
	}
	if opts.SwitchWeek < 0 {
		return nil, fmt.Errorf("roster: switch week must be >= 0, got %d", opts.SwitchWeek)
	}
	return &Assigner{
		rooms:      opts.Rooms,
		turn:       opts.StartTurn,
		switchWeek: opts.SwitchWeek,
	}, nil
}

// Side returns the side on duty in week.
func (a *Assigner) Side(week int) int {
	return sideFor(week, a.switchWeek)
}

func sideFor(week, switchWeek int) int {
	switch {
	case switchWeek == 0:
		switcheroo := (week % 16) / 8
		return (week - switcheroo) % 2
	case week < switchWeek:
		return (week - 1) % 2
	default:
		return week % 2
	}
}

// Turn reports the cursor of side.
func (a *Assigner) Turn(side int) int {
	return a.turn[side]
}

// Assign fills the chore slots for week and advances the active side's
// cursor by three rooms. Weeks must be assigned in increasing order.
func (a *Assigner) Assign(week int) WeekRecord {
	side := a.Side(week)
	rec := WeekRecord{Week: week, Side: side}
	even := week%2 == 0
	slot := 0
	for j := 0; j < 3; j++ {
		if even && j == 1 {
			slot++ // chore 2 stays empty
		}
		rec.Slots[slot] = a.rooms[side][a.turn[side]]
		slot++
		if !even && j == 1 {
			slot++ // chore 3 stays empty
		}
		a.turn[side] = (a.turn[side] + 1) % RoomsPerSide
	}
	return rec
}

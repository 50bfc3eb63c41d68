// Package roster assigns rooms to weekly chores.
//
// Eight rooms are split into two sides of four. Every week one side is on
// duty: three of its rooms take a chore each and the fourth chore column is
// left empty. Each side keeps its own round-robin cursor for the whole year.
package roster

import (
	"fmt"
	"strings"
)

const (
	// Sides is the number of independent rotation groups.
	Sides = 2
	// RoomsPerSide is the number of rooms in each rotation group.
	RoomsPerSide = 4
	// Slots is the number of chore columns in a week.
	Slots = 4
)

// Rooms holds the room labels per side.
type Rooms [Sides][RoomsPerSide]string

// DefaultRooms are the labels used when no rooms are configured.
var DefaultRooms = Rooms{
	{"A", "B", "C", "D"},
	{"E", "F", "G", "H"},
}

// DefaultStartTurn is the cursor each side starts the year on.
var DefaultStartTurn = [Sides]int{3, 1}

// RoomsFromLists converts configured side lists into Rooms.
func RoomsFromLists(lists [][]string) (Rooms, error) {
	var rooms Rooms
	if len(lists) != Sides {
		return rooms, fmt.Errorf("rooms: want %d sides, got %d", Sides, len(lists))
	}
	for side, list := range lists {
		if len(list) != RoomsPerSide {
			return rooms, fmt.Errorf("rooms: side %d: want %d rooms, got %d", side, RoomsPerSide, len(list))
		}
		for i, label := range list {
			rooms[side][i] = strings.TrimSpace(label)
		}
	}
	return rooms, rooms.Validate()
}

// Validate checks that every label is non-empty, comma-free and unique.
func (r Rooms) Validate() error {
	seen := make(map[string]struct{}, Sides*RoomsPerSide)
	for side := range r {
		for _, label := range r[side] {
			if label == "" {
				return fmt.Errorf("rooms: side %d has an empty label", side)
			}
			if strings.Contains(label, ",") {
				return fmt.Errorf("rooms: label %q contains a comma", label)
			}
			if _, dup := seen[label]; dup {
				return fmt.Errorf("rooms: label %q is used twice", label)
			}
			seen[label] = struct{}{}
		}
	}
	return nil
}

// Lists returns the rooms as nested slices, the shape used in config files.
func (r Rooms) Lists() [][]string {
	out := make([][]string, Sides)
	for side := range r {
		out[side] = append([]string(nil), r[side][:]...)
	}
	return out
}

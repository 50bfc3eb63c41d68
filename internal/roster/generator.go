package roster

import (
	"io"
	"iter"

	"github.com/kingrea/duty-roster/internal/calendar"
)

// Plan is everything needed to compute a year's roster.
type Plan struct {
	Year       int
	Policy     calendar.WeekPolicy
	Rooms      Rooms
	StartTurn  [Sides]int
	SwitchWeek int
}

// DefaultPlan returns the plan for year with the default rooms and offsets.
func DefaultPlan(year int) Plan {
	return Plan{
		Year:      year,
		Policy:    calendar.PolicyFixed,
		Rooms:     DefaultRooms,
		StartTurn: DefaultStartTurn,
	}
}

// LineRenderer formats one week of the roster.
type LineRenderer interface {
	RenderLine(w io.Writer, rec WeekRecord, span calendar.DateSpan) error
}

// Generator computes the roster described by a Plan.
type Generator struct {
	plan Plan
}

// NewGenerator validates plan up front so iteration cannot fail later.
func NewGenerator(plan Plan) (*Generator, error) {
	if _, err := plan.assigner(); err != nil {
		return nil, err
	}
	return &Generator{plan: plan}, nil
}

func (p Plan) assigner() (*Assigner, error) {
	return NewAssigner(AssignerOptions{
		Rooms:      p.Rooms,
		StartTurn:  p.StartTurn,
		SwitchWeek: p.SwitchWeek,
	})
}

// Plan returns the plan the generator was built from.
func (g *Generator) Plan() Plan {
	return g.plan
}

// Weeks yields each record with its date span. Every range starts a fresh
// rotation, so repeated iteration yields identical results.
func (g *Generator) Weeks() iter.Seq2[WeekRecord, calendar.DateSpan] {
	return func(yield func(WeekRecord, calendar.DateSpan) bool) {
		a, _ := g.plan.assigner()
		for week := range calendar.Weeks(g.plan.Year, g.plan.Policy) {
			if !yield(a.Assign(week), calendar.WeekSpan(g.plan.Year, week)) {
				return
			}
		}
	}
}

// Records returns the whole year's assignments.
func (g *Generator) Records() []WeekRecord {
	out := make([]WeekRecord, 0, calendar.WeekCount(g.plan.Year, g.plan.Policy))
	for rec := range g.Weeks() {
		out = append(out, rec)
	}
	return out
}

// Write renders every week to w with r.
func (g *Generator) Write(w io.Writer, r LineRenderer) error {
	for rec, span := range g.Weeks() {
		if err := r.RenderLine(w, rec, span); err != nil {
			return err
		}
	}
	return nil
}

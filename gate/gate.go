package gate

import (
	"fmt"
	"time"
)

// Decision is the outcome of a business-day evaluation
type Decision struct {
	// Open reports whether the run should proceed to extraction
	Open bool

	// Reason describes why the gate closed, if it did
	Reason string
}

// Calendar is an abstraction over a holiday calendar
type Calendar interface {
	// Holiday returns the holiday label for the given date, if any
	Holiday(t time.Time) (string, bool)
}

// Gate is the business-day admission predicate. It is evaluated before
// any network call, so non-trading days cost nothing
type Gate struct {
	calendar Calendar
	location *time.Location

	closedWeekdays map[time.Weekday]struct{}
}

// New creates a new gate, closed on weekends by default
func New(opts ...Option) *Gate {
	g := &Gate{
		location: taipeiLocation(),
		closedWeekdays: map[time.Weekday]struct{}{
			time.Saturday: {},
			time.Sunday:   {},
		},
	}

	// Apply the options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Location returns the jurisdiction's time location
func (g *Gate) Location() *time.Location {
	return g.location
}

// Evaluate decides whether the given moment falls on a trading day.
// Weekday checks take precedence over the holiday calendar
func (g *Gate) Evaluate(at time.Time) Decision {
	local := at.In(g.location)

	if _, ok := g.closedWeekdays[local.Weekday()]; ok {
		return Decision{
			Open:   false,
			Reason: fmt.Sprintf("non-trading weekday: %s", local.Weekday()),
		}
	}

	if g.calendar != nil {
		if label, ok := g.calendar.Holiday(local); ok {
			return Decision{
				Open:   false,
				Reason: fmt.Sprintf("holiday: %s", label),
			}
		}
	}

	return Decision{Open: true}
}

func taipeiLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err == nil {
		return loc
	}

	return time.FixedZone("CST", 8*60*60)
}

package gate

import "time"

type Option func(g *Gate)

// WithCalendar specifies the holiday calendar for the gate
func WithCalendar(c Calendar) Option {
	return func(g *Gate) {
		g.calendar = c
	}
}

// WithLocation specifies the time location the gate evaluates in
func WithLocation(loc *time.Location) Option {
	return func(g *Gate) {
		g.location = loc
	}
}

// WithClosedWeekdays specifies the non-trading days of the week.
// Defaults to Saturday and Sunday
func WithClosedWeekdays(days ...time.Weekday) Option {
	return func(g *Gate) {
		g.closedWeekdays = make(map[time.Weekday]struct{}, len(days))

		for _, day := range days {
			g.closedWeekdays[day] = struct{}{}
		}
	}
}

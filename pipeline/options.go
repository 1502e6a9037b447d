package pipeline

import (
	"log/slog"
	"time"

	"github.com/sig-0/twdrates/gate"
)

type Option func(p *Pipeline)

// WithLogger specifies the logger for the pipeline
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// WithGate specifies the business-day gate for the pipeline
func WithGate(g *gate.Gate) Option {
	return func(p *Pipeline) {
		p.gate = g
	}
}

// WithDelay specifies the politeness delay between source fetches.
// Defaults to 2s; zero disables the delay
func WithDelay(d time.Duration) Option {
	return func(p *Pipeline) {
		p.delay = d
	}
}

// WithClock specifies the time source for the pipeline
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// WithStampCheck toggles the primary-source quotation stamp
// cross-check. Defaults to enabled
func WithStampCheck(enabled bool) Option {
	return func(p *Pipeline) {
		p.stampCheck = enabled
	}
}

// WithFixedPrecision formats every obtained quotation value to exactly
// 4 fractional digits before persisting
func WithFixedPrecision() Option {
	return func(p *Pipeline) {
		p.fixedPrecision = true
	}
}

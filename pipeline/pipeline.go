package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rs/xid"

	"github.com/sig-0/twdrates/gate"
	"github.com/sig-0/twdrates/provider/currencies"
	"github.com/sig-0/twdrates/storage"
	"github.com/sig-0/twdrates/storage/types"
)

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// defaultDelay is the politeness throttle between source fetches
const defaultDelay = time.Second * 2

// RunResult is the outcome of a single pipeline run
type RunResult struct {
	// Record is the merged daily record, when the run persisted one
	Record *types.DailyRecord

	// Reason describes why the run was skipped, if it was
	Reason string

	// Skipped reports that the run ended without touching the store
	Skipped bool
}

// Pipeline is the sequential daily acquisition run:
// gate -> primary fetch -> stamp check -> delay -> secondary fetch ->
// assemble -> merge into storage
type Pipeline struct {
	logger  *slog.Logger
	gate    *gate.Gate
	storage storage.Storage

	primary   Provider
	secondary Provider

	delay time.Duration
	now   func() time.Time

	stampCheck     bool
	fixedPrecision bool
}

// New creates a new pipeline over the two source providers
func New(
	primary Provider,
	secondary Provider,
	store storage.Storage,
	opts ...Option,
) *Pipeline {
	p := &Pipeline{
		logger:     noopLogger,
		gate:       gate.New(),
		storage:    store,
		primary:    primary,
		secondary:  secondary,
		delay:      defaultDelay,
		now:        time.Now,
		stampCheck: true,
	}

	// Apply the options
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run executes one acquisition run. Gate-closed and stale-stamp runs
// end cleanly with no side effects; only storage failures are errors
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	var (
		runID  = xid.New()
		logger = p.logger.With("run_id", runID.String())

		now = p.now().In(p.gate.Location())
	)

	// The gate runs before any network call
	decision := p.gate.Evaluate(now)
	if !decision.Open {
		logger.Info(
			"gate closed, skipping run",
			"reason", decision.Reason,
		)

		return &RunResult{
			Skipped: true,
			Reason:  decision.Reason,
		}, nil
	}

	primarySet := p.fetch(ctx, logger, p.primary)

	// Cross-check the source-declared quotation date, so a cached page
	// served on a non-refresh day never produces a record
	if p.stampCheck && primarySet.QuotedAt != nil && !sameDate(*primarySet.QuotedAt, now) {
		reason := fmt.Sprintf(
			"stale quotation stamp: %s",
			primarySet.QuotedAt.Format(types.DateFormat),
		)

		logger.Info(
			"primary source stamp differs from run date, skipping run",
			"stamp", primarySet.QuotedAt.Format(types.DateFormat),
			"run_date", now.Format(types.DateFormat),
		)

		return &RunResult{
			Skipped: true,
			Reason:  reason,
		}, nil
	}

	// Politeness throttle between the two sources
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	secondarySet := p.fetch(ctx, logger, p.secondary)

	record := AssembleRecord(primarySet, secondarySet, now)

	if p.fixedPrecision {
		fixRecordPrecision(record)
	}

	if err := p.storage.SaveDailyRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("unable to save daily record: %w", err)
	}

	logger.Info(
		"daily record saved",
		"date", record.Date,
	)

	return &RunResult{
		Record: record,
	}, nil
}

// fetch maps any provider failure to the sentinel default set, so one
// source's outage cannot abort the run or the other extraction
func (p *Pipeline) fetch(
	ctx context.Context,
	logger *slog.Logger,
	provider Provider,
) *types.QuoteSet {
	set, err := provider.Fetch(ctx)
	if err != nil {
		logger.Error(
			"source extraction failed",
			"source", provider.Name(),
			"err", err,
		)

		return currencies.DefaultQuoteSet()
	}

	if set == nil {
		return currencies.DefaultQuoteSet()
	}

	logger.Info(
		"source extraction complete",
		"source", provider.Name(),
	)

	return set
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

package storage

import (
	"context"

	"github.com/sig-0/twdrates/storage/types"
)

// Storage is an abstraction over the daily quotation time series
type Storage interface {
	// SaveDailyRecord merges the given record into the series,
	// replacing any existing record for the same date
	SaveDailyRecord(context.Context, *types.DailyRecord) error

	// LoadSeries returns the full series, in append order
	LoadSeries(context.Context) ([]*types.DailyRecord, error)

	// RecordForDate returns the record for the given ISO date,
	// or nil if the date is not present
	RecordForDate(context.Context, string) (*types.DailyRecord, error)

	// LatestRecord returns the most recently appended record,
	// or nil if the series is empty
	LatestRecord(context.Context) (*types.DailyRecord, error)
}

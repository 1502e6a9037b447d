package mock

import (
	"context"

	"github.com/sig-0/twdrates/storage/types"
)

type (
	SaveDailyRecordDelegate func(context.Context, *types.DailyRecord) error
	LoadSeriesDelegate      func(context.Context) ([]*types.DailyRecord, error)
	RecordForDateDelegate   func(context.Context, string) (*types.DailyRecord, error)
	LatestRecordDelegate    func(context.Context) (*types.DailyRecord, error)
)

type Storage struct {
	SaveDailyRecordFn SaveDailyRecordDelegate
	LoadSeriesFn      LoadSeriesDelegate
	RecordForDateFn   RecordForDateDelegate
	LatestRecordFn    LatestRecordDelegate
}

func (m *Storage) SaveDailyRecord(ctx context.Context, record *types.DailyRecord) error {
	if m.SaveDailyRecordFn != nil {
		return m.SaveDailyRecordFn(ctx, record)
	}

	return nil
}

func (m *Storage) LoadSeries(ctx context.Context) ([]*types.DailyRecord, error) {
	if m.LoadSeriesFn != nil {
		return m.LoadSeriesFn(ctx)
	}

	return nil, nil
}

func (m *Storage) RecordForDate(ctx context.Context, date string) (*types.DailyRecord, error) {
	if m.RecordForDateFn != nil {
		return m.RecordForDateFn(ctx, date)
	}

	return nil, nil
}

func (m *Storage) LatestRecord(ctx context.Context) (*types.DailyRecord, error) {
	if m.LatestRecordFn != nil {
		return m.LatestRecordFn(ctx)
	}

	return nil, nil
}

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-0/twdrates/storage/types"
)

func record(date, usdBuy string) *types.DailyRecord {
	return &types.DailyRecord{
		Date:          date,
		PrimaryUSDBuy: usdBuy,
	}
}

func TestStorage_SaveDailyRecord(t *testing.T) {
	t.Parallel()

	t.Run("append order preserved", func(t *testing.T) {
		t.Parallel()

		s := NewStorage()
		ctx := context.Background()

		require.NoError(t, s.SaveDailyRecord(ctx, record("2024-05-21", "31.40")))
		require.NoError(t, s.SaveDailyRecord(ctx, record("2024-05-22", "31.45")))

		series, err := s.LoadSeries(ctx)
		require.NoError(t, err)
		require.Len(t, series, 2)

		assert.Equal(t, "2024-05-21", series[0].Date)
		assert.Equal(t, "2024-05-22", series[1].Date)
	})

	t.Run("same date replaces", func(t *testing.T) {
		t.Parallel()

		s := NewStorage()
		ctx := context.Background()

		require.NoError(t, s.SaveDailyRecord(ctx, record("2024-05-21", "31.40")))
		require.NoError(t, s.SaveDailyRecord(ctx, record("2024-05-22", "31.45")))
		require.NoError(t, s.SaveDailyRecord(ctx, record("2024-05-21", "31.50")))

		series, err := s.LoadSeries(ctx)
		require.NoError(t, err)
		require.Len(t, series, 2)

		// The replaced record moves to the end
		assert.Equal(t, "2024-05-22", series[0].Date)
		assert.Equal(t, "2024-05-21", series[1].Date)
		assert.Equal(t, "31.50", series[1].PrimaryUSDBuy)
	})
}

func TestStorage_Lookups(t *testing.T) {
	t.Parallel()

	s := NewStorage()
	ctx := context.Background()

	require.NoError(t, s.SaveDailyRecord(ctx, record("2024-05-21", "31.40")))
	require.NoError(t, s.SaveDailyRecord(ctx, record("2024-05-22", "31.45")))

	t.Run("record for date", func(t *testing.T) {
		t.Parallel()

		rec, err := s.RecordForDate(ctx, "2024-05-21")

		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "31.40", rec.PrimaryUSDBuy)
	})

	t.Run("absent date", func(t *testing.T) {
		t.Parallel()

		rec, err := s.RecordForDate(ctx, "2020-01-01")

		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("latest record", func(t *testing.T) {
		t.Parallel()

		rec, err := s.LatestRecord(ctx)

		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "2024-05-22", rec.Date)
	})

	t.Run("empty storage", func(t *testing.T) {
		t.Parallel()

		rec, err := NewStorage().LatestRecord(ctx)

		require.NoError(t, err)
		assert.Nil(t, rec)
	})
}

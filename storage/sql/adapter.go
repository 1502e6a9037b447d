package sql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sig-0/twdrates/storage/types"
)

// Querier is the subset of the pgx connection the adapter relies on
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Storage struct {
	db Querier
}

func NewStorage(db Querier) *Storage {
	return &Storage{
		db: db,
	}
}

const recordColumns = `date, update_time,
	primary_usd_buy, primary_usd_sell, primary_cny_buy, primary_cny_sell,
	secondary_usd_buy, secondary_usd_sell, secondary_cny_buy, secondary_cny_sell`

func (s *Storage) SaveDailyRecord(
	ctx context.Context,
	record *types.DailyRecord,
) error {
	const q = `
	INSERT INTO daily_records (` + recordColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (date) DO UPDATE SET
		update_time        = EXCLUDED.update_time,
		primary_usd_buy    = EXCLUDED.primary_usd_buy,
		primary_usd_sell   = EXCLUDED.primary_usd_sell,
		primary_cny_buy    = EXCLUDED.primary_cny_buy,
		primary_cny_sell   = EXCLUDED.primary_cny_sell,
		secondary_usd_buy  = EXCLUDED.secondary_usd_buy,
		secondary_usd_sell = EXCLUDED.secondary_usd_sell,
		secondary_cny_buy  = EXCLUDED.secondary_cny_buy,
		secondary_cny_sell = EXCLUDED.secondary_cny_sell`

	_, err := s.db.Exec(
		ctx, q,
		record.Date, record.UpdateTime,
		record.PrimaryUSDBuy, record.PrimaryUSDSell,
		record.PrimaryCNYBuy, record.PrimaryCNYSell,
		record.SecondaryUSDBuy, record.SecondaryUSDSell,
		record.SecondaryCNYBuy, record.SecondaryCNYSell,
	)
	if err != nil {
		return fmt.Errorf("unable to save daily record: %w", err)
	}

	return nil
}

func (s *Storage) LoadSeries(ctx context.Context) ([]*types.DailyRecord, error) {
	const q = `SELECT ` + recordColumns + ` FROM daily_records ORDER BY seq`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("unable to fetch series: %w", err)
	}
	defer rows.Close()

	var out []*types.DailyRecord

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unable to read series rows: %w", err)
	}

	return out, nil
}

func (s *Storage) RecordForDate(
	ctx context.Context,
	date string,
) (*types.DailyRecord, error) {
	const q = `SELECT ` + recordColumns + ` FROM daily_records WHERE date = $1`

	rec, err := scanRecord(s.db.QueryRow(ctx, q, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil //nolint:nilnil // valid case
		}

		return nil, err
	}

	return rec, nil
}

func (s *Storage) LatestRecord(ctx context.Context) (*types.DailyRecord, error) {
	const q = `SELECT ` + recordColumns + ` FROM daily_records ORDER BY seq DESC LIMIT 1`

	rec, err := scanRecord(s.db.QueryRow(ctx, q))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil //nolint:nilnil // valid case
		}

		return nil, err
	}

	return rec, nil
}

// scanRecord parses a single daily record row
func scanRecord(row pgx.Row) (*types.DailyRecord, error) {
	var rec types.DailyRecord

	err := row.Scan(
		&rec.Date, &rec.UpdateTime,
		&rec.PrimaryUSDBuy, &rec.PrimaryUSDSell,
		&rec.PrimaryCNYBuy, &rec.PrimaryCNYSell,
		&rec.SecondaryUSDBuy, &rec.SecondaryUSDSell,
		&rec.SecondaryCNYBuy, &rec.SecondaryCNYSell,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}

		return nil, fmt.Errorf("unable to scan daily record: %w", err)
	}

	return &rec, nil
}

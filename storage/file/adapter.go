package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sig-0/twdrates/storage/types"
)

// ErrCorruptSeries signals that the backing file holds content that no
// longer parses as a series. This is fatal on purpose: overwriting it
// would silently replace existing history with an empty series
var ErrCorruptSeries = errors.New("corrupt series file")

// Storage persists the daily series as a single indented JSON document.
// It assumes at most one writer per file; no locking is performed
type Storage struct {
	path string
}

// NewStorage creates a flat-file series store at the given path
func NewStorage(path string) *Storage {
	return &Storage{
		path: path,
	}
}

func (s *Storage) SaveDailyRecord(_ context.Context, record *types.DailyRecord) error {
	series, err := s.loadSeries()
	if err != nil {
		return err
	}

	// Drop the stale record for the same date, if any
	merged := make([]*types.DailyRecord, 0, len(series)+1)

	for _, rec := range series {
		if rec.Date == record.Date {
			continue
		}

		merged = append(merged, rec)
	}

	merged = append(merged, record)

	return s.writeSeries(merged)
}

func (s *Storage) LoadSeries(_ context.Context) ([]*types.DailyRecord, error) {
	return s.loadSeries()
}

func (s *Storage) RecordForDate(_ context.Context, date string) (*types.DailyRecord, error) {
	series, err := s.loadSeries()
	if err != nil {
		return nil, err
	}

	for _, rec := range series {
		if rec.Date == date {
			return rec, nil
		}
	}

	return nil, nil //nolint:nilnil // valid case
}

func (s *Storage) LatestRecord(_ context.Context) (*types.DailyRecord, error) {
	series, err := s.loadSeries()
	if err != nil {
		return nil, err
	}

	if len(series) == 0 {
		return nil, nil //nolint:nilnil // valid case
	}

	return series[len(series)-1], nil
}

// loadSeries reads the series from disk. A missing or blank file yields
// an empty series; content that fails to decode is fatal
func (s *Storage) loadSeries() ([]*types.DailyRecord, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("unable to read series file: %w", err)
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}

	var series []*types.DailyRecord

	if err := json.Unmarshal(content, &series); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptSeries, err)
	}

	return series, nil
}

// writeSeries rewrites the whole series in one write, keeping non-ASCII
// text verbatim and the output human-diffable
func (s *Storage) writeSeries(series []*types.DailyRecord) error {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	if err := enc.Encode(series); err != nil {
		return fmt.Errorf("unable to encode series: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("unable to write series file: %w", err)
	}

	return nil
}

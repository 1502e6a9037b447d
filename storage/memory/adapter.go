package memory

import (
	"context"
	"sync"

	"github.com/sig-0/twdrates/storage/types"
)

// Storage is an in-memory series store with the same merge semantics
// as the flat-file adapter
type Storage struct {
	records map[string]*types.DailyRecord
	order   []string // append order of dates

	mu sync.RWMutex
}

func NewStorage() *Storage {
	return &Storage{
		records: make(map[string]*types.DailyRecord),
	}
}

func (s *Storage) SaveDailyRecord(_ context.Context, record *types.DailyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Same-date records are replaced and re-appended at the end
	if _, ok := s.records[record.Date]; ok {
		filtered := make([]string, 0, len(s.order))

		for _, date := range s.order {
			if date == record.Date {
				continue
			}

			filtered = append(filtered, date)
		}

		s.order = filtered
	}

	elem := *record

	s.records[record.Date] = &elem
	s.order = append(s.order, record.Date)

	return nil
}

func (s *Storage) LoadSeries(_ context.Context) ([]*types.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.DailyRecord, 0, len(s.order))

	for _, date := range s.order {
		cp := *s.records[date]
		out = append(out, &cp)
	}

	return out, nil
}

func (s *Storage) RecordForDate(_ context.Context, date string) (*types.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[date]
	if !ok {
		return nil, nil //nolint:nilnil // valid case
	}

	cp := *rec

	return &cp, nil
}

func (s *Storage) LatestRecord(_ context.Context) (*types.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return nil, nil //nolint:nilnil // valid case
	}

	cp := *s.records[s.order[len(s.order)-1]]

	return &cp, nil
}

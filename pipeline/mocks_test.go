package pipeline

import (
	"context"

	"github.com/sig-0/twdrates/storage/types"
)

type (
	nameDelegate  func() string
	fetchDelegate func(context.Context) (*types.QuoteSet, error)
)

type mockProvider struct {
	nameFn  nameDelegate
	fetchFn fetchDelegate
}

func (m *mockProvider) Name() string {
	if m.nameFn != nil {
		return m.nameFn()
	}

	return ""
}

func (m *mockProvider) Fetch(ctx context.Context) (*types.QuoteSet, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ctx)
	}

	return nil, nil
}

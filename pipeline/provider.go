package pipeline

import (
	"context"

	"github.com/sig-0/twdrates/storage/types"
)

// Provider is a single quotation source extractor
type Provider interface {
	// Name returns the human-readable name of the source
	Name() string

	// Fetch extracts the source's spot quotation pairs
	Fetch(context.Context) (*types.QuoteSet, error)
}

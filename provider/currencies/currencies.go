package currencies

import "github.com/sig-0/twdrates/storage/types"

var (
	USD types.Currency = "USD"
	CNY types.Currency = "CNY"
)

// Tracked lists the currencies every extraction defaults to
func Tracked() []types.Currency {
	return []types.Currency{USD, CNY}
}

// DefaultQuoteSet returns a quote set where every tracked
// currency defaults to sentinel values
func DefaultQuoteSet() *types.QuoteSet {
	return types.NewQuoteSet(Tracked()...)
}

package types

import "time"

// Sentinel marks a quotation value that could not be obtained
const Sentinel = "-"

const (
	// DateFormat is the calendar-date key format of a daily record
	DateFormat = "2006-01-02"

	// TimeFormat is the wall-clock format of a record's update time
	TimeFormat = "15:04:05"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyCNY Currency = "CNY"
)

func (c Currency) String() string {
	return string(c)
}

// QuotePair is a single spot buy / sell quotation for one currency,
// from one source. Either side may be the Sentinel
type QuotePair struct {
	Buy  string `json:"buy"`
	Sell string `json:"sell"`
}

// SentinelPair returns a fully-unobtained quotation pair
func SentinelPair() QuotePair {
	return QuotePair{
		Buy:  Sentinel,
		Sell: Sentinel,
	}
}

// QuoteSet is the outcome of a single source extraction
type QuoteSet struct {
	// QuotedAt is the quotation date stamp the source declares
	// in its markup, if any
	QuotedAt *time.Time

	// Quotes maps each tracked currency to its spot quotation pair
	Quotes map[Currency]QuotePair
}

// NewQuoteSet returns a quote set where each of the given
// currencies defaults to sentinel values
func NewQuoteSet(tracked ...Currency) *QuoteSet {
	quotes := make(map[Currency]QuotePair, len(tracked))

	for _, currency := range tracked {
		quotes[currency] = SentinelPair()
	}

	return &QuoteSet{
		Quotes: quotes,
	}
}

// Pair returns the quotation pair for the given currency,
// falling back to sentinel values
func (s *QuoteSet) Pair(c Currency) QuotePair {
	if s == nil || s.Quotes == nil {
		return SentinelPair()
	}

	pair, ok := s.Quotes[c]
	if !ok {
		return SentinelPair()
	}

	return pair
}

// DailyRecord is a single entry of the quotation time series.
// Exactly one record exists per Date value within a series at rest
type DailyRecord struct {
	Date       string `json:"date"`
	UpdateTime string `json:"update_time,omitempty"`

	PrimaryUSDBuy  string `json:"primary_usd_buy"`
	PrimaryUSDSell string `json:"primary_usd_sell"`
	PrimaryCNYBuy  string `json:"primary_cny_buy"`
	PrimaryCNYSell string `json:"primary_cny_sell"`

	SecondaryUSDBuy  string `json:"secondary_usd_buy"`
	SecondaryUSDSell string `json:"secondary_usd_sell"`
	SecondaryCNYBuy  string `json:"secondary_cny_buy"`
	SecondaryCNYSell string `json:"secondary_cny_sell"`
}

// Page wraps the results for pagination
type Page[T any] struct {
	Results []T   `json:"results"`
	Total   int64 `json:"total"`
}

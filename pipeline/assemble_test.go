package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sig-0/twdrates/storage/types"
)

func TestAssembleRecord(t *testing.T) {
	t.Parallel()

	var (
		at = time.Date(2024, time.May, 23, 16, 2, 0, 0, time.UTC)

		primary = &types.QuoteSet{
			Quotes: map[types.Currency]types.QuotePair{
				types.CurrencyUSD: {Buy: "31.50", Sell: "31.60"},
			},
		}

		secondary = &types.QuoteSet{
			Quotes: map[types.Currency]types.QuotePair{
				types.CurrencyCNY: {Buy: "4.30", Sell: "4.40"},
			},
		}
	)

	record := AssembleRecord(primary, secondary, at)

	assert.Equal(t, "2024-05-23", record.Date)
	assert.Equal(t, "16:02:00", record.UpdateTime)

	assert.Equal(t, "31.50", record.PrimaryUSDBuy)
	assert.Equal(t, "31.60", record.PrimaryUSDSell)
	assert.Equal(t, "4.30", record.SecondaryCNYBuy)
	assert.Equal(t, "4.40", record.SecondaryCNYSell)

	// Fields absent from the source sets stay sentinel
	assert.Equal(t, types.Sentinel, record.PrimaryCNYBuy)
	assert.Equal(t, types.Sentinel, record.PrimaryCNYSell)
	assert.Equal(t, types.Sentinel, record.SecondaryUSDBuy)
	assert.Equal(t, types.Sentinel, record.SecondaryUSDSell)
}

func TestFixPrecision(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"padded to 4 digits",
			"31.5",
			"31.5000",
		},
		{
			"truncated to 4 digits",
			"4.30501",
			"4.3050",
		},
		{
			"integer value",
			"31",
			"31.0000",
		},
		{
			"sentinel passes through",
			"-",
			"-",
		},
		{
			"unparsable passes through",
			"暫停報價",
			"暫停報價",
		},
	}

	for _, testCase := range testTable {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, fixPrecision(testCase.input))
		})
	}
}

package twd

import (
	"context"
	"net/http"
	"time"

	"github.com/sig-0/twdrates/provider/currencies"
	"github.com/sig-0/twdrates/storage/types"
)

// SunnyRateURL is the Sunny Bank exchange rate query page
const SunnyRateURL = "https://www.sunnybank.com.tw/net/Rate/RateQuery"

// Spot cell positions on the Sunny Bank table.
// Cells 1 and 2 hold the cash-counter tier and are skipped on purpose
const (
	sunnySpotBuyIdx  = 3
	sunnySpotSellIdx = 4
	sunnyMinCells    = 5
)

var sunnyLabels = rowLabels{
	currencies.USD: {"美元", "USD"},
	currencies.CNY: {"人民幣", "CNY"},
}

// SunnyProvider is the Sunny Bank rate page scraping provider
type SunnyProvider struct {
	client *http.Client
	url    string
}

// NewSunnyProvider creates a new instance of the Sunny Bank provider
func NewSunnyProvider(url string, timeout time.Duration) *SunnyProvider {
	return &SunnyProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

func (p *SunnyProvider) Name() string {
	return "Sunny Bank"
}

func (p *SunnyProvider) Fetch(ctx context.Context) (*types.QuoteSet, error) {
	doc, err := fetchDocument(ctx, p.client, p.url)
	if err != nil {
		return nil, err
	}

	return extractPairs(
		doc,
		sunnyLabels,
		indexCells(sunnySpotBuyIdx, sunnySpotSellIdx, sunnyMinCells),
	), nil
}

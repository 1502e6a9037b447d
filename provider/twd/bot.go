package twd

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/sig-0/twdrates/provider/currencies"
	"github.com/sig-0/twdrates/storage/types"
)

// BOTRateURL is the Bank of Taiwan exchange rate board
const BOTRateURL = "https://rate.bot.com.tw/xrt?Lang=zh-TW"

// Spot rate cell keys on the Bank of Taiwan board.
// The cash-counter tiers use different keys and are skipped on purpose
const (
	botSpotBuyKey  = "本行即期買入"
	botSpotSellKey = "本行即期賣出"
)

// botLabels match rows by the localized currency name or ISO code
var botLabels = rowLabels{
	currencies.USD: {"美金", "USD"},
	currencies.CNY: {"人民幣", "CNY"},
}

// BOTProvider is the Bank of Taiwan rate board scraping provider
type BOTProvider struct {
	client *http.Client
	url    string
}

// NewBOTProvider creates a new instance of the Bank of Taiwan provider
func NewBOTProvider(url string, timeout time.Duration) *BOTProvider {
	return &BOTProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
	}
}

func (p *BOTProvider) Name() string {
	return "Bank of Taiwan"
}

func (p *BOTProvider) Fetch(ctx context.Context) (*types.QuoteSet, error) {
	doc, err := fetchDocument(ctx, p.client, p.url)
	if err != nil {
		return nil, err
	}

	set := extractPairs(
		doc,
		botLabels,
		attrCells("data-table", botSpotBuyKey, botSpotSellKey, 3),
	)

	// The board embeds the time its rates were last posted,
	// used as a staleness cross-check downstream
	set.QuotedAt = parseQuotedStamp(doc)

	return set, nil
}

// stampRegex matches the "YYYY/MM/DD HH:MM" quotation stamp format
var stampRegex = regexp.MustCompile(`(\d{4})/(\d{2})/(\d{2})(?:\s+(\d{2}):(\d{2}))?`)

// parseQuotedStamp parses the quotation date stamp the board embeds
// next to the rate table ("牌價最新掛牌時間")
func parseQuotedStamp(doc *goquery.Document) *time.Time {
	// Best source: the dedicated timestamp element
	txt := strings.TrimSpace(doc.Find("span.time").First().Text())

	if txt == "" {
		// Fallback: scan for the stamp label in the page text
		doc.Find("p, div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if strings.Contains(sel.Text(), "掛牌時間") {
				txt = sel.Text()

				return false
			}

			return true
		})
	}

	match := stampRegex.FindStringSubmatch(txt)
	if match == nil {
		return nil
	}

	var (
		year, _  = strconv.Atoi(match[1])
		month, _ = strconv.Atoi(match[2])
		day, _   = strconv.Atoi(match[3])

		hour, minute int
	)

	if match[4] != "" {
		hour, _ = strconv.Atoi(match[4])
		minute, _ = strconv.Atoi(match[5])
	}

	stamp := time.Date(
		year, time.Month(month), day,
		hour, minute, 0, 0,
		taipeiLocation(),
	)

	// time.Date normalizes out-of-range components, so a malformed
	// stamp round-trips into a different date. Treat it as absent
	if stamp.Month() != time.Month(month) || stamp.Day() != day ||
		stamp.Hour() != hour || stamp.Minute() != minute {
		return nil
	}

	return &stamp
}

// fetchDocument executes a GET request with a browser-like identity and
// parses the response body into a queryable document
func fetchDocument(
	ctx context.Context,
	client *http.Client,
	url string,
) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("unable to create new GET request: %w", err)
	}

	for key, value := range browserHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to execute GET request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("invalid status code received: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to construct query doc: %w", err)
	}

	return doc, nil
}

// browserHeaders returns a browser-like header set.
// The bank boards reject requests with default client identities
func browserHeaders() map[string]string {
	return map[string]string{
		"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "zh-TW,zh;q=0.9,en;q=0.8",
	}
}

func taipeiLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err == nil {
		return loc
	}

	return time.FixedZone("CST", 8*60*60)
}

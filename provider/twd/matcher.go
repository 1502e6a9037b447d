package twd

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sig-0/twdrates/provider/currencies"
	"github.com/sig-0/twdrates/storage/types"
)

// cellReader pulls the spot buy / sell cell text out of a matched table
// row. Readers report ok=false when the row cannot be trusted (markup
// drift, missing cells), so the caller keeps sentinel defaults instead
type cellReader func(row *goquery.Selection) (buy, sell string, ok bool)

// attrCells reads the buy / sell cells keyed by a data attribute value
func attrCells(attr, buyKey, sellKey string, minCells int) cellReader {
	return func(row *goquery.Selection) (string, string, bool) {
		if row.Find("td").Length() < minCells {
			return "", "", false
		}

		var (
			buySel  = row.Find(fmt.Sprintf("td[%s='%s']", attr, buyKey)).First()
			sellSel = row.Find(fmt.Sprintf("td[%s='%s']", attr, sellKey)).First()
		)

		if buySel.Length() == 0 || sellSel.Length() == 0 {
			return "", "", false
		}

		return strings.TrimSpace(buySel.Text()),
			strings.TrimSpace(sellSel.Text()),
			true
	}
}

// indexCells reads the buy / sell cells at fixed positions within the row
func indexCells(buyIdx, sellIdx, minCells int) cellReader {
	return func(row *goquery.Selection) (string, string, bool) {
		cells := row.Find("td")

		if cells.Length() < minCells {
			return "", "", false
		}

		return strings.TrimSpace(cells.Eq(buyIdx).Text()),
			strings.TrimSpace(cells.Eq(sellIdx).Text()),
			true
	}
}

// rowLabels are the accepted localized name / code substrings, per currency
type rowLabels map[types.Currency][]string

// extractPairs scans every table row of the document, matching rows by
// label substring and reading the spot cells with the given reader.
// Currencies whose row never matches keep their sentinel defaults
func extractPairs(
	doc *goquery.Document,
	labels rowLabels,
	read cellReader,
) *types.QuoteSet {
	set := currencies.DefaultQuoteSet()

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		text := row.Text()

		for currency, names := range labels {
			if !containsAny(text, names) {
				continue
			}

			buy, sell, ok := read(row)
			if !ok {
				continue
			}

			set.Quotes[currency] = types.QuotePair{
				Buy:  sanitizeNumeric(buy),
				Sell: sanitizeNumeric(sell),
			}
		}
	})

	return set
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}

	return false
}

package pipeline

import (
	"strconv"
	"time"

	"github.com/sig-0/twdrates/storage/types"
)

// AssembleRecord combines the per-source quote sets into one flat daily
// record, keyed by the run date
func AssembleRecord(
	primary *types.QuoteSet,
	secondary *types.QuoteSet,
	at time.Time,
) *types.DailyRecord {
	var (
		pUSD = primary.Pair(types.CurrencyUSD)
		pCNY = primary.Pair(types.CurrencyCNY)

		sUSD = secondary.Pair(types.CurrencyUSD)
		sCNY = secondary.Pair(types.CurrencyCNY)
	)

	return &types.DailyRecord{
		Date:       at.Format(types.DateFormat),
		UpdateTime: at.Format(types.TimeFormat),

		PrimaryUSDBuy:  pUSD.Buy,
		PrimaryUSDSell: pUSD.Sell,
		PrimaryCNYBuy:  pCNY.Buy,
		PrimaryCNYSell: pCNY.Sell,

		SecondaryUSDBuy:  sUSD.Buy,
		SecondaryUSDSell: sUSD.Sell,
		SecondaryCNYBuy:  sCNY.Buy,
		SecondaryCNYSell: sCNY.Sell,
	}
}

// fixRecordPrecision applies fixed 4-digit precision to every
// quotation field of the record
func fixRecordPrecision(record *types.DailyRecord) {
	for _, field := range []*string{
		&record.PrimaryUSDBuy, &record.PrimaryUSDSell,
		&record.PrimaryCNYBuy, &record.PrimaryCNYSell,
		&record.SecondaryUSDBuy, &record.SecondaryUSDSell,
		&record.SecondaryCNYBuy, &record.SecondaryCNYSell,
	} {
		*field = fixPrecision(*field)
	}
}

// fixPrecision formats a quotation value to exactly 4 fractional
// digits. Sentinel and unparsable values pass through unchanged
func fixPrecision(value string) string {
	if value == types.Sentinel {
		return value
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}

	return strconv.FormatFloat(f, 'f', 4, 64)
}

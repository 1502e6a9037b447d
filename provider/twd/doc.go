// Package twd provides daily quotation providers for New Taiwan Dollar (TWD)
// spot exchange rates.
//
// # Providers
//
// ## Bank of Taiwan (primary)
//
// URL: https://rate.bot.com.tw/xrt?Lang=zh-TW
//
// Scrapes the official Bank of Taiwan rate board. Rows are matched by the
// localized currency name or ISO code (美金/USD, 人民幣/CNY), and the spot
// buy / sell cells are read by their data-table attribute keys
// (本行即期買入 / 本行即期賣出). Cash-counter tiers are skipped.
//
// The board's quotation stamp (牌價最新掛牌時間) is parsed into
// QuoteSet.QuotedAt, so the pipeline can detect stale cached content
// being served on non-refresh days.
//
// ## Sunny Bank (secondary)
//
// URL: https://www.sunnybank.com.tw/net/Rate/RateQuery
//
// Scrapes the Sunny Bank rate query table. Rows are matched by
// 美元/USD and 人民幣/CNY, with the spot buy / sell cells read at fixed
// positions (cells 3 and 4). A row is only trusted when it carries at
// least 5 cells.
//
// Both providers request pages with a browser-like header set and a
// bounded timeout. A currency whose row fails to match keeps the
// sentinel default ("-") instead of failing the extraction.
package twd

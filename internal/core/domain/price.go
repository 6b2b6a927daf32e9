package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSource names the tier that produced a resolved price.
type PriceSource string

const (
	SourceIdentity       PriceSource = "identity"
	SourceMarketSnapshot PriceSource = "market_snapshot"
	SourceTablePair      PriceSource = "price_table_pair"
	SourceTableDerived   PriceSource = "price_table_derived"
	SourceUnknown        PriceSource = "unknown"
)

// Price is the outcome of a price resolution. A Price that is not Known carries no value and
// must never be read as zero.
type Price struct {
	Value  decimal.Decimal `json:"value"`
	Known  bool            `json:"known"`
	Source PriceSource     `json:"source"`
}

// UnknownPrice is the sentinel returned when a pair cannot be resolved.
var UnknownPrice = Price{Source: SourceUnknown}

// KnownPrice builds a resolved price.
func KnownPrice(v decimal.Decimal, src PriceSource) Price {
	return Price{Value: v, Known: true, Source: src}
}

// PriceTable maps a CurrencyCode (price in the reference unit) or a composite key
// "<BASE>_<QUOTE>" to a positive price. Absent keys mean unknown.
type PriceTable map[string]decimal.Decimal

// PairKey builds the composite key for a base/quote pair.
func PairKey(base, quote CurrencyCode) string {
	return string(base) + "_" + string(quote)
}

// Lookup returns the entry for key when it is present and positive.
func (t PriceTable) Lookup(key string) (decimal.Decimal, bool) {
	if t == nil {
		return decimal.Zero, false
	}
	v, ok := t[key]
	if !ok || !v.IsPositive() {
		return decimal.Zero, false
	}
	return v, true
}

// MarketQuote holds the prices of one crypto asset in each reported fiat currency.
type MarketQuote struct {
	Prices    map[CurrencyCode]decimal.Decimal `json:"prices"`
	Change24h map[CurrencyCode]decimal.Decimal `json:"change24h"` // Percent change over 24h
}

// MarketSnapshot is a point-in-time read of the external market data feed.
type MarketSnapshot struct {
	Quotes    map[CurrencyCode]MarketQuote `json:"quotes"`
	FetchedAt time.Time                    `json:"fetchedAt"`
}

// Price returns the snapshot price of base in quote, if covered and positive.
func (s *MarketSnapshot) Price(base, quote CurrencyCode) (decimal.Decimal, bool) {
	if s == nil {
		return decimal.Zero, false
	}
	q, ok := s.Quotes[base]
	if !ok {
		return decimal.Zero, false
	}
	v, ok := q.Prices[quote]
	if !ok || !v.IsPositive() {
		return decimal.Zero, false
	}
	return v, true
}

// Age returns how long ago the snapshot was taken relative to now.
func (s *MarketSnapshot) Age(now time.Time) time.Duration {
	if s == nil || s.FetchedAt.IsZero() {
		return 0
	}
	return now.Sub(s.FetchedAt)
}

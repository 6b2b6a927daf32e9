// Package engine holds the pure conversion and closure logic: price resolution, linked
// amount editing and wallet closure planning. Nothing here performs I/O or keeps state.
package engine

import (
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Resolver resolves the unit price of base expressed in quote.
type Resolver interface {
	Resolve(base, quote domain.CurrencyCode) domain.Price
}

// FallbackRates maps a fiat currency to its approximate value in the price table's
// reference unit. It is only consulted when the table has no entry for the quote.
type FallbackRates map[domain.CurrencyCode]decimal.Decimal

// DefaultFallbackRates returns the built-in approximations (reference unit is EUR).
func DefaultFallbackRates() FallbackRates {
	return FallbackRates{
		domain.EUR: decimal.NewFromInt(1),
		domain.USD: decimal.RequireFromString("0.92"),
	}
}

// PriceResolver resolves prices from a market snapshot first, then from the flat price table.
// Both inputs are read-only snapshots owned by the caller.
type PriceResolver struct {
	snapshot *domain.MarketSnapshot
	table    domain.PriceTable
	fallback FallbackRates
}

var _ Resolver = PriceResolver{}

// NewPriceResolver creates a resolver over the given snapshot and table. Either may be nil.
func NewPriceResolver(snapshot *domain.MarketSnapshot, table domain.PriceTable, fallback FallbackRates) PriceResolver {
	return PriceResolver{snapshot: snapshot, table: table, fallback: fallback}
}

// Resolve returns the best available price of one base unit in quote units, or
// domain.UnknownPrice. It never returns a known price of zero.
func (r PriceResolver) Resolve(base, quote domain.CurrencyCode) domain.Price {
	base = domain.NormalizeCurrencyCode(string(base))
	quote = domain.NormalizeCurrencyCode(string(quote))

	if base == quote {
		return domain.KnownPrice(decimal.NewFromInt(1), domain.SourceIdentity)
	}

	if p, ok := r.fromSnapshot(base, quote); ok {
		return domain.KnownPrice(p, domain.SourceMarketSnapshot)
	}

	if p, ok := r.table.Lookup(domain.PairKey(base, quote)); ok {
		return domain.KnownPrice(p, domain.SourceTablePair)
	}

	if p, ok := r.derived(base, quote); ok {
		return domain.KnownPrice(p, domain.SourceTableDerived)
	}

	return domain.UnknownPrice
}

func (r PriceResolver) fromSnapshot(base, quote domain.CurrencyCode) (decimal.Decimal, bool) {
	if r.snapshot == nil || !domain.IsCrypto(base) || !domain.IsFiat(quote) {
		return decimal.Zero, false
	}
	return r.snapshot.Price(base, quote)
}

// derived divides both sides' reference-unit prices.
func (r PriceResolver) derived(base, quote domain.CurrencyCode) (decimal.Decimal, bool) {
	baseRef, ok := r.table.Lookup(string(base))
	if !ok {
		return decimal.Zero, false
	}

	quoteRef, ok := r.table.Lookup(string(quote))
	if !ok {
		quoteRef, ok = r.fallback[quote]
		if !ok || !quoteRef.IsPositive() {
			return decimal.Zero, false
		}
	}

	p := baseRef.Div(quoteRef)
	if !p.IsPositive() {
		// Underflowed past the division precision.
		return decimal.Zero, false
	}
	return p, true
}

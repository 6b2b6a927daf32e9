package engine_test

import (
	"testing"
	"time"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/core/engine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func snapshotWith(base domain.CurrencyCode, prices map[domain.CurrencyCode]string) *domain.MarketSnapshot {
	q := domain.MarketQuote{Prices: map[domain.CurrencyCode]decimal.Decimal{}}
	for code, v := range prices {
		q.Prices[code] = dec(v)
	}
	return &domain.MarketSnapshot{
		Quotes:    map[domain.CurrencyCode]domain.MarketQuote{base: q},
		FetchedAt: time.Now(),
	}
}

func TestPriceResolver_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		snapshot   *domain.MarketSnapshot
		table      domain.PriceTable
		base       domain.CurrencyCode
		quote      domain.CurrencyCode
		wantKnown  bool
		wantValue  string
		wantSource domain.PriceSource
	}{
		{
			name:       "snapshot takes priority over stale table pair",
			snapshot:   snapshotWith(domain.BTC, map[domain.CurrencyCode]string{domain.EUR: "46000"}),
			table:      domain.PriceTable{"BTC_EUR": dec("45000")},
			base:       domain.BTC,
			quote:      domain.EUR,
			wantKnown:  true,
			wantValue:  "46000",
			wantSource: domain.SourceMarketSnapshot,
		},
		{
			name:       "snapshot not covering quote falls through to table pair",
			snapshot:   snapshotWith(domain.BTC, map[domain.CurrencyCode]string{domain.EUR: "46000"}),
			table:      domain.PriceTable{"BTC_USD": dec("50000")},
			base:       domain.BTC,
			quote:      domain.USD,
			wantKnown:  true,
			wantValue:  "50000",
			wantSource: domain.SourceTablePair,
		},
		{
			name:       "table pair without snapshot",
			table:      domain.PriceTable{"BTC_EUR": dec("45000")},
			base:       domain.BTC,
			quote:      domain.EUR,
			wantKnown:  true,
			wantValue:  "45000",
			wantSource: domain.SourceTablePair,
		},
		{
			name:       "common unit derivation",
			table:      domain.PriceTable{"BTC": dec("45000"), "EUR": dec("1")},
			base:       domain.BTC,
			quote:      domain.EUR,
			wantKnown:  true,
			wantValue:  "45000",
			wantSource: domain.SourceTableDerived,
		},
		{
			name:       "missing quote entry uses fallback fiat rate",
			table:      domain.PriceTable{"ETH": dec("2300")},
			base:       domain.ETH,
			quote:      domain.USD,
			wantKnown:  true,
			wantValue:  dec("2300").Div(dec("0.92")).String(),
			wantSource: domain.SourceTableDerived,
		},
		{
			name:      "missing base entry is unknown",
			table:     domain.PriceTable{"EUR": dec("1")},
			base:      domain.BTC,
			quote:     domain.EUR,
			wantKnown: false,
		},
		{
			name:      "missing quote without fallback is unknown",
			table:     domain.PriceTable{"BTC": dec("45000")},
			base:      domain.BTC,
			quote:     domain.ETH,
			wantKnown: false,
		},
		{
			name:      "zero table entries are treated as absent",
			table:     domain.PriceTable{"BTC_EUR": decimal.Zero, "BTC": decimal.Zero},
			base:      domain.BTC,
			quote:     domain.EUR,
			wantKnown: false,
		},
		{
			name:      "nothing available",
			base:      domain.SOL,
			quote:     domain.EUR,
			wantKnown: false,
		},
		{
			name:       "lower case codes are normalized",
			table:      domain.PriceTable{"BTC_EUR": dec("45000")},
			base:       "btc",
			quote:      " eur",
			wantKnown:  true,
			wantValue:  "45000",
			wantSource: domain.SourceTablePair,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := engine.NewPriceResolver(tt.snapshot, tt.table, engine.DefaultFallbackRates())
			got := r.Resolve(tt.base, tt.quote)

			require.Equal(t, tt.wantKnown, got.Known)
			if !tt.wantKnown {
				assert.Equal(t, domain.UnknownPrice, got)
				return
			}
			assert.True(t, dec(tt.wantValue).Equal(got.Value), "got %s", got.Value)
			assert.Equal(t, tt.wantSource, got.Source)
			assert.True(t, got.Value.IsPositive())
		})
	}
}

func TestPriceResolver_SamePairIsAlwaysOne(t *testing.T) {
	tables := []domain.PriceTable{
		nil,
		{},
		{"BTC_BTC": dec("3"), "BTC": dec("45000")},
		{"EUR_EUR": dec("0.5"), "EUR": dec("2")},
	}
	snapshot := snapshotWith(domain.BTC, map[domain.CurrencyCode]string{domain.EUR: "46000"})

	for _, table := range tables {
		for _, code := range []domain.CurrencyCode{domain.BTC, domain.ETH, domain.SOL, domain.EUR, domain.USD, "XYZ"} {
			for _, snap := range []*domain.MarketSnapshot{nil, snapshot} {
				got := engine.NewPriceResolver(snap, table, engine.DefaultFallbackRates()).Resolve(code, code)
				assert.True(t, got.Known)
				assert.True(t, got.Value.Equal(decimal.NewFromInt(1)), "code %s", code)
				assert.Equal(t, domain.SourceIdentity, got.Source)
			}
		}
	}
}

func TestPriceResolver_SnapshotIgnoredForNonCryptoBase(t *testing.T) {
	snap := &domain.MarketSnapshot{
		Quotes: map[domain.CurrencyCode]domain.MarketQuote{
			domain.EUR: {Prices: map[domain.CurrencyCode]decimal.Decimal{domain.USD: dec("1.08")}},
		},
	}
	r := engine.NewPriceResolver(snap, domain.PriceTable{"EUR_USD": dec("1.1")}, nil)

	got := r.Resolve(domain.EUR, domain.USD)

	require.True(t, got.Known)
	assert.Equal(t, domain.SourceTablePair, got.Source)
	assert.True(t, dec("1.1").Equal(got.Value))
}

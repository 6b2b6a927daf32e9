package engine_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/core/engine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSync(table domain.PriceTable) engine.AmountSynchronizer {
	return engine.NewAmountSynchronizer(engine.NewPriceResolver(nil, table, engine.DefaultFallbackRates()))
}

func TestAmountSynchronizer_BaseEditComputesQuote(t *testing.T) {
	s := newSync(domain.PriceTable{"BTC_EUR": dec("45000")})

	st := s.OnBaseAmountChanged(domain.NewAmountState(domain.BTC, domain.EUR), "0.123456789")

	assert.Equal(t, domain.SideBase, st.LastEdited)
	assert.Equal(t, "0.123456789", st.BaseAmount.Text)
	assert.Equal(t, domain.FieldValid, st.QuoteAmount.State)
	// full precision kept internally, rounded half up for display
	assert.True(t, dec("5555.555505").Equal(st.QuoteAmount.Value))
	assert.Equal(t, "5555.56", st.QuoteAmount.Text)
}

func TestAmountSynchronizer_QuoteEditComputesBase(t *testing.T) {
	s := newSync(domain.PriceTable{"BTC_EUR": dec("45000")})

	st := s.OnQuoteAmountChanged(domain.NewAmountState(domain.BTC, domain.EUR), "500")

	assert.Equal(t, domain.SideQuote, st.LastEdited)
	assert.Equal(t, domain.FieldValid, st.BaseAmount.State)
	assert.Equal(t, "0.01111111", st.BaseAmount.Text)
}

func TestAmountSynchronizer_InvalidTextClearsOtherField(t *testing.T) {
	s := newSync(domain.PriceTable{"BTC_EUR": dec("45000")})
	st := s.OnBaseAmountChanged(domain.NewAmountState(domain.BTC, domain.EUR), "1")
	require.Equal(t, domain.FieldValid, st.QuoteAmount.State)

	for _, text := range []string{"abc", "-1", "", "1.2.3", "1e2000000000"} {
		got := s.OnBaseAmountChanged(st, text)
		assert.Equal(t, text, got.BaseAmount.Text, "raw text kept for %q", text)
		assert.Equal(t, domain.FieldEmpty, got.BaseAmount.State)
		assert.Equal(t, domain.FieldEmpty, got.QuoteAmount.State)
		assert.Empty(t, got.QuoteAmount.Text)
	}
}

func TestAmountSynchronizer_CommaDecimalSeparator(t *testing.T) {
	s := newSync(domain.PriceTable{"BTC_EUR": dec("40000")})

	st := s.OnBaseAmountChanged(domain.NewAmountState(domain.BTC, domain.EUR), " 0,5 ")

	assert.Equal(t, domain.FieldValid, st.BaseAmount.State)
	assert.Equal(t, "20000.00", st.QuoteAmount.Text)
}

func TestAmountSynchronizer_UnknownPriceKeepsPreviousValue(t *testing.T) {
	known := newSync(domain.PriceTable{"BTC_EUR": dec("45000")})
	unknown := newSync(nil)

	st := known.OnBaseAmountChanged(domain.NewAmountState(domain.BTC, domain.EUR), "1")
	require.Equal(t, "45000.00", st.QuoteAmount.Text)

	st = unknown.OnBaseAmountChanged(st, "2")

	assert.Equal(t, domain.FieldValid, st.BaseAmount.State)
	assert.Equal(t, domain.FieldStale, st.QuoteAmount.State)
	assert.Equal(t, "45000.00", st.QuoteAmount.Text, "quote must not be zeroed")
	assert.True(t, dec("45000").Equal(st.QuoteAmount.Value))

	// price becomes available again
	st = known.Reconcile(st)
	assert.Equal(t, domain.FieldValid, st.QuoteAmount.State)
	assert.Equal(t, "90000.00", st.QuoteAmount.Text)
}

func TestAmountSynchronizer_UnknownPriceLeavesBaseUnchanged(t *testing.T) {
	st := domain.NewAmountState(domain.BTC, domain.EUR)
	st.BaseAmount = domain.AmountField{Text: "0.5", Value: dec("0.5"), State: domain.FieldValid}

	st = newSync(nil).OnQuoteAmountChanged(st, "100")

	assert.Equal(t, domain.FieldStale, st.BaseAmount.State)
	assert.Equal(t, "0.5", st.BaseAmount.Text)
	assert.True(t, dec("0.5").Equal(st.BaseAmount.Value))
}

func TestAmountSynchronizer_PairChangeRecomputesNonAuthoritativeField(t *testing.T) {
	s := newSync(domain.PriceTable{"BTC_EUR": dec("45000"), "ETH_EUR": dec("2500"), "BTC_USD": dec("50000")})

	t.Run("base edited last", func(t *testing.T) {
		st := s.OnBaseAmountChanged(domain.NewAmountState(domain.BTC, domain.EUR), "2")
		st = s.OnPairChanged(st, domain.ETH, domain.EUR)

		assert.Equal(t, "2", st.BaseAmount.Text, "authoritative field untouched")
		assert.Equal(t, "5000.00", st.QuoteAmount.Text)
	})

	t.Run("quote edited last", func(t *testing.T) {
		st := s.OnQuoteAmountChanged(domain.NewAmountState(domain.BTC, domain.EUR), "5000")
		st = s.OnPairChanged(st, domain.ETH, domain.EUR)

		assert.Equal(t, "5000", st.QuoteAmount.Text, "authoritative field untouched")
		assert.Equal(t, "2.00000000", st.BaseAmount.Text)
	})

	t.Run("unknown new pair marks other field stale", func(t *testing.T) {
		st := s.OnBaseAmountChanged(domain.NewAmountState(domain.BTC, domain.EUR), "1")
		st = s.OnPairChanged(st, domain.SOL, domain.EUR)

		assert.Equal(t, domain.SOL, st.Base)
		assert.Equal(t, domain.FieldStale, st.QuoteAmount.State)
		assert.Equal(t, "45000.00", st.QuoteAmount.Text)
	})
}

func TestAmountSynchronizer_PairChangeIsIdempotent(t *testing.T) {
	s := newSync(domain.PriceTable{"BTC_EUR": dec("45000"), "BTC_USD": dec("50000")})

	for _, edit := range []func(domain.AmountState) domain.AmountState{
		func(st domain.AmountState) domain.AmountState { return s.OnBaseAmountChanged(st, "0.3") },
		func(st domain.AmountState) domain.AmountState { return s.OnQuoteAmountChanged(st, "1234.56") },
		func(st domain.AmountState) domain.AmountState { return st },
	} {
		st := edit(domain.NewAmountState(domain.BTC, domain.EUR))
		once := s.OnPairChanged(st, domain.BTC, domain.USD)
		twice := s.OnPairChanged(once, domain.BTC, domain.USD)

		assert.Equal(t, once.BaseAmount.Text, twice.BaseAmount.Text)
		assert.Equal(t, once.QuoteAmount.Text, twice.QuoteAmount.Text)
		assert.Equal(t, once.BaseAmount.State, twice.BaseAmount.State)
		assert.Equal(t, once.QuoteAmount.State, twice.QuoteAmount.State)
		assert.True(t, once.BaseAmount.Value.Equal(twice.BaseAmount.Value))
		assert.True(t, once.QuoteAmount.Value.Equal(twice.QuoteAmount.Value))
		assert.Equal(t, once.LastEdited, twice.LastEdited)
	}
}

func TestAmountSynchronizer_RoundTrip(t *testing.T) {
	prices := []string{"45000", "2500.5", "0.92", "1", "100"}
	amounts := []string{"0", "0.5", "1", "0.00012345", "12.3456789", "1000"}

	for _, p := range prices {
		s := newSync(domain.PriceTable{"BTC_EUR": dec(p)})
		price := dec(p)
		// quote display rounds to 0.005, which maps back to 0.005/price in base units
		tolerance := dec("0.005").Div(price).Add(dec("0.00000001"))

		for _, a := range amounts {
			st := s.OnBaseAmountChanged(domain.NewAmountState(domain.BTC, domain.EUR), a)
			back := s.OnQuoteAmountChanged(st, st.QuoteAmount.Text)

			diff := back.BaseAmount.Value.Sub(dec(a)).Abs()
			assert.True(t, diff.LessThanOrEqual(tolerance), "price %s amount %s: got %s", p, a, back.BaseAmount.Value)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"1", "1", true},
		{" 2.5 ", "2.5", true},
		{"0,75", "0.75", true},
		{"0", "0", true},
		{"-0.1", "", false},
		{"", "", false},
		{"   ", "", false},
		{"1,000.5", "", false},
		{"abc", "", false},
		{"1e3", "", false},
		{"1E-3", "", false},
		{"1e2000000000", "", false},
		{"0.1e-2000000000", "", false},
		{"1" + strings.Repeat("0", domain.MaxAmountIntegerDigits), "", false},
		{"0." + strings.Repeat("0", domain.MaxAmountScale) + "1", "", false},
		{"999999999999999999999999999999", "999999999999999999999999999999", true},
	}
	for _, tt := range tests {
		got, ok := engine.ParseAmount(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		if tt.wantOK {
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), tt.in)
		}
	}
}

func TestFormatAmount_RoundsHalfUp(t *testing.T) {
	assert.Equal(t, "0.13", engine.FormatAmount(dec("0.125"), domain.EUR))
	assert.Equal(t, "0.12", engine.FormatAmount(dec("0.1249"), domain.EUR))
	assert.Equal(t, "0.00000001", engine.FormatAmount(dec("0.000000005"), domain.BTC))
	assert.Equal(t, "1.00000000", engine.FormatAmount(dec("1"), domain.BTC))
}

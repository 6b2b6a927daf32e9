package engine_test

import (
	"testing"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wallet(code domain.CurrencyCode, balance string) domain.Wallet {
	return domain.Wallet{WalletID: string(code) + "-wallet", UserID: "42", CurrencyCode: code, Balance: dec(balance)}
}

func TestPlanClosure_SellCryptoIntoFiat(t *testing.T) {
	r := engine.NewPriceResolver(nil, domain.PriceTable{"BTC_EUR": dec("45000")}, engine.DefaultFallbackRates())

	intent := engine.PlanClosure(wallet(domain.BTC, "0.5"), wallet(domain.EUR, "10"), r)

	assert.Equal(t, domain.IntentSell, intent.Kind)
	assert.Equal(t, domain.BTC, intent.Base)
	assert.Equal(t, domain.EUR, intent.Quote)
	assert.True(t, dec("0.5").Equal(intent.Amount))
	assert.Nil(t, intent.Price)
}

func TestPlanClosure_BuyCryptoWithFiat(t *testing.T) {
	r := engine.NewPriceResolver(nil, domain.PriceTable{"BTC": dec("45000"), "EUR": dec("1")}, engine.DefaultFallbackRates())

	intent := engine.PlanClosure(wallet(domain.EUR, "500"), wallet(domain.BTC, "0"), r)

	require.Equal(t, domain.IntentBuy, intent.Kind)
	assert.Equal(t, domain.BTC, intent.Base)
	assert.Equal(t, domain.EUR, intent.Quote)
	assert.Equal(t, "0.01111111", intent.Amount.String())
	require.NotNil(t, intent.Price)
	assert.True(t, dec("45000").Equal(*intent.Price))
	// never spends more than the balance
	assert.True(t, intent.Amount.Mul(*intent.Price).LessThanOrEqual(dec("500")))
}

func TestPlanClosure_BuyWithoutPriceIsIncompatible(t *testing.T) {
	r := engine.NewPriceResolver(nil, domain.PriceTable{"EUR": dec("1")}, engine.DefaultFallbackRates())

	intent := engine.PlanClosure(wallet(domain.EUR, "500"), wallet(domain.BTC, "0"), r)

	assert.Equal(t, domain.IntentIncompatible, intent.Kind)
	assert.Equal(t, domain.ReasonPriceUnknown, intent.Reason)
	assert.True(t, intent.IsIncompatible())
}

func TestPlanClosure_SameKindIsIncompatible(t *testing.T) {
	// Prices for both sides are available, the planner still refuses to invent a cross rate.
	r := engine.NewPriceResolver(nil, domain.PriceTable{"BTC": dec("45000"), "ETH": dec("2500"), "BTC_ETH": dec("18")}, nil)

	intent := engine.PlanClosure(wallet(domain.BTC, "1"), wallet(domain.ETH, "0"), r)

	assert.Equal(t, domain.IntentIncompatible, intent.Kind)
	assert.Equal(t, domain.ReasonSameKind, intent.Reason)
}

func TestPlanClosure_IsTotal(t *testing.T) {
	codes := []domain.CurrencyCode{domain.BTC, domain.ETH, domain.EUR, domain.USD, "XYZ"}
	resolvers := []engine.Resolver{
		nil,
		engine.NewPriceResolver(nil, nil, nil),
		engine.NewPriceResolver(nil, domain.PriceTable{"BTC": dec("45000"), "ETH": dec("2500"), "EUR": dec("1")}, engine.DefaultFallbackRates()),
	}

	for _, src := range codes {
		for _, dst := range codes {
			for _, r := range resolvers {
				var intent domain.OrderIntent
				assert.NotPanics(t, func() {
					intent = engine.PlanClosure(wallet(src, "3"), wallet(dst, "0"), r)
				})
				assert.Contains(t, []domain.IntentKind{domain.IntentSell, domain.IntentBuy, domain.IntentIncompatible}, intent.Kind)

				srcKind, dstKind := domain.KindOf(src), domain.KindOf(dst)
				switch {
				case srcKind == domain.KindCrypto && dstKind == domain.KindFiat:
					assert.Equal(t, domain.IntentSell, intent.Kind)
				case srcKind == dstKind:
					assert.Equal(t, domain.IntentIncompatible, intent.Kind)
				case srcKind == domain.KindUnknown || dstKind == domain.KindUnknown:
					assert.Equal(t, domain.ReasonUnknownCurrency, intent.Reason)
				}
			}
		}
	}
}

package engine

import (
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
)

// PlanClosure decides which settlement must run before source can be deleted, given the
// destination wallet chosen by the user. It never mutates or submits anything.
//
// crypto -> fiat sells the whole balance; fiat -> crypto buys as much of the destination
// asset as the balance pays for. Every other combination, or a missing price, is
// incompatible.
func PlanClosure(source, destination domain.Wallet, prices Resolver) domain.OrderIntent {
	srcKind := domain.KindOf(source.CurrencyCode)
	dstKind := domain.KindOf(destination.CurrencyCode)

	switch {
	case srcKind == domain.KindUnknown || dstKind == domain.KindUnknown:
		return domain.Incompatible(domain.ReasonUnknownCurrency)

	case srcKind == domain.KindCrypto && dstKind == domain.KindFiat:
		return domain.Sell(source.CurrencyCode, source.Balance, destination.CurrencyCode)

	case srcKind == domain.KindFiat && dstKind == domain.KindCrypto:
		if prices == nil {
			return domain.Incompatible(domain.ReasonPriceUnknown)
		}
		p := prices.Resolve(destination.CurrencyCode, source.CurrencyCode)
		if !p.Known || !p.Value.IsPositive() {
			return domain.Incompatible(domain.ReasonPriceUnknown)
		}
		// Truncate so the order never costs more than the balance.
		amount := source.Balance.Div(p.Value).Truncate(int32(domain.PrecisionOf(destination.CurrencyCode)))
		return domain.Buy(destination.CurrencyCode, amount, source.CurrencyCode, p.Value)

	default:
		return domain.Incompatible(domain.ReasonSameKind)
	}
}

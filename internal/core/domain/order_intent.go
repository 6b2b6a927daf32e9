package domain

import "github.com/shopspring/decimal"

// IntentKind is the settlement action required before a wallet closure.
type IntentKind string

const (
	IntentSell         IntentKind = "SELL"
	IntentBuy          IntentKind = "BUY"
	IntentIncompatible IntentKind = "INCOMPATIBLE"
)

// IncompatibleReason explains why no settlement could be planned.
type IncompatibleReason string

const (
	ReasonSameKind        IncompatibleReason = "same_kind"
	ReasonUnknownCurrency IncompatibleReason = "unknown_currency"
	ReasonPriceUnknown    IncompatibleReason = "price_unknown"
)

// OrderIntent describes the settlement to submit before deleting a wallet. It is pure data.
//
// For a sell, Base is sold for Quote. For a buy, Base is bought and paid with Quote.
type OrderIntent struct {
	Kind   IntentKind         `json:"kind"`
	Base   CurrencyCode       `json:"base,omitempty"`
	Quote  CurrencyCode       `json:"quote,omitempty"`
	Amount decimal.Decimal    `json:"amount" swaggertype:"string"`
	Price  *decimal.Decimal   `json:"price,omitempty" swaggertype:"string"` // Price used to size a buy
	Reason IncompatibleReason `json:"reason,omitempty"`
}

// Sell builds a sell intent.
func Sell(base CurrencyCode, amount decimal.Decimal, quote CurrencyCode) OrderIntent {
	return OrderIntent{Kind: IntentSell, Base: base, Quote: quote, Amount: amount}
}

// Buy builds a buy intent paid with quotePayment.
func Buy(base CurrencyCode, amount decimal.Decimal, quotePayment CurrencyCode, price decimal.Decimal) OrderIntent {
	return OrderIntent{Kind: IntentBuy, Base: base, Quote: quotePayment, Amount: amount, Price: &price}
}

// Incompatible builds a terminal intent that blocks the closure.
func Incompatible(reason IncompatibleReason) OrderIntent {
	return OrderIntent{Kind: IntentIncompatible, Reason: reason}
}

// IsIncompatible reports whether the closure must be refused.
func (o OrderIntent) IsIncompatible() bool {
	return o.Kind == IntentIncompatible
}

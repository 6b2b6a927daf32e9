package domain

import "github.com/shopspring/decimal"

// FieldState is the state of one linked amount field.
type FieldState string

const (
	FieldEmpty FieldState = "EMPTY"
	FieldValid FieldState = "VALID"
	FieldStale FieldState = "STALE" // Price was unknown when the other field last changed
)

// FieldSide identifies one of the two linked fields.
type FieldSide string

const (
	SideNone  FieldSide = ""
	SideBase  FieldSide = "BASE"
	SideQuote FieldSide = "QUOTE"
)

// AmountField is one linked amount input: what the user sees and what it parses to.
type AmountField struct {
	Text  string          `json:"text"`
	Value decimal.Decimal `json:"value" swaggertype:"string"` // Full precision; meaningful unless State is EMPTY
	State FieldState      `json:"state"`
}

// AmountState is the caller-owned state of a base/quote amount pair.
type AmountState struct {
	Base        CurrencyCode `json:"base"`
	Quote       CurrencyCode `json:"quote"`
	BaseAmount  AmountField  `json:"baseAmount"`
	QuoteAmount AmountField  `json:"quoteAmount"`
	LastEdited  FieldSide    `json:"lastEdited"`
}

// NewAmountState returns an empty state for the pair.
func NewAmountState(base, quote CurrencyCode) AmountState {
	return AmountState{
		Base:        base,
		Quote:       quote,
		BaseAmount:  AmountField{State: FieldEmpty},
		QuoteAmount: AmountField{State: FieldEmpty},
	}
}

const (
	// MaxAmountIntegerDigits bounds the integer part of any amount or price accepted from clients.
	MaxAmountIntegerDigits = 30
	// MaxAmountScale bounds the fractional digits of any amount or price accepted from clients.
	MaxAmountScale = 64
)

var maxAmount = decimal.New(1, MaxAmountIntegerDigits)

// AmountInBounds reports whether v is small enough to format, compare and settle.
// The exponent is checked before any comparison, since comparing rescales both operands.
func AmountInBounds(v decimal.Decimal) bool {
	if v.Exponent() > MaxAmountIntegerDigits || v.Exponent() < -MaxAmountScale {
		return false
	}
	return v.Abs().LessThan(maxAmount)
}

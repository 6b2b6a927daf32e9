package engine

import (
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
)

// AmountSynchronizer keeps a base amount and a quote amount consistent while the user edits
// either one. All operations take the current state and return the next one.
//
// The field the user touched last is authoritative: a pair change only recomputes the other
// field. When no price is known the dependent field keeps its previous content and is marked
// stale instead of being zeroed.
type AmountSynchronizer struct {
	prices Resolver
}

// NewAmountSynchronizer creates a synchronizer bound to the given price source.
func NewAmountSynchronizer(prices Resolver) AmountSynchronizer {
	return AmountSynchronizer{prices: prices}
}

// OnBaseAmountChanged applies an edit of the base amount field.
func (s AmountSynchronizer) OnBaseAmountChanged(st domain.AmountState, text string) domain.AmountState {
	st.LastEdited = domain.SideBase
	v, ok := ParseAmount(text)
	if !ok {
		st.BaseAmount = domain.AmountField{Text: text, State: domain.FieldEmpty}
		st.QuoteAmount = domain.AmountField{State: domain.FieldEmpty}
		return st
	}
	st.BaseAmount = domain.AmountField{Text: text, Value: v, State: domain.FieldValid}
	return s.recomputeQuote(st)
}

// OnQuoteAmountChanged applies an edit of the quote amount field.
func (s AmountSynchronizer) OnQuoteAmountChanged(st domain.AmountState, text string) domain.AmountState {
	st.LastEdited = domain.SideQuote
	v, ok := ParseAmount(text)
	if !ok {
		st.QuoteAmount = domain.AmountField{Text: text, State: domain.FieldEmpty}
		st.BaseAmount = domain.AmountField{State: domain.FieldEmpty}
		return st
	}
	st.QuoteAmount = domain.AmountField{Text: text, Value: v, State: domain.FieldValid}
	return s.recomputeBase(st)
}

// OnPairChanged switches the active pair and recomputes the field the user did not edit last.
func (s AmountSynchronizer) OnPairChanged(st domain.AmountState, base, quote domain.CurrencyCode) domain.AmountState {
	st.Base = domain.NormalizeCurrencyCode(string(base))
	st.Quote = domain.NormalizeCurrencyCode(string(quote))

	if st.LastEdited == domain.SideQuote {
		if st.QuoteAmount.State == domain.FieldValid {
			return s.recomputeBase(st)
		}
		return st
	}
	if st.BaseAmount.State == domain.FieldValid {
		return s.recomputeQuote(st)
	}
	return st
}

// Reconcile recomputes a stale field from the other one if a price has become available.
func (s AmountSynchronizer) Reconcile(st domain.AmountState) domain.AmountState {
	switch {
	case st.QuoteAmount.State == domain.FieldStale && st.BaseAmount.State == domain.FieldValid:
		return s.recomputeQuote(st)
	case st.BaseAmount.State == domain.FieldStale && st.QuoteAmount.State == domain.FieldValid:
		return s.recomputeBase(st)
	}
	return st
}

func (s AmountSynchronizer) price(st domain.AmountState) domain.Price {
	if s.prices == nil {
		return domain.UnknownPrice
	}
	return s.prices.Resolve(st.Base, st.Quote)
}

func (s AmountSynchronizer) recomputeQuote(st domain.AmountState) domain.AmountState {
	p := s.price(st)
	if !p.Known {
		st.QuoteAmount.State = domain.FieldStale
		return st
	}
	q := st.BaseAmount.Value.Mul(p.Value)
	st.QuoteAmount = domain.AmountField{Text: FormatAmount(q, st.Quote), Value: q, State: domain.FieldValid}
	return st
}

func (s AmountSynchronizer) recomputeBase(st domain.AmountState) domain.AmountState {
	p := s.price(st)
	if !p.Known || p.Value.IsZero() {
		st.BaseAmount.State = domain.FieldStale
		return st
	}
	b := st.QuoteAmount.Value.Div(p.Value)
	st.BaseAmount = domain.AmountField{Text: FormatAmount(b, st.Base), Value: b, State: domain.FieldValid}
	return st
}

package dto

import "github.com/SscSPs/crypto_wallet_app/internal/core/domain"

// ConversionEvent names the edit applied by a conversion preview.
type ConversionEvent string

const (
	ConversionEventBase      ConversionEvent = "base"
	ConversionEventQuote     ConversionEvent = "quote"
	ConversionEventPair      ConversionEvent = "pair"
	ConversionEventReconcile ConversionEvent = "reconcile"
)

// ConversionPreviewRequest carries the client's current state and one edit.
// Text is used by base/quote events; Base and Quote by pair events.
// A missing state starts from an empty one for the given pair.
type ConversionPreviewRequest struct {
	State *domain.AmountState `json:"state"`
	Event ConversionEvent     `json:"event" binding:"required,oneof=base quote pair reconcile"`
	Text  string              `json:"text"`
	Base  string              `json:"base" binding:"omitempty,currency"`
	Quote string              `json:"quote" binding:"omitempty,currency"`
}

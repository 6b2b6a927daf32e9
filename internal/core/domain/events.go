package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType names an event published after a successful operation.
type EventType string

const (
	EventWalletClosed   EventType = "wallet.closed"
	EventOrderSubmitted EventType = "order.submitted"
)

// Event is the payload published to the event stream.
type Event struct {
	EventID    string          `json:"eventID"`
	Type       EventType       `json:"type"`
	UserID     string          `json:"userID"`
	WalletID   string          `json:"walletID,omitempty"`
	Intent     *OrderIntent    `json:"intent,omitempty"`
	Currency   CurrencyCode    `json:"currency,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Message    string          `json:"message,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementKind is the kind of order accepted by the settlement service.
type SettlementKind string

const (
	SettlementBuy      SettlementKind = "BUY"
	SettlementSell     SettlementKind = "SELL"
	SettlementTransfer SettlementKind = "TRANSFER"
	SettlementLimit    SettlementKind = "LIMIT"
)

// LimitOrder is a buy or sell the settlement service executes once the market reaches TargetPrice.
type LimitOrder struct {
	Side        IntentKind      `json:"side"` // IntentBuy or IntentSell
	Crypto      CurrencyCode    `json:"crypto"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	TargetPrice decimal.Decimal `json:"targetPrice" swaggertype:"string"`
}

// SettlementResult is the acknowledgement returned by the settlement service.
type SettlementResult struct {
	Message string `json:"message"`
}

// TransactionRecord is one entry of a user's settlement history.
type TransactionRecord struct {
	ID        int64           `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Type      string          `json:"type"`
	Actor1    int64           `json:"actor1"`
	Actor2    *int64          `json:"actor2,omitempty"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	Unit      CurrencyCode    `json:"unit"`
	Status    string          `json:"status"`
	Message   string          `json:"message,omitempty"`
}

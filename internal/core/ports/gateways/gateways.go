// Package gateways declares the outbound ports to systems this service does not own:
// the market data feed, the settlement backend, the event stream and the snapshot cache.
package gateways

import (
	"context"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MarketFeed fetches a fresh MarketSnapshot from the external market data provider.
type MarketFeed interface {
	FetchSnapshot(ctx context.Context) (*domain.MarketSnapshot, error)
}

// SettlementClient submits orders to the settlement backend.
// Every failure is reported as an error wrapping apperrors.ErrSettlementFailed.
type SettlementClient interface {
	Buy(ctx context.Context, userID string, crypto domain.CurrencyCode, amount decimal.Decimal, payment domain.CurrencyCode) (*domain.SettlementResult, error)
	Sell(ctx context.Context, userID string, crypto domain.CurrencyCode, amount decimal.Decimal, target domain.CurrencyCode) (*domain.SettlementResult, error)
	Transfer(ctx context.Context, fromUserID, toUserID string, crypto domain.CurrencyCode, amount decimal.Decimal) (*domain.SettlementResult, error)
	// Order schedules a limit order. It is acknowledged immediately and settled later.
	Order(ctx context.Context, userID string, order domain.LimitOrder) (*domain.SettlementResult, error)
	History(ctx context.Context, userID string) ([]domain.TransactionRecord, error)
}

// EventPublisher publishes domain events. Implementations must be safe for concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}

// SnapshotCache keeps the last good price data outside the process so a restart can warm up from it.
type SnapshotCache interface {
	SaveMarketSnapshot(ctx context.Context, snapshot *domain.MarketSnapshot) error
	LoadMarketSnapshot(ctx context.Context) (*domain.MarketSnapshot, error)
	SavePriceTable(ctx context.Context, table domain.PriceTable) error
	LoadPriceTable(ctx context.Context) (domain.PriceTable, error)
}

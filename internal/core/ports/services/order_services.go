package services

import (
	"context"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/dto"
)

// OrderWriterSvc submits orders to the settlement backend
type OrderWriterSvc interface {
	Buy(ctx context.Context, userID string, req dto.BuyOrderRequest) (*domain.SettlementResult, error)
	Sell(ctx context.Context, userID string, req dto.SellOrderRequest) (*domain.SettlementResult, error)
	Transfer(ctx context.Context, userID string, req dto.TransferOrderRequest) (*domain.SettlementResult, error)
	Limit(ctx context.Context, userID string, req dto.LimitOrderRequest) (*domain.SettlementResult, error)
}

// OrderReaderSvc reads settlement history
type OrderReaderSvc interface {
	// ListHistory returns the user's settlement history, newest first, one page at a time.
	ListHistory(ctx context.Context, userID string, params dto.ListOrderHistoryParams) (*dto.ListOrderHistoryResponse, error)
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderWriterSvc
	OrderReaderSvc
}

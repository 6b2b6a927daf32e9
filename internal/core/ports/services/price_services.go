package services

import (
	"context"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/dto"
)

// PriceReaderSvc defines read operations for prices
type PriceReaderSvc interface {
	// GetPrice resolves the price of one base unit in quote. Returns apperrors.ErrUnknownPrice
	// when no source covers the pair.
	GetPrice(ctx context.Context, base, quote string) (*domain.Price, error)

	// GetMarketSnapshot returns the last good market snapshot. Returns apperrors.ErrNotFound
	// before the first successful fetch.
	GetMarketSnapshot(ctx context.Context) (*domain.MarketSnapshot, error)
}

// PriceWriterSvc defines write operations for the internal price table
type PriceWriterSvc interface {
	// UpsertPriceEntry stores a price table entry and makes it visible to resolution immediately.
	UpsertPriceEntry(ctx context.Context, req dto.UpsertPriceEntryRequest, userID string) error
}

// PriceSvcFacade combines all price-related service interfaces
type PriceSvcFacade interface {
	PriceReaderSvc
	PriceWriterSvc
}

// ConversionSvc applies linked amount edits on behalf of a client.
type ConversionSvc interface {
	// ApplyEdit applies one edit event to the posted state and returns the next state.
	ApplyEdit(ctx context.Context, req dto.ConversionPreviewRequest) (*domain.AmountState, error)
}

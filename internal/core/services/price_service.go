package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/crypto_wallet_app/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_app/internal/dto"
)

// PriceService resolves prices against the shared PriceStore and maintains the internal price table.
type PriceService struct {
	BaseService
	store     *PriceStore
	tableRepo portsrepo.PriceTableWriter
}

// NewPriceService creates a new PriceService.
func NewPriceService(store *PriceStore, tableRepo portsrepo.PriceTableWriter) *PriceService {
	return &PriceService{
		store:     store,
		tableRepo: tableRepo,
	}
}

var _ portssvc.PriceSvcFacade = (*PriceService)(nil)

func (s *PriceService) GetPrice(ctx context.Context, base, quote string) (*domain.Price, error) {
	baseCode, err := requireCurrency(base)
	if err != nil {
		return nil, err
	}
	quoteCode, err := requireCurrency(quote)
	if err != nil {
		return nil, err
	}

	price := s.store.Resolver().Resolve(baseCode, quoteCode)
	if !price.Known {
		s.LogDebug(ctx, "Price unknown",
			slog.String("base", string(baseCode)),
			slog.String("quote", string(quoteCode)))
		return nil, fmt.Errorf("%w: %s/%s", apperrors.ErrUnknownPrice, baseCode, quoteCode)
	}
	return &price, nil
}

func (s *PriceService) GetMarketSnapshot(ctx context.Context) (*domain.MarketSnapshot, error) {
	snapshot := s.store.Snapshot()
	if snapshot == nil {
		return nil, apperrors.NewNotFoundError("market data not available yet")
	}
	return snapshot, nil
}

func (s *PriceService) UpsertPriceEntry(ctx context.Context, req dto.UpsertPriceEntryRequest, userID string) error {
	key, err := normalizePriceKey(req.Key)
	if err != nil {
		return err
	}
	if !domain.AmountInBounds(req.Price) {
		return apperrors.NewValidationError("price is out of range")
	}
	if !req.Price.IsPositive() {
		return apperrors.NewValidationError("price must be positive")
	}

	if err := s.tableRepo.SavePriceEntry(ctx, key, req.Price, userID); err != nil {
		s.LogError(ctx, err, "Failed to save price entry", slog.String("key", key))
		return fmt.Errorf("failed to save price entry: %w", err)
	}
	s.store.PutTableEntry(key, req.Price)

	s.LogInfo(ctx, "Price entry stored",
		slog.String("key", key),
		slog.String("price", req.Price.String()),
		slog.String("user_id", userID))
	return nil
}

// normalizePriceKey accepts "<CODE>" or "<BASE>_<QUOTE>" over supported codes.
func normalizePriceKey(raw string) (string, error) {
	parts := strings.Split(strings.TrimSpace(raw), "_")
	switch len(parts) {
	case 1:
		code, err := requireCurrency(parts[0])
		if err != nil {
			return "", err
		}
		return string(code), nil
	case 2:
		base, err := requireCurrency(parts[0])
		if err != nil {
			return "", err
		}
		quote, err := requireCurrency(parts[1])
		if err != nil {
			return "", err
		}
		if base == quote {
			return "", apperrors.NewValidationError("price key must name two different currencies")
		}
		return domain.PairKey(base, quote), nil
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf("invalid price key %q", raw))
	}
}

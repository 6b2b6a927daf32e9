package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/crypto_wallet_app/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/core/engine"
	portssvc "github.com/SscSPs/crypto_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_app/internal/dto"
)

// ConversionService runs the amount synchronizer for clients that keep their form state remotely.
type ConversionService struct {
	BaseService
	store *PriceStore
}

// NewConversionService creates a new ConversionService.
func NewConversionService(store *PriceStore) *ConversionService {
	return &ConversionService{store: store}
}

var _ portssvc.ConversionSvc = (*ConversionService)(nil)

func (s *ConversionService) ApplyEdit(ctx context.Context, req dto.ConversionPreviewRequest) (*domain.AmountState, error) {
	var state domain.AmountState
	if req.State == nil {
		if req.Base == "" || req.Quote == "" {
			return nil, apperrors.NewValidationError("base and quote are required when no state is given")
		}
		base, err := requireCurrency(req.Base)
		if err != nil {
			return nil, err
		}
		quote, err := requireCurrency(req.Quote)
		if err != nil {
			return nil, err
		}
		state = domain.NewAmountState(base, quote)
	} else {
		state = *req.State
		if _, err := requireCurrency(string(state.Base)); err != nil {
			return nil, err
		}
		if _, err := requireCurrency(string(state.Quote)); err != nil {
			return nil, err
		}
		if !domain.AmountInBounds(state.BaseAmount.Value) || !domain.AmountInBounds(state.QuoteAmount.Value) {
			return nil, apperrors.NewValidationError("state amounts are out of range")
		}
		state.Base = domain.NormalizeCurrencyCode(string(state.Base))
		state.Quote = domain.NormalizeCurrencyCode(string(state.Quote))
	}

	sync := engine.NewAmountSynchronizer(s.store.Resolver())
	switch req.Event {
	case dto.ConversionEventBase:
		state = sync.OnBaseAmountChanged(state, req.Text)
	case dto.ConversionEventQuote:
		state = sync.OnQuoteAmountChanged(state, req.Text)
	case dto.ConversionEventPair:
		base, quote := state.Base, state.Quote
		var err error
		if req.Base != "" {
			if base, err = requireCurrency(req.Base); err != nil {
				return nil, err
			}
		}
		if req.Quote != "" {
			if quote, err = requireCurrency(req.Quote); err != nil {
				return nil, err
			}
		}
		state = sync.OnPairChanged(state, base, quote)
	case dto.ConversionEventReconcile:
		state = sync.Reconcile(state)
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown conversion event %q", req.Event))
	}

	s.LogDebug(ctx, "Conversion edit applied",
		slog.String("event", string(req.Event)),
		slog.String("base", string(state.Base)),
		slog.String("quote", string(state.Quote)))
	return &state, nil
}

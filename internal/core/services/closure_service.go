package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/crypto_wallet_app/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/core/engine"
	"github.com/SscSPs/crypto_wallet_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/crypto_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_app/internal/dto"
)

type closureService struct {
	BaseService
	walletRepo portsrepo.WalletRepositoryFacade
	store      *PriceStore
	settlement gateways.SettlementClient
}

// ClosureOption is a functional option for configuring the closure service
type ClosureOption func(*closureService)

// WithClosureEventPublisher publishes wallet.closed and order.submitted events.
func WithClosureEventPublisher(publisher gateways.EventPublisher) ClosureOption {
	return func(s *closureService) {
		s.Publisher = publisher
	}
}

// NewClosureService creates a new closure service.
func NewClosureService(
	walletRepo portsrepo.WalletRepositoryFacade,
	store *PriceStore,
	settlement gateways.SettlementClient,
	options ...ClosureOption,
) portssvc.ClosureSvc {
	svc := &closureService{
		walletRepo: walletRepo,
		store:      store,
		settlement: settlement,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ClosureSvc = (*closureService)(nil)

func (s *closureService) PlanClosure(ctx context.Context, userID, walletID, destinationWalletID string) (*domain.OrderIntent, error) {
	source, err := loadOwnedWallet(ctx, &s.BaseService, s.walletRepo, userID, walletID)
	if err != nil {
		return nil, err
	}
	if source.IsEmpty() {
		return nil, nil
	}
	destination, err := s.loadDestination(ctx, userID, source, destinationWalletID)
	if err != nil {
		return nil, err
	}
	intent := engine.PlanClosure(*source, *destination, s.store.Resolver())
	return &intent, nil
}

func (s *closureService) CloseWallet(ctx context.Context, userID, walletID string, req dto.CloseWalletRequest) (*domain.ClosureResult, error) {
	logger := s.GetLogger(ctx).With(slog.String("wallet_id", walletID))

	source, err := loadOwnedWallet(ctx, &s.BaseService, s.walletRepo, userID, walletID)
	if err != nil {
		return nil, err
	}

	wallets, err := s.walletRepo.FindWalletsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wallets for closure", slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	if len(wallets) <= 1 {
		return nil, apperrors.NewConflictError("cannot close the only wallet")
	}

	result := &domain.ClosureResult{WalletID: walletID}

	if source.IsEmpty() {
		if err := s.walletRepo.DeleteEmptyWallet(ctx, walletID); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				logger.Warn("Wallet was credited before it could be deleted")
				return nil, err
			}
			logger.Error("Failed to delete empty wallet", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to delete wallet: %w", err)
		}
		result.Deleted = true
		s.publishClosed(ctx, userID, source, result)
		logger.Info("Wallet closed", slog.Bool("settled", false))
		return result, nil
	}

	destination, err := s.loadDestination(ctx, userID, source, req.DestinationWalletID)
	if err != nil {
		return nil, err
	}

	intent := engine.PlanClosure(*source, *destination, s.store.Resolver())
	if intent.IsIncompatible() {
		logger.Warn("Closure rejected", slog.String("reason", string(intent.Reason)))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrIncompatibleClosure, intent.Reason)
	}
	if !intent.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("balance is too small to settle into the destination")
	}
	result.Intent = &intent

	settled, err := s.submit(ctx, userID, intent)
	if err != nil {
		logger.Error("Closure settlement failed, wallet kept", slog.String("error", err.Error()))
		return nil, err
	}
	result.Settlement = settled

	// Value has moved; deletion and events must not be cut short by the caller going away.
	settledCtx := context.WithoutCancel(ctx)
	if err := s.walletRepo.DeleteWallet(settledCtx, walletID); err != nil {
		logger.Error("Failed to delete wallet after closure", slog.String("error", err.Error()))
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "wallet settled but could not be deleted", err)
	}
	result.Deleted = true

	s.PublishEvent(settledCtx, domain.Event{
		Type:     domain.EventOrderSubmitted,
		UserID:   userID,
		WalletID: walletID,
		Intent:   &intent,
		Currency: intent.Base,
		Amount:   intent.Amount,
		Message:  settled.Message,
	})
	s.publishClosed(settledCtx, userID, source, result)

	logger.Info("Wallet closed", slog.Bool("settled", true))
	return result, nil
}

func (s *closureService) publishClosed(ctx context.Context, userID string, source *domain.Wallet, result *domain.ClosureResult) {
	s.PublishEvent(ctx, domain.Event{
		Type:     domain.EventWalletClosed,
		UserID:   userID,
		WalletID: source.WalletID,
		Intent:   result.Intent,
		Currency: source.CurrencyCode,
		Amount:   source.Balance,
	})
}

func (s *closureService) loadDestination(ctx context.Context, userID string, source *domain.Wallet, destinationWalletID string) (*domain.Wallet, error) {
	if destinationWalletID == "" {
		return nil, apperrors.NewValidationError("destinationWalletID is required for a wallet with a balance")
	}
	if destinationWalletID == source.WalletID {
		return nil, apperrors.NewValidationError("destination must differ from the wallet being closed")
	}
	destination, err := loadOwnedWallet(ctx, &s.BaseService, s.walletRepo, userID, destinationWalletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("destination wallet %s not found", destinationWalletID))
		}
		return nil, err
	}
	return destination, nil
}

func (s *closureService) submit(ctx context.Context, userID string, intent domain.OrderIntent) (*domain.SettlementResult, error) {
	switch intent.Kind {
	case domain.IntentSell:
		return s.settlement.Sell(ctx, userID, intent.Base, intent.Amount, intent.Quote)
	case domain.IntentBuy:
		return s.settlement.Buy(ctx, userID, intent.Base, intent.Amount, intent.Quote)
	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrIncompatibleClosure, intent.Reason)
	}
}

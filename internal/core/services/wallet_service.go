package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/crypto_wallet_app/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/crypto_wallet_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type walletService struct {
	BaseService
	walletRepo portsrepo.WalletRepositoryFacade
}

// NewWalletService creates a new wallet service.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade) portssvc.WalletSvcFacade {
	return &walletService{walletRepo: walletRepo}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.FindWalletsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wallets", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	if wallets == nil {
		wallets = []domain.Wallet{}
	}
	return wallets, nil
}

func (s *walletService) GetWallet(ctx context.Context, userID, walletID string) (*domain.Wallet, error) {
	return loadOwnedWallet(ctx, &s.BaseService, s.walletRepo, userID, walletID)
}

func (s *walletService) CreateWallet(ctx context.Context, userID string, req dto.CreateWalletRequest) (*domain.Wallet, bool, error) {
	code, err := requireCurrency(req.CurrencyCode)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.walletRepo.FindWalletByUserAndCurrency(ctx, userID, code)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up wallet", slog.String("currency", string(code)))
		return nil, false, fmt.Errorf("failed to look up wallet: %w", err)
	}

	now := s.now()
	wallet := domain.Wallet{
		WalletID:     uuid.NewString(),
		UserID:       userID,
		CurrencyCode: code,
		Balance:      decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a race with a concurrent create for the same currency.
			existing, findErr := s.walletRepo.FindWalletByUserAndCurrency(ctx, userID, code)
			if findErr == nil {
				return existing, false, nil
			}
			return nil, false, fmt.Errorf("failed to load concurrently created wallet: %w", findErr)
		}
		s.LogError(ctx, err, "Failed to save wallet", slog.String("currency", string(code)))
		return nil, false, fmt.Errorf("failed to save wallet: %w", err)
	}

	s.LogInfo(ctx, "Wallet created",
		slog.String("wallet_id", wallet.WalletID),
		slog.String("currency", string(code)))
	return &wallet, true, nil
}

func (s *walletService) DeleteWallet(ctx context.Context, userID, walletID string) error {
	wallet, err := loadOwnedWallet(ctx, &s.BaseService, s.walletRepo, userID, walletID)
	if err != nil {
		return err
	}
	if !wallet.IsEmpty() {
		return apperrors.NewConflictError("wallet still holds a balance and must be closed instead")
	}
	if err := s.walletRepo.DeleteEmptyWallet(ctx, walletID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete wallet", slog.String("wallet_id", walletID))
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	s.LogInfo(ctx, "Wallet deleted", slog.String("wallet_id", walletID))
	return nil
}

// loadOwnedWallet fetches a wallet and checks it belongs to userID.
func loadOwnedWallet(ctx context.Context, base *BaseService, repo portsrepo.WalletReader, userID, walletID string) (*domain.Wallet, error) {
	wallet, err := repo.FindWalletByID(ctx, walletID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			base.LogError(ctx, err, "Failed to load wallet", slog.String("wallet_id", walletID))
		}
		return nil, err
	}
	if err := base.AuthorizeWallet(ctx, userID, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

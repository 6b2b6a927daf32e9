package repositories

import (
	"context"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
)

// WalletReader defines read operations for the wallet directory
type WalletReader interface {
	// FindWalletsByUser lists every wallet owned by the user, oldest first.
	FindWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error)

	// FindWalletByID retrieves a wallet by its ID. Returns apperrors.ErrNotFound when absent.
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	// FindWalletByUserAndCurrency retrieves the user's wallet for a currency.
	FindWalletByUserAndCurrency(ctx context.Context, userID string, code domain.CurrencyCode) (*domain.Wallet, error)
}

// WalletWriter defines write operations for the wallet directory
type WalletWriter interface {
	// SaveWallet persists a new wallet. Returns apperrors.ErrDuplicate if the user already holds the currency.
	SaveWallet(ctx context.Context, wallet domain.Wallet) error

	// DeleteWallet removes a wallet. Returns apperrors.ErrNotFound when absent.
	DeleteWallet(ctx context.Context, walletID string) error

	// DeleteEmptyWallet removes a wallet only while its balance is zero.
	// Returns apperrors.ErrConflict when it holds a balance and apperrors.ErrNotFound when absent.
	DeleteEmptyWallet(ctx context.Context, walletID string) error
}

// WalletRepositoryFacade combines all wallet-related repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}

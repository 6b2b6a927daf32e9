package services

import (
	"context"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/dto"
)

// WalletReaderSvc defines read operations for wallets
type WalletReaderSvc interface {
	// ListWallets lists the user's wallets.
	ListWallets(ctx context.Context, userID string) ([]domain.Wallet, error)

	// GetWallet retrieves one of the user's wallets. Wallets of other users are reported as forbidden.
	GetWallet(ctx context.Context, userID, walletID string) (*domain.Wallet, error)
}

// WalletWriterSvc defines write operations for wallets
type WalletWriterSvc interface {
	// CreateWallet opens a wallet for a currency. If the user already holds one it is
	// returned unchanged and created is false.
	CreateWallet(ctx context.Context, userID string, req dto.CreateWalletRequest) (wallet *domain.Wallet, created bool, err error)

	// DeleteWallet removes an empty wallet. Non-empty wallets must go through closure.
	DeleteWallet(ctx context.Context, userID, walletID string) error
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}

// ClosureSvc plans and executes wallet closures.
type ClosureSvc interface {
	// PlanClosure returns the order that would settle walletID into destinationWalletID.
	// The returned intent may be incompatible; nothing is submitted.
	PlanClosure(ctx context.Context, userID, walletID, destinationWalletID string) (*domain.OrderIntent, error)

	// CloseWallet settles the wallet into the destination if needed and deletes it.
	// The wallet is only deleted after a successful settlement.
	CloseWallet(ctx context.Context, userID, walletID string, req dto.CloseWalletRequest) (*domain.ClosureResult, error)
}

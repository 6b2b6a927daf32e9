package mapping

import (
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/models"
)

// ToModelWallet converts a domain Wallet to a model Wallet
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:     d.WalletID,
		UserID:       d.UserID,
		CurrencyCode: string(d.CurrencyCode),
		Balance:      d.Balance,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWallet converts a model Wallet to a domain Wallet
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:     m.WalletID,
		UserID:       m.UserID,
		CurrencyCode: domain.NormalizeCurrencyCode(m.CurrencyCode),
		Balance:      m.Balance,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWallets converts a slice of model Wallets
func ToDomainWallets(ms []models.Wallet) []domain.Wallet {
	wallets := make([]domain.Wallet, len(ms))
	for i, m := range ms {
		wallets[i] = ToDomainWallet(m)
	}
	return wallets
}

package domain

import "github.com/shopspring/decimal"

// Wallet holds a balance of a single currency for a single user.
// Balances are only changed by the settlement backend.
type Wallet struct {
	WalletID     string          `json:"walletID"` // Primary Key (UUID)
	UserID       string          `json:"userID"`   // Owner
	CurrencyCode CurrencyCode    `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"` // Non-negative
	AuditFields
}

// IsEmpty reports whether the wallet can be deleted without settlement.
func (w Wallet) IsEmpty() bool {
	return !w.Balance.IsPositive()
}

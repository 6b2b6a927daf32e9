package models

import (
	"github.com/shopspring/decimal"
)

// Wallet is a row of the wallets table. A user holds at most one wallet per currency.
type Wallet struct {
	WalletID     string          `db:"wallet_id"`
	UserID       string          `db:"user_id"`
	CurrencyCode string          `db:"currency_code"`
	Balance      decimal.Decimal `db:"balance"` // numeric(19,8)
	AuditFields
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceEntry is a row of the price_entries table backing the internal price table.
type PriceEntry struct {
	PriceKey  string          `db:"price_key"` // "BTC" or "BTC_EUR"
	Price     decimal.Decimal `db:"price"`
	UpdatedAt time.Time       `db:"updated_at"`
	UpdatedBy string          `db:"updated_by"`
}

package repositories

import (
	"context"

	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceTableReader defines read operations for the internal price feed
type PriceTableReader interface {
	// LoadPriceTable reads every stored entry into a PriceTable.
	LoadPriceTable(ctx context.Context) (domain.PriceTable, error)
}

// PriceTableWriter defines write operations for the internal price feed
type PriceTableWriter interface {
	// SavePriceEntry inserts or replaces the entry stored under key.
	SavePriceEntry(ctx context.Context, key string, price decimal.Decimal, updatedBy string) error
}

// PriceTableRepositoryFacade combines all price table repository interfaces
type PriceTableRepositoryFacade interface {
	PriceTableReader
	PriceTableWriter
}

package mapping

import (
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	"github.com/SscSPs/crypto_wallet_app/internal/models"
)

// ToDomainPriceTable folds price entry rows into a PriceTable. Keys are stored upper-case.
func ToDomainPriceTable(entries []models.PriceEntry) domain.PriceTable {
	table := make(domain.PriceTable, len(entries))
	for _, e := range entries {
		table[e.PriceKey] = e.Price
	}
	return table
}

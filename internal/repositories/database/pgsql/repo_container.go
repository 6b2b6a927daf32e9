package pgsql

import (
	portsrepo "github.com/SscSPs/crypto_wallet_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every PostgreSQL repository onto the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WalletRepo:     newPgxWalletRepository(dbPool),
		PriceTableRepo: newPgxPriceTableRepository(dbPool),
	}
}

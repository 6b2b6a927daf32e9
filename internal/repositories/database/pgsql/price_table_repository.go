package pgsql

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/crypto_wallet_app/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/crypto_wallet_app/internal/models"
	"github.com/SscSPs/crypto_wallet_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxPriceTableRepository stores the internal price table on PostgreSQL.
type PgxPriceTableRepository struct {
	BaseRepository
}

// newPgxPriceTableRepository creates a new repository for price table entries.
func newPgxPriceTableRepository(pool *pgxpool.Pool) portsrepo.PriceTableRepositoryFacade {
	return &PgxPriceTableRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PriceTableRepositoryFacade = (*PgxPriceTableRepository)(nil)

// LoadPriceTable reads every entry.
func (r *PgxPriceTableRepository) LoadPriceTable(ctx context.Context) (domain.PriceTable, error) {
	rows, err := r.Pool.Query(ctx, `SELECT price_key, price, updated_at, updated_by FROM price_entries;`)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to load price table", err)
	}
	defer rows.Close()

	var entries []models.PriceEntry
	for rows.Next() {
		var e models.PriceEntry
		if err := rows.Scan(&e.PriceKey, &e.Price, &e.UpdatedAt, &e.UpdatedBy); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan price entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating price entries", err)
	}

	return mapping.ToDomainPriceTable(entries), nil
}

// SavePriceEntry inserts or updates the entry stored under key.
func (r *PgxPriceTableRepository) SavePriceEntry(ctx context.Context, key string, price decimal.Decimal, updatedBy string) error {
	key = strings.ToUpper(strings.TrimSpace(key))
	if !price.IsPositive() {
		return apperrors.NewValidationError("price must be positive")
	}

	err := r.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO price_entries (price_key, price, updated_at, updated_by)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (price_key) DO UPDATE SET
				price = EXCLUDED.price,
				updated_at = EXCLUDED.updated_at,
				updated_by = EXCLUDED.updated_by;`,
			key, price, time.Now().UTC(), updatedBy,
		)
		return err
	})
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save price entry", err)
	}
	return nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/crypto_wallet_app/internal/apperrors"
	"github.com/SscSPs/crypto_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/crypto_wallet_app/internal/models"
	"github.com/SscSPs/crypto_wallet_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const walletColumns = `wallet_id, user_id, currency_code, balance, created_at, created_by, last_updated_at, last_updated_by`

// PgxWalletRepository implements the wallet directory on PostgreSQL.
type PgxWalletRepository struct {
	BaseRepository
}

// newPgxWalletRepository creates a new repository for wallet data.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

func scanWallet(row pgx.Row) (models.Wallet, error) {
	var m models.Wallet
	err := row.Scan(
		&m.WalletID,
		&m.UserID,
		&m.CurrencyCode,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindWalletsByUser lists the user's wallets, oldest first.
func (r *PgxWalletRepository) FindWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 ORDER BY created_at, wallet_id;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list wallets", err)
	}
	defer rows.Close()

	var modelWallets []models.Wallet
	for rows.Next() {
		m, err := scanWallet(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan wallet", err)
		}
		modelWallets = append(modelWallets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating wallets", err)
	}

	return mapping.ToDomainWallets(modelWallets), nil
}

// FindWalletByID retrieves a wallet by its ID.
func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1;`

	m, err := scanWallet(r.Pool.QueryRow(ctx, query, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("wallet with ID " + walletID + " not found")
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find wallet", err)
	}

	w := mapping.ToDomainWallet(m)
	return &w, nil
}

// FindWalletByUserAndCurrency retrieves the user's wallet for a currency.
func (r *PgxWalletRepository) FindWalletByUserAndCurrency(ctx context.Context, userID string, code domain.CurrencyCode) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 AND currency_code = $2;`

	m, err := scanWallet(r.Pool.QueryRow(ctx, query, userID, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no %s wallet for user %s", code, userID))
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find wallet", err)
	}

	w := mapping.ToDomainWallet(m)
	return &w, nil
}

// SaveWallet inserts a new wallet.
func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	m := mapping.ToModelWallet(wallet)

	query := `
		INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WalletID,
		m.UserID,
		m.CurrencyCode,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) { // (user_id, currency_code)
			return fmt.Errorf("%w: user %s already holds a %s wallet", apperrors.ErrDuplicate, m.UserID, m.CurrencyCode)
		}
		return fmt.Errorf("failed to save wallet %s: %w", m.WalletID, err)
	}
	return nil
}

// DeleteWallet removes a wallet.
func (r *PgxWalletRepository) DeleteWallet(ctx context.Context, walletID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM wallets WHERE wallet_id = $1;`, walletID)
	if err != nil {
		return fmt.Errorf("failed to delete wallet %s: %w", walletID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("wallet with ID " + walletID + " not found")
	}
	return nil
}

// DeleteEmptyWallet removes a wallet whose balance is zero at the moment of deletion.
func (r *PgxWalletRepository) DeleteEmptyWallet(ctx context.Context, walletID string) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `DELETE FROM wallets WHERE wallet_id = $1 AND balance = 0;`, walletID)
		if err != nil {
			return fmt.Errorf("failed to delete wallet %s: %w", walletID, err)
		}
		if cmdTag.RowsAffected() == 1 {
			return nil
		}

		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM wallets WHERE wallet_id = $1);`, walletID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check wallet %s: %w", walletID, err)
		}
		if exists {
			return apperrors.NewConflictError("wallet " + walletID + " holds a balance and must be closed instead")
		}
		return apperrors.NewNotFoundError("wallet with ID " + walletID + " not found")
	})
}

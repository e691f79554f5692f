package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ConnectAccountRepo implements ports.ConnectAccountRepository.
type ConnectAccountRepo struct {
	pool Pool
}

// NewConnectAccountRepo creates a new ConnectAccountRepo.
func NewConnectAccountRepo(pool Pool) *ConnectAccountRepo {
	return &ConnectAccountRepo{pool: pool}
}

// GetByUserID fetches a seller's payout account.
func (r *ConnectAccountRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.ConnectAccount, error) {
	query := `SELECT user_id, external_account_ref, charges_enabled, updated_at
		FROM connect_accounts WHERE user_id = $1`

	a := &domain.ConnectAccount{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&a.UserID, &a.AccountRef, &a.ChargesEnabled, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get connect account by user: %w", err)
	}
	return a, nil
}

// Upsert inserts or replaces a seller's payout account row.
func (r *ConnectAccountRepo) Upsert(ctx context.Context, a *domain.ConnectAccount) error {
	query := `INSERT INTO connect_accounts (user_id, external_account_ref, charges_enabled, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET external_account_ref = EXCLUDED.external_account_ref,
			charges_enabled = EXCLUDED.charges_enabled,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query, a.UserID, a.AccountRef, a.ChargesEnabled, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert connect account: %w", err)
	}
	return nil
}

// SetChargesEnabledByAccountRef writes the platform-reported charges flag,
// keyed on the external account reference. A miss is not an error: account
// events can arrive for accounts this instance never persisted.
func (r *ConnectAccountRepo) SetChargesEnabledByAccountRef(ctx context.Context, accountRef string, enabled bool) error {
	query := `UPDATE connect_accounts SET charges_enabled = $1, updated_at = NOW() WHERE external_account_ref = $2`
	if _, err := r.pool.Exec(ctx, query, enabled, accountRef); err != nil {
		return fmt.Errorf("update connect account charges flag: %w", err)
	}
	return nil
}

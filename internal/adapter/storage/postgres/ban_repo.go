package postgres

import (
	"context"
	"fmt"

	"marketplace-backend/internal/core/domain"
)

// BanRepo implements ports.BanRepository.
type BanRepo struct {
	pool Pool
}

// NewBanRepo creates a new BanRepo.
func NewBanRepo(pool Pool) *BanRepo {
	return &BanRepo{pool: pool}
}

// Create appends a ban audit row.
func (r *BanRepo) Create(ctx context.Context, b *domain.Ban) error {
	query := `INSERT INTO bans (id, user_id, reason, banned_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, b.ID, b.UserID, b.Reason, b.BannedBy, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert ban: %w", err)
	}
	return nil
}

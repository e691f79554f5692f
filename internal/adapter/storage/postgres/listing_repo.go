package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-backend/internal/core/domain"
	"marketplace-backend/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListingRepo implements ports.ListingRepository.
type ListingRepo struct {
	pool Pool
}

// NewListingRepo creates a new ListingRepo.
func NewListingRepo(pool Pool) *ListingRepo {
	return &ListingRepo{pool: pool}
}

// GetByID fetches a listing by its UUID.
func (r *ListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	query := `SELECT id, seller_id, title, description, price_amount, currency, images, status, created_at
		FROM listings WHERE id = $1`

	l := &domain.Listing{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.SellerID, &l.Title, &l.Description,
		&l.PriceAmount, &l.Currency, &l.Images, &l.Status, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing by id: %w", err)
	}
	return l, nil
}

// UpdateStatus sets a listing's status.
func (r *ListingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus) error {
	query := `UPDATE listings SET status = $1 WHERE id = $2`
	if _, err := r.pool.Exec(ctx, query, status, id); err != nil {
		return fmt.Errorf("update listing status: %w", err)
	}
	return nil
}

// CountByStatus aggregates listings per status.
func (r *ListingRepo) CountByStatus(ctx context.Context) (*ports.ListingCounts, error) {
	query := `SELECT
		COUNT(*) FILTER (WHERE status = 'active'),
		COUNT(*) FILTER (WHERE status = 'sold'),
		COUNT(*) FILTER (WHERE status = 'hidden')
		FROM listings`

	counts := &ports.ListingCounts{}
	if err := r.pool.QueryRow(ctx, query).Scan(&counts.Active, &counts.Sold, &counts.Hidden); err != nil {
		return nil, fmt.Errorf("count listings by status: %w", err)
	}
	return counts, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileRepo implements ports.ProfileRepository.
type ProfileRepo struct {
	pool Pool
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(pool Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// EnsureExists inserts the profile with the default role if it is missing,
// then returns the current row. Concurrent first requests for the same
// identity race harmlessly on the conflict clause.
func (r *ProfileRepo) EnsureExists(ctx context.Context, id uuid.UUID, email string) (*domain.Profile, error) {
	insert := `INSERT INTO profiles (id, email, role, created_at)
		VALUES ($1, $2, 'user', NOW())
		ON CONFLICT (id) DO NOTHING`
	if _, err := r.pool.Exec(ctx, insert, id, email); err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID fetches a profile by its UUID.
func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT id, email, role, created_at FROM profiles WHERE id = $1`

	p := &domain.Profile{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Email, &p.Role, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile by id: %w", err)
	}
	return p, nil
}

// UpdateRole sets a profile's role.
func (r *ProfileRepo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	query := `UPDATE profiles SET role = $1 WHERE id = $2`
	tag, err := r.pool.Exec(ctx, query, role, id)
	if err != nil {
		return fmt.Errorf("update profile role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update profile role: no profile with id %s", id)
	}
	return nil
}

// AdminExists reports whether any admin profile exists.
func (r *ProfileRepo) AdminExists(ctx context.Context) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM profiles WHERE role = 'admin')`

	var exists bool
	if err := r.pool.QueryRow(ctx, query).Scan(&exists); err != nil {
		return false, fmt.Errorf("admin exists check: %w", err)
	}
	return exists, nil
}

// Count returns the total number of profiles.
func (r *ProfileRepo) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM profiles`

	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return count, nil
}

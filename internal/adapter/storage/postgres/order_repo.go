package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-backend/internal/core/domain"
	"marketplace-backend/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create inserts a new order.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (id, listing_id, buyer_id, amount, currency, payment_ref, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		o.ID, o.ListingID, o.BuyerID, o.Amount,
		o.Currency, o.PaymentRef, o.Status, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByPaymentRef fetches an order by its payment-intent reference.
func (r *OrderRepo) GetByPaymentRef(ctx context.Context, paymentRef string) (*domain.Order, error) {
	query := `SELECT id, listing_id, buyer_id, amount, currency, payment_ref, status, created_at
		FROM orders WHERE payment_ref = $1`

	o := &domain.Order{}
	err := r.pool.QueryRow(ctx, query, paymentRef).Scan(
		&o.ID, &o.ListingID, &o.BuyerID, &o.Amount,
		&o.Currency, &o.PaymentRef, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by payment_ref: %w", err)
	}
	return o, nil
}

// UpdateStatusByPaymentRef sets the order status keyed on the payment-intent
// reference and reports how many rows matched.
func (r *OrderRepo) UpdateStatusByPaymentRef(ctx context.Context, paymentRef string, status domain.OrderStatus) (int64, error) {
	query := `UPDATE orders SET status = $1 WHERE payment_ref = $2`
	tag, err := r.pool.Exec(ctx, query, status, paymentRef)
	if err != nil {
		return 0, fmt.Errorf("update order status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// SalesStats sums paid orders, optionally restricted to those created at or
// after since.
func (r *OrderRepo) SalesStats(ctx context.Context, since *time.Time) (*ports.SalesStats, error) {
	query := `SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM orders WHERE status IN ('paid', 'shipped')`
	args := []any{}
	if since != nil {
		query += ` AND created_at >= $1`
		args = append(args, *since)
	}

	stats := &ports.SalesStats{}
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&stats.TotalAmount, &stats.OrderCount); err != nil {
		return nil, fmt.Errorf("sales stats: %w", err)
	}
	return stats, nil
}

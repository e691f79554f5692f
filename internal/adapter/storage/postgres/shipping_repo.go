package postgres

import (
	"context"
	"fmt"

	"marketplace-backend/internal/core/domain"
)

// ShippingAddressRepo implements ports.ShippingAddressRepository.
type ShippingAddressRepo struct {
	pool Pool
}

// NewShippingAddressRepo creates a new ShippingAddressRepo.
func NewShippingAddressRepo(pool Pool) *ShippingAddressRepo {
	return &ShippingAddressRepo{pool: pool}
}

// Create inserts a shipping address for an order.
func (r *ShippingAddressRepo) Create(ctx context.Context, a *domain.ShippingAddress) error {
	query := `INSERT INTO shipping_addresses (id, order_id, buyer_id, name, line1, line2, postal_code, city, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.OrderID, a.BuyerID, a.Name,
		a.Line1, a.Line2, a.PostalCode, a.City, a.Country,
	)
	if err != nil {
		return fmt.Errorf("insert shipping address: %w", err)
	}
	return nil
}

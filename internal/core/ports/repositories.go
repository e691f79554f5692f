package ports

import (
	"context"
	"time"

	"marketplace-backend/internal/core/domain"

	"github.com/google/uuid"
)

// ProfileRepository defines persistence operations for marketplace profiles.
type ProfileRepository interface {
	// EnsureExists inserts a profile with the default role on first
	// authentication and returns the (existing or new) row.
	EnsureExists(ctx context.Context, id uuid.UUID, email string) (*domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error
	// AdminExists reports whether any profile holds the admin role. Evaluated
	// per call so bootstrap stays correct across stateless instances.
	AdminExists(ctx context.Context) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// ListingRepository defines persistence operations for listings.
type ListingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus) error
	CountByStatus(ctx context.Context) (*ListingCounts, error)
}

// ListingCounts aggregates listings per status for the admin metrics action.
type ListingCounts struct {
	Active int64
	Sold   int64
	Hidden int64
}

// OrderRepository defines persistence operations for orders. Settlement
// updates are keyed on the payment-intent reference, never on a
// client-supplied order id.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByPaymentRef(ctx context.Context, paymentRef string) (*domain.Order, error)
	// UpdateStatusByPaymentRef sets the status of the order matching the
	// payment reference and returns the number of rows affected.
	UpdateStatusByPaymentRef(ctx context.Context, paymentRef string, status domain.OrderStatus) (int64, error)
	// SalesStats aggregates paid orders, optionally limited to those created
	// at or after since.
	SalesStats(ctx context.Context, since *time.Time) (*SalesStats, error)
}

// SalesStats aggregates paid-order volume for the admin metrics action.
type SalesStats struct {
	TotalAmount int64
	OrderCount  int64
}

// ShippingAddressRepository defines persistence for order shipping addresses.
type ShippingAddressRepository interface {
	Create(ctx context.Context, addr *domain.ShippingAddress) error
}

// ConnectAccountRepository defines persistence for seller payout accounts.
type ConnectAccountRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.ConnectAccount, error)
	Upsert(ctx context.Context, account *domain.ConnectAccount) error
	// SetChargesEnabledByAccountRef writes the platform-reported flag and
	// refreshes the row timestamp, keyed on the external account reference.
	SetChargesEnabledByAccountRef(ctx context.Context, accountRef string, enabled bool) error
}

// BanRepository defines persistence for the append-only ban audit log.
type BanRepository interface {
	Create(ctx context.Context, ban *domain.Ban) error
}

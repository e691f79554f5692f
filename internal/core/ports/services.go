package ports

import (
	"context"

	"marketplace-backend/internal/core/domain"

	"github.com/google/uuid"
)

// --- Service Ports (Business Logic) ---

// CheckoutService orchestrates the purchase workflow: eligibility checks,
// payment-intent creation, order and shipping-address persistence.
type CheckoutService interface {
	InitiateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
}

// ShippingDetails holds validated shipping input for checkout.
type ShippingDetails struct {
	Name       string
	Line1      string
	Line2      *string
	PostalCode string
	City       string
	Country    string
}

// CheckoutRequest holds validated input for checkout processing.
type CheckoutRequest struct {
	BuyerID   uuid.UUID
	ListingID uuid.UUID
	Shipping  ShippingDetails
}

// CheckoutResult is what the buyer's payment UI needs to confirm payment.
type CheckoutResult struct {
	ClientSecret string
	OrderID      uuid.UUID
}

// SettlementService reconciles verified payment-platform events into local
// order/listing/payout-account state. Must be safe to invoke more than once
// for the same event.
type SettlementService interface {
	HandleEvent(ctx context.Context, event *domain.PlatformEvent) error
}

// ConnectService manages seller payout-account onboarding.
type ConnectService interface {
	// EnsureOnboardingLink lazily creates the seller's payout account and
	// always returns a fresh one-time onboarding link.
	EnsureOnboardingLink(ctx context.Context, userID uuid.UUID, email string, returnURL string) (*OnboardingLink, error)
	// RefreshAccountStatus re-reads the account from the payment platform and
	// writes the reported charges-enabled flag through.
	RefreshAccountStatus(ctx context.Context, userID uuid.UUID) (*AccountStatus, error)
}

// OnboardingLink is the result of EnsureOnboardingLink.
type OnboardingLink struct {
	URL       string
	AccountID string
}

// AccountStatus is the result of RefreshAccountStatus.
type AccountStatus struct {
	ChargesEnabled bool
	AccountStatus  string // "completed" or "incomplete"
}

// AdminService performs privileged mutations. Role gating happens at the
// handler; BootstrapAdmin is the one action open to non-admins.
type AdminService interface {
	BanUser(ctx context.Context, adminID, userID uuid.UUID, reason string) error
	UnbanUser(ctx context.Context, adminID, userID uuid.UUID) error
	HideListing(ctx context.Context, listingID uuid.UUID) error
	UnhideListing(ctx context.Context, listingID uuid.UUID) error
	Metrics(ctx context.Context) (*MarketplaceMetrics, error)
	BootstrapAdmin(ctx context.Context, callerID uuid.UUID, secret string) error
}

// MarketplaceMetrics is the admin metrics payload.
type MarketplaceMetrics struct {
	TotalSales        int64 `json:"total_sales"`
	TotalOrders       int64 `json:"total_orders"`
	RecentSales30Days int64 `json:"recent_sales_30_days"`
	ActiveListings    int64 `json:"active_listings"`
	SoldListings      int64 `json:"sold_listings"`
	TotalUsers        int64 `json:"total_users"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of a purchase attempt.
type OrderStatus string

const (
	OrderStatusRequiresPayment OrderStatus = "requires_payment"
	OrderStatusPaid            OrderStatus = "paid"
	OrderStatusShipped         OrderStatus = "shipped"
	OrderStatusRefunded        OrderStatus = "refunded"
)

// Order is one buyer's attempt to purchase one listing. Amount and currency
// are copied from the listing at creation time, never from client input.
// Settlement mutates status keyed on PaymentRef only.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	ListingID  uuid.UUID   `json:"listing_id"`
	BuyerID    uuid.UUID   `json:"buyer_id"`
	Amount     int64       `json:"amount"`
	Currency   string      `json:"currency"`
	PaymentRef string      `json:"payment_ref"` // Payment-platform payment-intent id
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

// IsSettled returns true once a successful payment has been reconciled.
func (o *Order) IsSettled() bool {
	return o.Status == OrderStatusPaid || o.Status == OrderStatusShipped
}

package domain

import "github.com/google/uuid"

// ShippingAddress is created atomically with its order during checkout and
// immutable afterward.
type ShippingAddress struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	BuyerID    uuid.UUID `json:"buyer_id"`
	Name       string    `json:"name"`
	Line1      string    `json:"line1"`
	Line2      *string   `json:"line2,omitempty"`
	PostalCode string    `json:"postal_code"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
}

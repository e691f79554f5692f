package domain

import (
	"time"

	"github.com/google/uuid"
)

// ListingStatus represents the lifecycle state of a sale offer.
type ListingStatus string

const (
	ListingStatusActive ListingStatus = "active"
	ListingStatusSold   ListingStatus = "sold"
	ListingStatusHidden ListingStatus = "hidden"
)

// Listing is a seller-owned sale offer. Only the Settlement flow moves a
// listing to sold; only admins move it between hidden and active.
type Listing struct {
	ID          uuid.UUID     `json:"id"`
	SellerID    uuid.UUID     `json:"seller_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	PriceAmount int64         `json:"price_amount"` // Minor currency unit (øre/cents)
	Currency    string        `json:"currency"`
	Images      []string      `json:"images"`
	Status      ListingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// IsPurchasable returns true if the listing can be checked out.
func (l *Listing) IsPurchasable() bool {
	return l.Status == ListingStatusActive
}

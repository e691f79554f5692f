package dto

// ShippingAddressRequest is the shipping block of a checkout request.
type ShippingAddressRequest struct {
	Name       string  `json:"name" binding:"required,max=200"`
	Line1      string  `json:"line1" binding:"required,max=200"`
	Line2      *string `json:"line2,omitempty" binding:"omitempty,max=200"`
	PostalCode string  `json:"postal_code" binding:"required,max=16"`
	City       string  `json:"city" binding:"required,max=100"`
	Country    string  `json:"country" binding:"required,len=2"`
}

// CheckoutRequest is the request body for initiating a purchase. No price
// fields: amount and currency always come from the listing row.
type CheckoutRequest struct {
	ListingID       string                 `json:"listing_id" binding:"required,uuid"`
	ShippingAddress ShippingAddressRequest `json:"shipping_address" binding:"required"`
}

// CheckoutResponse is the response body for a successful checkout initiation.
type CheckoutResponse struct {
	ClientSecret string `json:"client_secret"`
	OrderID      string `json:"order_id"`
}

// ConnectLinkRequest is the request body for requesting an onboarding link.
type ConnectLinkRequest struct {
	ReturnURL string `json:"return_url,omitempty" binding:"omitempty,safe_url"`
}

// ConnectLinkResponse is the response body carrying a fresh onboarding link.
type ConnectLinkResponse struct {
	URL       string `json:"url"`
	AccountID string `json:"account_id"`
}

// AccountStatusResponse is the response body for a payout account status
// check.
type AccountStatusResponse struct {
	ChargesEnabled bool   `json:"charges_enabled"`
	AccountStatus  string `json:"account_status"` // "completed" or "incomplete"
}

// AdminActionRequest multiplexes all privileged operations on the action tag.
type AdminActionRequest struct {
	Action          string `json:"action" binding:"required"`
	UserID          string `json:"user_id,omitempty" binding:"omitempty,uuid"`
	ListingID       string `json:"listing_id,omitempty" binding:"omitempty,uuid"`
	Reason          string `json:"reason,omitempty" binding:"omitempty,max=500"`
	BootstrapSecret string `json:"bootstrap_secret,omitempty"`
}

// Admin action tags.
const (
	ActionBanUser        = "ban_user"
	ActionUnbanUser      = "unban_user"
	ActionHideListing    = "hide_listing"
	ActionUnhideListing  = "unhide_listing"
	ActionMetrics        = "metrics"
	ActionBootstrapAdmin = "bootstrap_admin"
)

// AckResponse acknowledges an action with no payload of its own.
type AckResponse struct {
	Success bool `json:"success"`
}

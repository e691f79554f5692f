package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConnectAccount links a seller to their payment-platform payout account.
// ChargesEnabled is written only from platform-confirmed state (webhook
// account_updated events or an explicit status refresh); the application
// never sets it to true on its own.
type ConnectAccount struct {
	UserID         uuid.UUID `json:"user_id"`
	AccountRef     string    `json:"account_ref"` // External payment-platform account id
	ChargesEnabled bool      `json:"charges_enabled"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CanReceiveFunds returns true if the seller completed onboarding.
func (a *ConnectAccount) CanReceiveFunds() bool {
	return a.ChargesEnabled
}

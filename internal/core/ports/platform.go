package ports

import (
	"context"
	"time"

	"marketplace-backend/internal/core/domain"
)

// CreateIntentParams holds the inputs for a payment-intent creation, routed
// to the seller's payout account.
type CreateIntentParams struct {
	Amount             int64  // Minor currency unit, copied from the listing
	Currency           string // ISO 4217 code
	DestinationAccount string // Seller's external payout account reference
	ApplicationFee     int64  // 0 means no platform fee
	Metadata           map[string]string
}

// PaymentIntent is the subset of the platform's intent object checkout needs.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PlatformAccount is the subset of the platform's account object the payout
// manager needs.
type PlatformAccount struct {
	ID               string
	ChargesEnabled   bool
	DetailsSubmitted bool
}

// PaymentPlatform is the outbound contract with the hosted payments provider.
type PaymentPlatform interface {
	CreatePaymentIntent(ctx context.Context, params CreateIntentParams) (*PaymentIntent, error)
	CreateAccount(ctx context.Context, email string) (*PlatformAccount, error)
	CreateAccountLink(ctx context.Context, accountID, returnURL string) (string, error)
	GetAccount(ctx context.Context, accountID string) (*PlatformAccount, error)
}

// WebhookVerifier authenticates a raw webhook delivery against the shared
// signing secret and converts it into a tagged PlatformEvent. Verification
// precedes any parsing of untrusted content.
type WebhookVerifier interface {
	VerifyAndParse(payload []byte, signatureHeader string) (*domain.PlatformEvent, error)
}

// EventDedupStore remembers processed webhook event ids as a replay
// fast-path. Settlement correctness never depends on it; every settlement
// mutation is an idempotent set.
type EventDedupStore interface {
	// CheckAndSet atomically records the event id. Returns true if the event
	// is new, false if it was already processed.
	CheckAndSet(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
}

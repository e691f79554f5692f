package stripeclient

import (
	"encoding/json"
	"fmt"

	"marketplace-backend/internal/core/domain"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Verifier implements ports.WebhookVerifier for Stripe webhook deliveries.
// Signature verification happens before any of the payload is parsed.
type Verifier struct {
	signingSecret string
}

// NewVerifier creates a webhook verifier for the given endpoint signing
// secret.
func NewVerifier(signingSecret string) *Verifier {
	return &Verifier{signingSecret: signingSecret}
}

// VerifyAndParse checks the Stripe-Signature header against the raw payload
// and maps the event into the tagged domain form.
func (v *Verifier) VerifyAndParse(payload []byte, signatureHeader string) (*domain.PlatformEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, v.signingSecret)
	if err != nil {
		return nil, fmt.Errorf("verify webhook signature: %w", err)
	}

	out := &domain.PlatformEvent{ID: event.ID, Kind: mapEventKind(event.Type)}

	switch out.Kind {
	case domain.EventPaymentSucceeded, domain.EventPaymentFailed, domain.EventPaymentCanceled:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("parse payment intent event: %w", err)
		}
		out.PaymentIntent = &domain.PaymentIntentData{ID: pi.ID, Metadata: pi.Metadata}
	case domain.EventAccountUpdated:
		var acct stripe.Account
		if err := json.Unmarshal(event.Data.Raw, &acct); err != nil {
			return nil, fmt.Errorf("parse account event: %w", err)
		}
		out.Account = &domain.AccountData{ID: acct.ID, ChargesEnabled: acct.ChargesEnabled}
	}

	return out, nil
}

func mapEventKind(t stripe.EventType) domain.EventKind {
	switch t {
	case "payment_intent.succeeded":
		return domain.EventPaymentSucceeded
	case "payment_intent.payment_failed":
		return domain.EventPaymentFailed
	case "payment_intent.canceled":
		return domain.EventPaymentCanceled
	case "account.updated":
		return domain.EventAccountUpdated
	default:
		return domain.EventUnknown
	}
}

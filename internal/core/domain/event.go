package domain

// EventKind tags the webhook event variants the system models. Anything else
// is EventUnknown and acknowledged without mutation, so the payment platform
// does not retry event kinds we do not handle.
type EventKind string

const (
	EventPaymentSucceeded EventKind = "payment_succeeded"
	EventPaymentFailed    EventKind = "payment_failed"
	EventPaymentCanceled  EventKind = "payment_canceled"
	EventAccountUpdated   EventKind = "account_updated"
	EventUnknown          EventKind = "unknown"
)

// PaymentIntentData is the payment-intent subset settlement depends on.
type PaymentIntentData struct {
	ID       string            // Payment-intent reference; orders are matched on this, never on metadata ids
	Metadata map[string]string // listing_id, buyer_id, seller_id tags set at checkout
}

// AccountData is the payout-account subset settlement depends on.
type AccountData struct {
	ID             string
	ChargesEnabled bool
}

// PlatformEvent is the validated, signature-verified form of a payment
// platform webhook delivery. Exactly one of PaymentIntent/Account is set,
// depending on Kind.
type PlatformEvent struct {
	ID            string
	Kind          EventKind
	PaymentIntent *PaymentIntentData
	Account       *AccountData
}

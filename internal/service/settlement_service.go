package service

import (
	"context"
	"time"

	"marketplace-backend/internal/core/domain"
	"marketplace-backend/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const eventDedupTTL = 72 * time.Hour

// SettlementServiceImpl implements ports.SettlementService. Every mutation it
// performs is an idempotent set keyed on platform identifiers, so replayed
// deliveries converge on the same state. A failed step is logged and the
// event is still acknowledged; the platform's retries and the idempotent
// writes make the next delivery catch up.
type SettlementServiceImpl struct {
	orderRepo   ports.OrderRepository
	listingRepo ports.ListingRepository
	connectRepo ports.ConnectAccountRepository
	dedup       ports.EventDedupStore
	log         zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	orderRepo ports.OrderRepository,
	listingRepo ports.ListingRepository,
	connectRepo ports.ConnectAccountRepository,
	dedup ports.EventDedupStore,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		orderRepo:   orderRepo,
		listingRepo: listingRepo,
		connectRepo: connectRepo,
		dedup:       dedup,
		log:         log,
	}
}

// HandleEvent reconciles one verified platform event into local state.
func (s *SettlementServiceImpl) HandleEvent(ctx context.Context, event *domain.PlatformEvent) error {
	// Redis replay fast-path. Best-effort: on store failure we process
	// anyway, the mutations below are safe to repeat.
	fresh, err := s.dedup.CheckAndSet(ctx, event.ID, eventDedupTTL)
	if err != nil {
		s.log.Warn().Err(err).Str("event_id", event.ID).Msg("event dedup check failed, processing anyway")
	} else if !fresh {
		s.log.Info().Str("event_id", event.ID).Msg("duplicate event delivery skipped")
		return nil
	}

	switch event.Kind {
	case domain.EventPaymentSucceeded:
		s.settlePayment(ctx, event)
	case domain.EventPaymentFailed, domain.EventPaymentCanceled:
		s.releasePayment(ctx, event)
	case domain.EventAccountUpdated:
		s.applyAccountUpdate(ctx, event)
	default:
		s.log.Debug().Str("event_id", event.ID).Str("kind", string(event.Kind)).Msg("unhandled event kind acknowledged")
	}
	return nil
}

// settlePayment marks the order paid and its listing sold. An intent missing
// any of the metadata tags set at checkout is a malformed event: logged,
// acked, nothing mutated. The two updates are independent; a failed order
// write does not stop the listing write.
func (s *SettlementServiceImpl) settlePayment(ctx context.Context, event *domain.PlatformEvent) {
	pi := event.PaymentIntent
	listingID, ok := s.checkoutTags(pi)
	if !ok {
		return
	}

	rows, err := s.orderRepo.UpdateStatusByPaymentRef(ctx, pi.ID, domain.OrderStatusPaid)
	switch {
	case err != nil:
		s.log.Error().Err(err).Str("payment_ref", pi.ID).Msg("order settlement update failed")
	case rows == 0:
		s.log.Warn().Str("payment_ref", pi.ID).Msg("settled payment matched no order")
	default:
		s.log.Info().
			Str("event_id", event.ID).
			Str("payment_ref", pi.ID).
			Int64("orders_updated", rows).
			Msg("order marked paid")
	}

	if err := s.listingRepo.UpdateStatus(ctx, listingID, domain.ListingStatusSold); err != nil {
		s.log.Error().Err(err).Str("listing_id", listingID.String()).Msg("listing sold update failed")
		return
	}
	s.log.Info().
		Str("event_id", event.ID).
		Str("listing_id", listingID.String()).
		Msg("listing marked sold")
}

// releasePayment reopens the order so the buyer can retry payment. Applied
// unconditionally: a failure delivery arriving after a success for the same
// intent is not a state the platform produces.
func (s *SettlementServiceImpl) releasePayment(ctx context.Context, event *domain.PlatformEvent) {
	pi := event.PaymentIntent
	rows, err := s.orderRepo.UpdateStatusByPaymentRef(ctx, pi.ID, domain.OrderStatusRequiresPayment)
	if err != nil {
		s.log.Error().Err(err).Str("payment_ref", pi.ID).Msg("order release update failed")
		return
	}
	s.log.Info().
		Str("event_id", event.ID).
		Str("payment_ref", pi.ID).
		Str("kind", string(event.Kind)).
		Int64("orders_updated", rows).
		Msg("order reopened for payment")
}

// applyAccountUpdate writes the platform-reported charges flag through.
func (s *SettlementServiceImpl) applyAccountUpdate(ctx context.Context, event *domain.PlatformEvent) {
	acct := event.Account
	if err := s.connectRepo.SetChargesEnabledByAccountRef(ctx, acct.ID, acct.ChargesEnabled); err != nil {
		s.log.Error().Err(err).Str("account_ref", acct.ID).Msg("payout account update failed")
		return
	}
	s.log.Info().
		Str("event_id", event.ID).
		Str("account_ref", acct.ID).
		Bool("charges_enabled", acct.ChargesEnabled).
		Msg("payout account updated")
}

// checkoutTags validates the metadata stamped onto the intent at checkout and
// returns the parsed listing id.
func (s *SettlementServiceImpl) checkoutTags(pi *domain.PaymentIntentData) (uuid.UUID, bool) {
	for _, key := range []string{"listing_id", "buyer_id", "seller_id"} {
		if pi.Metadata[key] == "" {
			s.log.Error().Str("payment_ref", pi.ID).Str("missing", key).Msg("payment intent missing checkout metadata")
			return uuid.Nil, false
		}
	}
	listingID, err := uuid.Parse(pi.Metadata["listing_id"])
	if err != nil {
		s.log.Error().Str("payment_ref", pi.ID).Str("listing_id", pi.Metadata["listing_id"]).Msg("malformed listing id in intent metadata")
		return uuid.Nil, false
	}
	return listingID, true
}

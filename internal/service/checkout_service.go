package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"marketplace-backend/internal/core/domain"
	"marketplace-backend/internal/core/ports"
	"marketplace-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CheckoutServiceImpl implements ports.CheckoutService.
type CheckoutServiceImpl struct {
	listingRepo  ports.ListingRepository
	orderRepo    ports.OrderRepository
	shippingRepo ports.ShippingAddressRepository
	connectRepo  ports.ConnectAccountRepository
	platform     ports.PaymentPlatform
	feePercent   float64
	log          zerolog.Logger
}

// NewCheckoutService creates a new CheckoutServiceImpl.
func NewCheckoutService(
	listingRepo ports.ListingRepository,
	orderRepo ports.OrderRepository,
	shippingRepo ports.ShippingAddressRepository,
	connectRepo ports.ConnectAccountRepository,
	platform ports.PaymentPlatform,
	feePercent float64,
	log zerolog.Logger,
) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		listingRepo:  listingRepo,
		orderRepo:    orderRepo,
		shippingRepo: shippingRepo,
		connectRepo:  connectRepo,
		platform:     platform,
		feePercent:   feePercent,
		log:          log,
	}
}

// InitiateCheckout runs the purchase workflow: eligibility checks, intent
// creation on the payment platform, then order and shipping persistence.
// Checks run in a fixed order so a request failing several of them always
// gets the same error.
func (s *CheckoutServiceImpl) InitiateCheckout(ctx context.Context, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
	listing, err := s.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load listing: %w", err))
	}
	// An inactive listing is reported the same as an absent one: the buyer's
	// view of it is stale either way.
	if listing == nil || !listing.IsPurchasable() {
		return nil, apperror.ErrNotFound("listing")
	}
	if listing.SellerID == req.BuyerID {
		return nil, apperror.ErrSelfPurchase()
	}

	sellerAccount, err := s.connectRepo.GetByUserID(ctx, listing.SellerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load seller account: %w", err))
	}
	if sellerAccount == nil || !sellerAccount.CanReceiveFunds() {
		return nil, apperror.ErrSellerNotOnboarded()
	}

	// Amount and currency are copied from the listing row. Client-supplied
	// price fields never reach this path.
	intent, err := s.platform.CreatePaymentIntent(ctx, ports.CreateIntentParams{
		Amount:             listing.PriceAmount,
		Currency:           listing.Currency,
		DestinationAccount: sellerAccount.AccountRef,
		ApplicationFee:     applicationFee(listing.PriceAmount, s.feePercent),
		Metadata: map[string]string{
			"listing_id": listing.ID.String(),
			"buyer_id":   req.BuyerID.String(),
			"seller_id":  listing.SellerID.String(),
		},
	})
	if err != nil {
		s.log.Error().Err(err).
			Str("listing_id", listing.ID.String()).
			Msg("payment intent creation failed")
		return nil, apperror.InternalError(fmt.Errorf("create payment intent: %w", err))
	}
	s.log.Info().
		Str("payment_ref", intent.ID).
		Str("listing_id", listing.ID.String()).
		Msg("payment intent created")

	now := time.Now().UTC()
	order := &domain.Order{
		ID:         uuid.New(),
		ListingID:  listing.ID,
		BuyerID:    req.BuyerID,
		Amount:     listing.PriceAmount,
		Currency:   listing.Currency,
		PaymentRef: intent.ID,
		Status:     domain.OrderStatusRequiresPayment,
		CreatedAt:  now,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.log.Error().Err(err).
			Str("payment_ref", intent.ID).
			Msg("order persistence failed after intent creation")
		return nil, apperror.InternalError(fmt.Errorf("create order: %w", err))
	}
	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("payment_ref", intent.ID).
		Msg("order created")

	addr := &domain.ShippingAddress{
		ID:         uuid.New(),
		OrderID:    order.ID,
		BuyerID:    req.BuyerID,
		Name:       req.Shipping.Name,
		Line1:      req.Shipping.Line1,
		Line2:      req.Shipping.Line2,
		PostalCode: req.Shipping.PostalCode,
		City:       req.Shipping.City,
		Country:    req.Shipping.Country,
	}
	if err := s.shippingRepo.Create(ctx, addr); err != nil {
		s.log.Error().Err(err).
			Str("order_id", order.ID.String()).
			Msg("shipping address persistence failed")
		return nil, apperror.InternalError(fmt.Errorf("create shipping address: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("buyer_id", req.BuyerID.String()).
		Int64("amount", order.Amount).
		Str("currency", order.Currency).
		Msg("checkout initiated")

	return &ports.CheckoutResult{
		ClientSecret: intent.ClientSecret,
		OrderID:      order.ID,
	}, nil
}

// applicationFee converts a percentage into a minor-unit fee, rounded half up.
func applicationFee(amount int64, percent float64) int64 {
	if percent <= 0 {
		return 0
	}
	return int64(math.Round(float64(amount) * percent / 100))
}

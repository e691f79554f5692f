package handler

import (
	"marketplace-backend/internal/adapter/http/dto"
	"marketplace-backend/internal/adapter/http/middleware"
	"marketplace-backend/internal/core/ports"
	"marketplace-backend/pkg/apperror"
	"marketplace-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckoutHandler handles the purchase endpoint.
type CheckoutHandler struct {
	checkoutSvc ports.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutSvc ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc}
}

// InitiateCheckout handles POST /api/v1/checkout.
func (h *CheckoutHandler) InitiateCheckout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	// Binding already enforced the uuid format.
	listingID := uuid.MustParse(req.ListingID)

	result, err := h.checkoutSvc.InitiateCheckout(c.Request.Context(), ports.CheckoutRequest{
		BuyerID:   middleware.MustUserID(c),
		ListingID: listingID,
		Shipping: ports.ShippingDetails{
			Name:       req.ShippingAddress.Name,
			Line1:      req.ShippingAddress.Line1,
			Line2:      req.ShippingAddress.Line2,
			PostalCode: req.ShippingAddress.PostalCode,
			City:       req.ShippingAddress.City,
			Country:    req.ShippingAddress.Country,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CheckoutResponse{
		ClientSecret: result.ClientSecret,
		OrderID:      result.OrderID.String(),
	})
}

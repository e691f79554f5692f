package handler

import (
	"io"

	"marketplace-backend/internal/core/ports"
	"marketplace-backend/pkg/apperror"
	"marketplace-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SignatureHeader carries the payment platform's delivery signature.
const SignatureHeader = "Stripe-Signature"

// WebhookHandler receives payment-platform event deliveries.
type WebhookHandler struct {
	verifier      ports.WebhookVerifier
	settlementSvc ports.SettlementService
	log           zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(verifier ports.WebhookVerifier, settlementSvc ports.SettlementService, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, settlementSvc: settlementSvc, log: log}
}

// HandleEvent handles POST /api/v1/webhooks/stripe. The raw body is verified
// against the signature header before anything in it is trusted. A verified
// event is always acknowledged with {"received": true} so the platform stops
// retrying; reconciliation failures are logged and converge on a later
// delivery.
func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	signature := c.GetHeader(SignatureHeader)
	if signature == "" {
		response.Error(c, apperror.ErrMissingSignature())
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	event, err := h.verifier.VerifyAndParse(payload, signature)
	if err != nil {
		h.log.Warn().Err(err).Msg("webhook signature rejected")
		response.Error(c, apperror.ErrInvalidSignature(err))
		return
	}

	if err := h.settlementSvc.HandleEvent(c.Request.Context(), event); err != nil {
		h.log.Error().Err(err).Str("event_id", event.ID).Msg("settlement failed")
		response.Error(c, apperror.InternalError(err))
		return
	}

	response.OK(c, gin.H{"received": true})
}

package handler

import (
	"marketplace-backend/internal/adapter/http/dto"
	"marketplace-backend/internal/adapter/http/middleware"
	"marketplace-backend/internal/core/ports"
	"marketplace-backend/pkg/apperror"
	"marketplace-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// ConnectHandler handles seller payout-account onboarding endpoints.
type ConnectHandler struct {
	connectSvc ports.ConnectService
	siteURL    string
}

// NewConnectHandler creates a new ConnectHandler. siteURL is the web client
// base URL used to build the default onboarding return destination.
func NewConnectHandler(connectSvc ports.ConnectService, siteURL string) *ConnectHandler {
	return &ConnectHandler{connectSvc: connectSvc, siteURL: siteURL}
}

// CreateLink handles POST /api/v1/connect/link.
func (h *ConnectHandler) CreateLink(c *gin.Context) {
	var req dto.ConnectLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = h.siteURL + "/account"
	}

	link, err := h.connectSvc.EnsureOnboardingLink(
		c.Request.Context(),
		middleware.MustUserID(c),
		c.GetString(middleware.CtxEmail),
		returnURL,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ConnectLinkResponse{URL: link.URL, AccountID: link.AccountID})
}

// GetStatus handles GET /api/v1/connect/status.
func (h *ConnectHandler) GetStatus(c *gin.Context) {
	status, err := h.connectSvc.RefreshAccountStatus(c.Request.Context(), middleware.MustUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AccountStatusResponse{
		ChargesEnabled: status.ChargesEnabled,
		AccountStatus:  status.AccountStatus,
	})
}

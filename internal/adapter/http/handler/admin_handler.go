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

// AdminHandler multiplexes privileged operations on a single endpoint, keyed
// by the action tag.
type AdminHandler struct {
	adminSvc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// HandleAction handles POST /api/v1/admin. Every action except
// bootstrap_admin requires the caller to already hold the admin role;
// bootstrap_admin is open to any authenticated caller and gated inside the
// service on the shared secret and the no-admin-yet condition.
func (h *AdminHandler) HandleAction(c *gin.Context) {
	var req dto.AdminActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	profile := middleware.MustProfile(c)
	ctx := c.Request.Context()

	if req.Action == dto.ActionBootstrapAdmin {
		if err := h.adminSvc.BootstrapAdmin(ctx, profile.ID, req.BootstrapSecret); err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, dto.AckResponse{Success: true})
		return
	}

	if !profile.IsAdmin() {
		response.Error(c, apperror.ErrAdminRequired())
		return
	}

	switch req.Action {
	case dto.ActionBanUser:
		userID, ok := parseRequiredID(c, req.UserID, "user_id")
		if !ok {
			return
		}
		if err := h.adminSvc.BanUser(ctx, profile.ID, userID, req.Reason); err != nil {
			response.Error(c, err)
			return
		}
	case dto.ActionUnbanUser:
		userID, ok := parseRequiredID(c, req.UserID, "user_id")
		if !ok {
			return
		}
		if err := h.adminSvc.UnbanUser(ctx, profile.ID, userID); err != nil {
			response.Error(c, err)
			return
		}
	case dto.ActionHideListing:
		listingID, ok := parseRequiredID(c, req.ListingID, "listing_id")
		if !ok {
			return
		}
		if err := h.adminSvc.HideListing(ctx, listingID); err != nil {
			response.Error(c, err)
			return
		}
	case dto.ActionUnhideListing:
		listingID, ok := parseRequiredID(c, req.ListingID, "listing_id")
		if !ok {
			return
		}
		if err := h.adminSvc.UnhideListing(ctx, listingID); err != nil {
			response.Error(c, err)
			return
		}
	case dto.ActionMetrics:
		metrics, err := h.adminSvc.Metrics(ctx)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, metrics)
		return
	default:
		response.Error(c, apperror.Validation("unknown action: "+req.Action))
		return
	}

	response.OK(c, dto.AckResponse{Success: true})
}

// parseRequiredID enforces presence of an id the binding layer marked
// optional because other actions do not use it.
func parseRequiredID(c *gin.Context, raw, field string) (uuid.UUID, bool) {
	if raw == "" {
		response.Error(c, apperror.Validation(field+" is required for this action"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.Error(c, apperror.Validation(field+" is not a valid uuid"))
		return uuid.Nil, false
	}
	return id, true
}

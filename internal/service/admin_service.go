package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"marketplace-backend/internal/core/domain"
	"marketplace-backend/internal/core/ports"
	"marketplace-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const recentSalesWindow = 30 * 24 * time.Hour

// AdminServiceImpl implements ports.AdminService.
type AdminServiceImpl struct {
	profileRepo     ports.ProfileRepository
	listingRepo     ports.ListingRepository
	orderRepo       ports.OrderRepository
	banRepo         ports.BanRepository
	bootstrapSecret string
	log             zerolog.Logger
}

// NewAdminService creates a new AdminServiceImpl. An empty bootstrapSecret
// disables the bootstrap action entirely.
func NewAdminService(
	profileRepo ports.ProfileRepository,
	listingRepo ports.ListingRepository,
	orderRepo ports.OrderRepository,
	banRepo ports.BanRepository,
	bootstrapSecret string,
	log zerolog.Logger,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		profileRepo:     profileRepo,
		listingRepo:     listingRepo,
		orderRepo:       orderRepo,
		banRepo:         banRepo,
		bootstrapSecret: bootstrapSecret,
		log:             log,
	}
}

// BanUser flips the target's role to banned and appends an audit row. The
// audit row is best-effort: the role change is the enforcement.
func (s *AdminServiceImpl) BanUser(ctx context.Context, adminID, userID uuid.UUID, reason string) error {
	target, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load target profile: %w", err))
	}
	if target == nil {
		return apperror.ErrNotFound("user")
	}

	if err := s.profileRepo.UpdateRole(ctx, userID, domain.RoleBanned); err != nil {
		return apperror.InternalError(fmt.Errorf("ban user: %w", err))
	}

	ban := &domain.Ban{
		ID:        uuid.New(),
		UserID:    userID,
		Reason:    reason,
		BannedBy:  adminID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.banRepo.Create(ctx, ban); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("ban audit row failed")
	}

	s.log.Info().
		Str("admin_id", adminID.String()).
		Str("user_id", userID.String()).
		Str("reason", reason).
		Msg("user banned")
	return nil
}

// UnbanUser restores the target to the default role.
func (s *AdminServiceImpl) UnbanUser(ctx context.Context, adminID, userID uuid.UUID) error {
	target, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load target profile: %w", err))
	}
	if target == nil {
		return apperror.ErrNotFound("user")
	}

	if err := s.profileRepo.UpdateRole(ctx, userID, domain.RoleUser); err != nil {
		return apperror.InternalError(fmt.Errorf("unban user: %w", err))
	}

	s.log.Info().
		Str("admin_id", adminID.String()).
		Str("user_id", userID.String()).
		Msg("user unbanned")
	return nil
}

// HideListing removes a listing from sale without deleting it.
func (s *AdminServiceImpl) HideListing(ctx context.Context, listingID uuid.UUID) error {
	return s.setListingStatus(ctx, listingID, domain.ListingStatusHidden)
}

// UnhideListing returns a hidden listing to sale.
func (s *AdminServiceImpl) UnhideListing(ctx context.Context, listingID uuid.UUID) error {
	return s.setListingStatus(ctx, listingID, domain.ListingStatusActive)
}

func (s *AdminServiceImpl) setListingStatus(ctx context.Context, listingID uuid.UUID, status domain.ListingStatus) error {
	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load listing: %w", err))
	}
	if listing == nil {
		return apperror.ErrNotFound("listing")
	}

	if err := s.listingRepo.UpdateStatus(ctx, listingID, status); err != nil {
		return apperror.InternalError(fmt.Errorf("update listing status: %w", err))
	}

	s.log.Info().
		Str("listing_id", listingID.String()).
		Str("status", string(status)).
		Msg("listing status changed")
	return nil
}

// Metrics aggregates marketplace totals for the admin dashboard.
func (s *AdminServiceImpl) Metrics(ctx context.Context) (*ports.MarketplaceMetrics, error) {
	total, err := s.orderRepo.SalesStats(ctx, nil)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("total sales stats: %w", err))
	}

	since := time.Now().UTC().Add(-recentSalesWindow)
	recent, err := s.orderRepo.SalesStats(ctx, &since)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("recent sales stats: %w", err))
	}

	listings, err := s.listingRepo.CountByStatus(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("listing counts: %w", err))
	}

	users, err := s.profileRepo.Count(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("user count: %w", err))
	}

	return &ports.MarketplaceMetrics{
		TotalSales:        total.TotalAmount,
		TotalOrders:       total.OrderCount,
		RecentSales30Days: recent.TotalAmount,
		ActiveListings:    listings.Active,
		SoldListings:      listings.Sold,
		TotalUsers:        users,
	}, nil
}

// BootstrapAdmin promotes the caller to admin. Only valid while no admin
// exists, and only when the deployment configured a bootstrap secret. The
// admin existence check hits the database on every call so a second instance
// cannot bootstrap a second admin from a stale flag.
func (s *AdminServiceImpl) BootstrapAdmin(ctx context.Context, callerID uuid.UUID, secret string) error {
	if s.bootstrapSecret == "" {
		return apperror.ErrBootstrapRejected("bootstrap is not enabled")
	}

	exists, err := s.profileRepo.AdminExists(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("admin existence check: %w", err))
	}
	if exists {
		return apperror.ErrBootstrapRejected("an admin already exists")
	}

	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.bootstrapSecret)) != 1 {
		s.log.Warn().Str("caller_id", callerID.String()).Msg("bootstrap attempt with invalid secret")
		return apperror.ErrBootstrapRejected("invalid bootstrap secret")
	}

	if err := s.profileRepo.UpdateRole(ctx, callerID, domain.RoleAdmin); err != nil {
		return apperror.InternalError(fmt.Errorf("promote caller: %w", err))
	}

	s.log.Info().Str("caller_id", callerID.String()).Msg("first admin bootstrapped")
	return nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"marketplace-backend/internal/core/domain"
	"marketplace-backend/internal/core/ports"
	"marketplace-backend/internal/core/ports/mocks"
	"marketplace-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBootstrapSecret = "super-secret-bootstrap-key"

type adminTestDeps struct {
	svc         *AdminServiceImpl
	profileRepo *mocks.MockProfileRepository
	listingRepo *mocks.MockListingRepository
	orderRepo   *mocks.MockOrderRepository
	banRepo     *mocks.MockBanRepository
	ctrl        *gomock.Controller
}

func setupAdminService(t *testing.T) *adminTestDeps {
	ctrl := gomock.NewController(t)
	d := &adminTestDeps{
		profileRepo: mocks.NewMockProfileRepository(ctrl),
		listingRepo: mocks.NewMockListingRepository(ctrl),
		orderRepo:   mocks.NewMockOrderRepository(ctrl),
		banRepo:     mocks.NewMockBanRepository(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAdminService(
		d.profileRepo, d.listingRepo, d.orderRepo, d.banRepo,
		testBootstrapSecret, zerolog.Nop(),
	)
	return d
}

func TestAdminService_BanUser_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	adminID := uuid.New()
	userID := uuid.New()

	d.profileRepo.EXPECT().GetByID(ctx, userID).Return(&domain.Profile{ID: userID, Role: domain.RoleUser}, nil)
	d.profileRepo.EXPECT().UpdateRole(ctx, userID, domain.RoleBanned).Return(nil)
	d.banRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ban *domain.Ban) error {
			assert.Equal(t, userID, ban.UserID)
			assert.Equal(t, adminID, ban.BannedBy)
			assert.Equal(t, "spam listings", ban.Reason)
			return nil
		})

	require.NoError(t, d.svc.BanUser(ctx, adminID, userID, "spam listings"))
}

func TestAdminService_BanUser_AuditFailureNotFatal(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	d.profileRepo.EXPECT().GetByID(ctx, userID).Return(&domain.Profile{ID: userID, Role: domain.RoleUser}, nil)
	d.profileRepo.EXPECT().UpdateRole(ctx, userID, domain.RoleBanned).Return(nil)
	d.banRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

	require.NoError(t, d.svc.BanUser(ctx, uuid.New(), userID, "spam"))
}

func TestAdminService_BanUser_TargetNotFound(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	d.profileRepo.EXPECT().GetByID(ctx, userID).Return(nil, nil)

	err := d.svc.BanUser(ctx, uuid.New(), userID, "spam")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REQ_002", appErr.Code)
}

func TestAdminService_UnbanUser_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	d.profileRepo.EXPECT().GetByID(ctx, userID).Return(&domain.Profile{ID: userID, Role: domain.RoleBanned}, nil)
	d.profileRepo.EXPECT().UpdateRole(ctx, userID, domain.RoleUser).Return(nil)

	require.NoError(t, d.svc.UnbanUser(ctx, uuid.New(), userID))
}

func TestAdminService_HideListing(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	listingID := uuid.New()

	d.listingRepo.EXPECT().GetByID(ctx, listingID).Return(&domain.Listing{
		ID:     listingID,
		Status: domain.ListingStatusActive,
	}, nil)
	d.listingRepo.EXPECT().UpdateStatus(ctx, listingID, domain.ListingStatusHidden).Return(nil)

	require.NoError(t, d.svc.HideListing(ctx, listingID))
}

func TestAdminService_UnhideListing_NotFound(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	listingID := uuid.New()
	d.listingRepo.EXPECT().GetByID(ctx, listingID).Return(nil, nil)

	err := d.svc.UnhideListing(ctx, listingID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REQ_002", appErr.Code)
}

func TestAdminService_Metrics(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.orderRepo.EXPECT().SalesStats(ctx, nil).Return(&ports.SalesStats{TotalAmount: 900000, OrderCount: 6}, nil)
	d.orderRepo.EXPECT().SalesStats(ctx, gomock.Not(gomock.Nil())).Return(&ports.SalesStats{TotalAmount: 150000, OrderCount: 1}, nil)
	d.listingRepo.EXPECT().CountByStatus(ctx).Return(&ports.ListingCounts{Active: 10, Sold: 6, Hidden: 2}, nil)
	d.profileRepo.EXPECT().Count(ctx).Return(int64(42), nil)

	m, err := d.svc.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(900000), m.TotalSales)
	assert.Equal(t, int64(6), m.TotalOrders)
	assert.Equal(t, int64(150000), m.RecentSales30Days)
	assert.Equal(t, int64(10), m.ActiveListings)
	assert.Equal(t, int64(6), m.SoldListings)
	assert.Equal(t, int64(42), m.TotalUsers)
}

func TestAdminService_BootstrapAdmin_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	callerID := uuid.New()

	d.profileRepo.EXPECT().AdminExists(ctx).Return(false, nil)
	d.profileRepo.EXPECT().UpdateRole(ctx, callerID, domain.RoleAdmin).Return(nil)

	require.NoError(t, d.svc.BootstrapAdmin(ctx, callerID, testBootstrapSecret))
}

func TestAdminService_BootstrapAdmin_AdminAlreadyExists(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.profileRepo.EXPECT().AdminExists(ctx).Return(true, nil)

	err := d.svc.BootstrapAdmin(ctx, uuid.New(), testBootstrapSecret)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_002", appErr.Code)
}

func TestAdminService_BootstrapAdmin_WrongSecret(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.profileRepo.EXPECT().AdminExists(ctx).Return(false, nil)

	err := d.svc.BootstrapAdmin(ctx, uuid.New(), "wrong")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_002", appErr.Code)
}

func TestAdminService_BootstrapAdmin_Disabled(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()
	d.svc.bootstrapSecret = ""

	err := d.svc.BootstrapAdmin(context.Background(), uuid.New(), "anything")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_002", appErr.Code)
}

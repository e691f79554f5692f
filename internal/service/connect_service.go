package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-backend/internal/core/domain"
	"marketplace-backend/internal/core/ports"
	"marketplace-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ConnectServiceImpl implements ports.ConnectService.
type ConnectServiceImpl struct {
	connectRepo ports.ConnectAccountRepository
	platform    ports.PaymentPlatform
	log         zerolog.Logger
}

// NewConnectService creates a new ConnectServiceImpl.
func NewConnectService(
	connectRepo ports.ConnectAccountRepository,
	platform ports.PaymentPlatform,
	log zerolog.Logger,
) *ConnectServiceImpl {
	return &ConnectServiceImpl{
		connectRepo: connectRepo,
		platform:    platform,
		log:         log,
	}
}

// EnsureOnboardingLink creates the seller's payout account on first call and
// returns a fresh onboarding link. Links are single-use on the platform side,
// so one is minted per request.
func (s *ConnectServiceImpl) EnsureOnboardingLink(ctx context.Context, userID uuid.UUID, email, returnURL string) (*ports.OnboardingLink, error) {
	account, err := s.connectRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load payout account: %w", err))
	}

	if account == nil {
		created, err := s.platform.CreateAccount(ctx, email)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create platform account: %w", err))
		}
		account = &domain.ConnectAccount{
			UserID:         userID,
			AccountRef:     created.ID,
			ChargesEnabled: created.ChargesEnabled,
			UpdatedAt:      time.Now().UTC(),
		}
		if err := s.connectRepo.Upsert(ctx, account); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("save payout account: %w", err))
		}
		s.log.Info().
			Str("user_id", userID.String()).
			Str("account_ref", created.ID).
			Msg("payout account created")
	}

	url, err := s.platform.CreateAccountLink(ctx, account.AccountRef, returnURL)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create onboarding link: %w", err))
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("account_ref", account.AccountRef).
		Msg("onboarding link issued")

	return &ports.OnboardingLink{URL: url, AccountID: account.AccountRef}, nil
}

// RefreshAccountStatus re-reads the account from the platform, writes the
// charges flag through, and reports whether onboarding is complete.
func (s *ConnectServiceImpl) RefreshAccountStatus(ctx context.Context, userID uuid.UUID) (*ports.AccountStatus, error) {
	account, err := s.connectRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load payout account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("payout account")
	}

	remote, err := s.platform.GetAccount(ctx, account.AccountRef)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetch platform account: %w", err))
	}

	if err := s.connectRepo.SetChargesEnabledByAccountRef(ctx, account.AccountRef, remote.ChargesEnabled); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payout account: %w", err))
	}

	status := "incomplete"
	if remote.ChargesEnabled && remote.DetailsSubmitted {
		status = "completed"
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("account_ref", account.AccountRef).
		Str("status", status).
		Msg("payout account status refreshed")

	return &ports.AccountStatus{
		ChargesEnabled: remote.ChargesEnabled,
		AccountStatus:  status,
	}, nil
}

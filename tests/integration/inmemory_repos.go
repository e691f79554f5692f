package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"marketplace-backend/internal/core/domain"
	"marketplace-backend/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory Profile Repo ---

type inMemoryProfileRepo struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]*domain.Profile
}

func newInMemoryProfileRepo() *inMemoryProfileRepo {
	return &inMemoryProfileRepo{profiles: make(map[uuid.UUID]*domain.Profile)}
}

func (r *inMemoryProfileRepo) EnsureExists(ctx context.Context, id uuid.UUID, email string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		return p, nil
	}
	p := &domain.Profile{ID: id, Email: email, Role: domain.RoleUser, CreatedAt: time.Now()}
	r.profiles[id] = p
	return p, nil
}

func (r *inMemoryProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *inMemoryProfileRepo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return fmt.Errorf("profile not found")
	}
	p.Role = role
	return nil
}

func (r *inMemoryProfileRepo) AdminExists(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.profiles {
		if p.Role == domain.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryProfileRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.profiles)), nil
}

// --- In-Memory Listing Repo ---

type inMemoryListingRepo struct {
	mu       sync.RWMutex
	listings map[uuid.UUID]*domain.Listing
}

func newInMemoryListingRepo() *inMemoryListingRepo {
	return &inMemoryListingRepo{listings: make(map[uuid.UUID]*domain.Listing)}
}

func (r *inMemoryListingRepo) put(l *domain.Listing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[l.ID] = l
}

func (r *inMemoryListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.listings[id]
	if !ok {
		return nil, nil
	}
	copied := *l
	return &copied, nil
}

func (r *inMemoryListingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.listings[id]
	if !ok {
		return fmt.Errorf("listing not found")
	}
	l.Status = status
	return nil
}

func (r *inMemoryListingRepo) CountByStatus(ctx context.Context) (*ports.ListingCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := &ports.ListingCounts{}
	for _, l := range r.listings {
		switch l.Status {
		case domain.ListingStatusActive:
			counts.Active++
		case domain.ListingStatusSold:
			counts.Sold++
		case domain.ListingStatusHidden:
			counts.Hidden++
		}
	}
	return counts, nil
}

// --- In-Memory Order Repo ---

type inMemoryOrderRepo struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*domain.Order
}

func newInMemoryOrderRepo() *inMemoryOrderRepo {
	return &inMemoryOrderRepo{orders: make(map[uuid.UUID]*domain.Order)}
}

func (r *inMemoryOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = o
	return nil
}

func (r *inMemoryOrderRepo) GetByPaymentRef(ctx context.Context, paymentRef string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.PaymentRef == paymentRef {
			copied := *o
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryOrderRepo) UpdateStatusByPaymentRef(ctx context.Context, paymentRef string, status domain.OrderStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var affected int64
	for _, o := range r.orders {
		if o.PaymentRef == paymentRef {
			o.Status = status
			affected++
		}
	}
	return affected, nil
}

func (r *inMemoryOrderRepo) SalesStats(ctx context.Context, since *time.Time) (*ports.SalesStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &ports.SalesStats{}
	for _, o := range r.orders {
		if o.Status != domain.OrderStatusPaid && o.Status != domain.OrderStatusShipped {
			continue
		}
		if since != nil && o.CreatedAt.Before(*since) {
			continue
		}
		stats.TotalAmount += o.Amount
		stats.OrderCount++
	}
	return stats, nil
}

// --- In-Memory Shipping Address Repo ---

type inMemoryShippingRepo struct {
	mu        sync.RWMutex
	addresses map[uuid.UUID]*domain.ShippingAddress
}

func newInMemoryShippingRepo() *inMemoryShippingRepo {
	return &inMemoryShippingRepo{addresses: make(map[uuid.UUID]*domain.ShippingAddress)}
}

func (r *inMemoryShippingRepo) Create(ctx context.Context, a *domain.ShippingAddress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addresses[a.ID] = a
	return nil
}

// --- In-Memory Connect Account Repo ---

type inMemoryConnectRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.ConnectAccount
}

func newInMemoryConnectRepo() *inMemoryConnectRepo {
	return &inMemoryConnectRepo{accounts: make(map[uuid.UUID]*domain.ConnectAccount)}
}

func (r *inMemoryConnectRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.ConnectAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[userID]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *inMemoryConnectRepo) Upsert(ctx context.Context, a *domain.ConnectAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[a.UserID] = a
	return nil
}

func (r *inMemoryConnectRepo) SetChargesEnabledByAccountRef(ctx context.Context, accountRef string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.AccountRef == accountRef {
			a.ChargesEnabled = enabled
			a.UpdatedAt = time.Now()
		}
	}
	return nil
}

// --- In-Memory Ban Repo ---

type inMemoryBanRepo struct {
	mu   sync.RWMutex
	bans []*domain.Ban
}

func newInMemoryBanRepo() *inMemoryBanRepo {
	return &inMemoryBanRepo{}
}

func (r *inMemoryBanRepo) Create(ctx context.Context, b *domain.Ban) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bans = append(r.bans, b)
	return nil
}

// --- Fake Payment Platform ---

// fakePlatform stands in for the hosted payments provider. Created intents
// and accounts get deterministic sequential ids so tests can correlate them.
type fakePlatform struct {
	mu           sync.Mutex
	intentSeq    int
	accountSeq   int
	accounts     map[string]*ports.PlatformAccount
	lastIntent   *ports.CreateIntentParams
	createdLinks []string
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{accounts: make(map[string]*ports.PlatformAccount)}
}

func (p *fakePlatform) CreatePaymentIntent(ctx context.Context, params ports.CreateIntentParams) (*ports.PaymentIntent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.intentSeq++
	p.lastIntent = &params
	id := fmt.Sprintf("pi_test_%d", p.intentSeq)
	return &ports.PaymentIntent{ID: id, ClientSecret: id + "_secret"}, nil
}

func (p *fakePlatform) CreateAccount(ctx context.Context, email string) (*ports.PlatformAccount, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accountSeq++
	a := &ports.PlatformAccount{ID: fmt.Sprintf("acct_test_%d", p.accountSeq)}
	p.accounts[a.ID] = a
	return a, nil
}

func (p *fakePlatform) CreateAccountLink(ctx context.Context, accountID, returnURL string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	link := fmt.Sprintf("https://connect.example.com/setup/%s", accountID)
	p.createdLinks = append(p.createdLinks, link)
	return link, nil
}

func (p *fakePlatform) GetAccount(ctx context.Context, accountID string) (*ports.PlatformAccount, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	a, ok := p.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("no such account: %s", accountID)
	}
	copied := *a
	return &copied, nil
}

// completeOnboarding marks a platform account as fully onboarded, as if the
// seller finished the hosted flow.
func (p *fakePlatform) completeOnboarding(accountID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if a, ok := p.accounts[accountID]; ok {
		a.ChargesEnabled = true
		a.DetailsSubmitted = true
	}
}

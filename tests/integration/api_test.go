package integration

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "marketplace-backend/internal/adapter/http/handler"
	"marketplace-backend/internal/adapter/payment/stripeclient"
	redisStorage "marketplace-backend/internal/adapter/storage/redis"
	"marketplace-backend/internal/core/domain"
	"marketplace-backend/internal/core/ports"
	"marketplace-backend/internal/service"
	"marketplace-backend/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

const (
	jwtSecret       = "integration-jwt-secret"
	webhookSecret   = "whsec_integration_secret"
	bootstrapSecret = "integration-bootstrap-secret"
	siteURL         = "https://market.example.com"
)

// testApp builds the full application stack: real HTTP layer, middleware,
// handlers, services, Redis stores against miniredis, in-memory postgres
// repos, and a fake payment platform.

type testApp struct {
	server      *httptest.Server
	redis       *miniredis.Miniredis
	profileRepo *inMemoryProfileRepo
	listingRepo *inMemoryListingRepo
	orderRepo   *inMemoryOrderRepo
	connectRepo *inMemoryConnectRepo
	platform    *fakePlatform
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	// Redis stores
	dedupStore := redisStorage.NewEventDedupStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// In-memory repos
	profileRepo := newInMemoryProfileRepo()
	listingRepo := newInMemoryListingRepo()
	orderRepo := newInMemoryOrderRepo()
	shippingRepo := newInMemoryShippingRepo()
	connectRepo := newInMemoryConnectRepo()
	banRepo := newInMemoryBanRepo()

	platform := newFakePlatform()
	verifier := stripeclient.NewVerifier(webhookSecret)

	log := logger.New("debug", false)

	checkoutSvc := service.NewCheckoutService(listingRepo, orderRepo, shippingRepo, connectRepo, platform, 5.0, log)
	settlementSvc := service.NewSettlementService(orderRepo, listingRepo, connectRepo, dedupStore, log)
	connectSvc := service.NewConnectService(connectRepo, platform, log)
	adminSvc := service.NewAdminService(profileRepo, listingRepo, orderRepo, banRepo, bootstrapSecret, log)
	identityVerifier := service.NewJWTIdentityVerifier(jwtSecret)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		CheckoutSvc:      checkoutSvc,
		ConnectSvc:       connectSvc,
		SettlementSvc:    settlementSvc,
		AdminSvc:         adminSvc,
		WebhookVerifier:  verifier,
		IdentityVerifier: identityVerifier,
		ProfileRepo:      profileRepo,
		RateLimitStore:   rateLimitStore,
		HealthCheckers:   []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		SiteURL:          siteURL,
		Logger:           log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		server:      server,
		redis:       mr,
		profileRepo: profileRepo,
		listingRepo: listingRepo,
		orderRepo:   orderRepo,
		connectRepo: connectRepo,
		platform:    platform,
	}
}

// --- Helpers ---

func signToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

// seedSellerWithListing creates a fully onboarded seller and one active
// listing priced at 150000 minor units (1500.00 DKK).
func seedSellerWithListing(t *testing.T, app *testApp) (*domain.Profile, *domain.Listing) {
	t.Helper()
	seller, err := app.profileRepo.EnsureExists(context.Background(), uuid.New(), "seller@example.com")
	require.NoError(t, err)
	require.NoError(t, app.connectRepo.Upsert(context.Background(), &domain.ConnectAccount{
		UserID:         seller.ID,
		AccountRef:     "acct_seeded",
		ChargesEnabled: true,
	}))
	listing := &domain.Listing{
		ID:          uuid.New(),
		SellerID:    seller.ID,
		Title:       "Vintage road bike",
		PriceAmount: 150000,
		Currency:    "dkk",
		Status:      domain.ListingStatusActive,
		CreatedAt:   time.Now(),
	}
	app.listingRepo.put(listing)
	return seller, listing
}

func checkoutBody(listingID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"listing_id": listingID.String(),
		"shipping_address": map[string]string{
			"name":        "Jane Buyer",
			"line1":       "Vestergade 12",
			"postal_code": "8000",
			"city":        "Aarhus",
			"country":     "DK",
		},
	}
}

// signEvent builds a webhook delivery the way the payment platform signs
// them: HMAC-SHA256 over "<timestamp>.<payload>".
func signEvent(payload []byte) string {
	now := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	fmt.Fprintf(mac, "%d.%s", now, payload)
	return fmt.Sprintf("t=%d,v1=%s", now, hex.EncodeToString(mac.Sum(nil)))
}

// settledIntent renders the payment-intent object for a settlement event,
// tagged the way checkout stamps intents.
func settledIntent(listingID uuid.UUID) string {
	return fmt.Sprintf(
		`{"id":"pi_test_1","object":"payment_intent","metadata":{"listing_id":%q,"buyer_id":%q,"seller_id":%q}}`,
		listingID, uuid.New(), uuid.New(),
	)
}

func eventBody(eventID, eventType, dataObject string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":%q,"object":"event","api_version":%q,"type":%q,"data":{"object":%s}}`,
		eventID, stripe.APIVersion, eventType, dataObject,
	))
}

func postWebhook(t *testing.T, app *testApp, payload []byte, signature string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, app.server.URL+"/api/v1/webhooks/stripe", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_Checkout_Unauthenticated(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, http.MethodPost, app.server.URL+"/api/v1/checkout", "", checkoutBody(uuid.New()))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_Checkout_HappyPath(t *testing.T) {
	app := newTestApp(t)
	_, listing := seedSellerWithListing(t, app)

	buyerID := uuid.New()
	token := signToken(t, buyerID, "buyer@example.com")

	resp, body := doJSON(t, http.MethodPost, app.server.URL+"/api/v1/checkout", token, checkoutBody(listing.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pi_test_1_secret", body["client_secret"])
	assert.NotEmpty(t, body["order_id"])

	// Order persisted against the intent, priced from the listing row.
	order, err := app.orderRepo.GetByPaymentRef(context.Background(), "pi_test_1")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, listing.ID, order.ListingID)
	assert.Equal(t, buyerID, order.BuyerID)
	assert.Equal(t, int64(150000), order.Amount)
	assert.Equal(t, "dkk", order.Currency)
	assert.Equal(t, domain.OrderStatusRequiresPayment, order.Status)

	// Intent routed to the seller's payout account with the platform fee.
	require.NotNil(t, app.platform.lastIntent)
	assert.Equal(t, "acct_seeded", app.platform.lastIntent.DestinationAccount)
	assert.Equal(t, int64(7500), app.platform.lastIntent.ApplicationFee)
	assert.Equal(t, listing.ID.String(), app.platform.lastIntent.Metadata["listing_id"])
}

func TestIntegration_Checkout_SelfPurchase(t *testing.T) {
	app := newTestApp(t)
	seller, listing := seedSellerWithListing(t, app)

	token := signToken(t, seller.ID, "seller@example.com")

	resp, body := doJSON(t, http.MethodPost, app.server.URL+"/api/v1/checkout", token, checkoutBody(listing.ID))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "own listing")
}

func TestIntegration_Checkout_SellerNotOnboarded(t *testing.T) {
	app := newTestApp(t)

	seller, err := app.profileRepo.EnsureExists(context.Background(), uuid.New(), "seller@example.com")
	require.NoError(t, err)
	listing := &domain.Listing{
		ID:          uuid.New(),
		SellerID:    seller.ID,
		Title:       "Lamp",
		PriceAmount: 20000,
		Currency:    "dkk",
		Status:      domain.ListingStatusActive,
	}
	app.listingRepo.put(listing)

	token := signToken(t, uuid.New(), "buyer@example.com")

	resp, body := doJSON(t, http.MethodPost, app.server.URL+"/api/v1/checkout", token, checkoutBody(listing.ID))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, true, body["needs_onboarding"])
}

func TestIntegration_Checkout_BannedBuyer(t *testing.T) {
	app := newTestApp(t)
	_, listing := seedSellerWithListing(t, app)

	buyer, err := app.profileRepo.EnsureExists(context.Background(), uuid.New(), "banned@example.com")
	require.NoError(t, err)
	require.NoError(t, app.profileRepo.UpdateRole(context.Background(), buyer.ID, domain.RoleBanned))

	token := signToken(t, buyer.ID, "banned@example.com")

	resp, _ := doJSON(t, http.MethodPost, app.server.URL+"/api/v1/checkout", token, checkoutBody(listing.ID))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestIntegration_Webhook_SettlesOrder(t *testing.T) {
	app := newTestApp(t)
	_, listing := seedSellerWithListing(t, app)

	token := signToken(t, uuid.New(), "buyer@example.com")
	resp, _ := doJSON(t, http.MethodPost, app.server.URL+"/api/v1/checkout", token, checkoutBody(listing.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := eventBody("evt_settle_1", "payment_intent.succeeded", settledIntent(listing.ID))
	whResp := postWebhook(t, app, payload, signEvent(payload))
	assert.Equal(t, http.StatusOK, whResp.StatusCode)

	order, err := app.orderRepo.GetByPaymentRef(context.Background(), "pi_test_1")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)

	settled, err := app.listingRepo.GetByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ListingStatusSold, settled.Status)
}

func TestIntegration_Webhook_ReplayIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	_, listing := seedSellerWithListing(t, app)

	token := signToken(t, uuid.New(), "buyer@example.com")
	resp, _ := doJSON(t, http.MethodPost, app.server.URL+"/api/v1/checkout", token, checkoutBody(listing.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := eventBody("evt_replay_1", "payment_intent.succeeded", settledIntent(listing.ID))

	first := postWebhook(t, app, payload, signEvent(payload))
	assert.Equal(t, http.StatusOK, first.StatusCode)

	// Same event id delivered again: acknowledged, state unchanged.
	second := postWebhook(t, app, payload, signEvent(payload))
	assert.Equal(t, http.StatusOK, second.StatusCode)

	order, err := app.orderRepo.GetByPaymentRef(context.Background(), "pi_test_1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
}

func TestIntegration_Webhook_BadSignature(t *testing.T) {
	app := newTestApp(t)

	payload := eventBody("evt_bad_1", "payment_intent.succeeded", `{"id":"pi_x","object":"payment_intent"}`)
	resp := postWebhook(t, app, payload, "t=1,v1=deadbeef")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	missing := postWebhook(t, app, payload, "")
	assert.Equal(t, http.StatusBadRequest, missing.StatusCode)
}

func TestIntegration_ConnectOnboardingFlow(t *testing.T) {
	app := newTestApp(t)

	sellerID := uuid.New()
	token := signToken(t, sellerID, "newseller@example.com")

	// First link request creates the platform account.
	resp, body := doJSON(t, http.MethodPost, app.server.URL+"/api/v1/connect/link", token, map[string]string{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	accountID := body["account_id"].(string)
	assert.Equal(t, "acct_test_1", accountID)
	assert.Contains(t, body["url"], accountID)

	// Status before the hosted flow completes.
	resp, body = doJSON(t, http.MethodGet, app.server.URL+"/api/v1/connect/status", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["charges_enabled"])
	assert.Equal(t, "incomplete", body["account_status"])

	// Seller finishes onboarding on the platform side.
	app.platform.completeOnboarding(accountID)

	resp, body = doJSON(t, http.MethodGet, app.server.URL+"/api/v1/connect/status", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["charges_enabled"])
	assert.Equal(t, "completed", body["account_status"])

	// The refresh wrote the confirmed state through to the local row.
	account, err := app.connectRepo.GetByUserID(context.Background(), sellerID)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.True(t, account.ChargesEnabled)
}

func TestIntegration_AdminBootstrapAndBan(t *testing.T) {
	app := newTestApp(t)

	adminID := uuid.New()
	adminToken := signToken(t, adminID, "founder@example.com")

	// Bootstrap the first admin.
	resp, body := doJSON(t, http.MethodPost, app.server.URL+"/api/v1/admin", adminToken, map[string]string{
		"action":           "bootstrap_admin",
		"bootstrap_secret": bootstrapSecret,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	// A second caller cannot bootstrap once an admin exists.
	otherToken := signToken(t, uuid.New(), "other@example.com")
	resp, _ = doJSON(t, http.MethodPost, app.server.URL+"/api/v1/admin", otherToken, map[string]string{
		"action":           "bootstrap_admin",
		"bootstrap_secret": bootstrapSecret,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Non-admins cannot perform admin actions.
	target, err := app.profileRepo.EnsureExists(context.Background(), uuid.New(), "target@example.com")
	require.NoError(t, err)
	resp, _ = doJSON(t, http.MethodPost, app.server.URL+"/api/v1/admin", otherToken, map[string]string{
		"action":  "ban_user",
		"user_id": target.ID.String(),
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// The bootstrapped admin bans the target.
	resp, body = doJSON(t, http.MethodPost, app.server.URL+"/api/v1/admin", adminToken, map[string]string{
		"action":  "ban_user",
		"user_id": target.ID.String(),
		"reason":  "fraudulent listings",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	banned, err := app.profileRepo.GetByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleBanned, banned.Role)
}

func TestIntegration_AdminMetrics(t *testing.T) {
	app := newTestApp(t)
	_, listing := seedSellerWithListing(t, app)

	// Settle one sale.
	token := signToken(t, uuid.New(), "buyer@example.com")
	resp, _ := doJSON(t, http.MethodPost, app.server.URL+"/api/v1/checkout", token, checkoutBody(listing.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	payload := eventBody("evt_metrics_1", "payment_intent.succeeded", settledIntent(listing.ID))
	require.Equal(t, http.StatusOK, postWebhook(t, app, payload, signEvent(payload)).StatusCode)

	// Bootstrap an admin and pull the metrics.
	adminID := uuid.New()
	adminToken := signToken(t, adminID, "founder@example.com")
	resp, _ = doJSON(t, http.MethodPost, app.server.URL+"/api/v1/admin", adminToken, map[string]string{
		"action":           "bootstrap_admin",
		"bootstrap_secret": bootstrapSecret,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, app.server.URL+"/api/v1/admin", adminToken, map[string]string{
		"action": "metrics",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(150000), body["total_sales"])
	assert.Equal(t, float64(1), body["total_orders"])
	assert.Equal(t, float64(1), body["sold_listings"])
	assert.Equal(t, float64(0), body["active_listings"])
}

package integration

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"marketplace-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentWebhookReplays fires the same settlement event 20 times in
// parallel. The dedup store plus idempotent status writes must leave the
// order paid and the listing sold exactly as if the event arrived once.
func TestConcurrentWebhookReplays(t *testing.T) {
	app := newTestApp(t)
	_, listing := seedSellerWithListing(t, app)

	token := signToken(t, uuid.New(), "buyer@example.com")
	resp, _ := doJSON(t, http.MethodPost, app.server.URL+"/api/v1/checkout", token, checkoutBody(listing.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	payload := eventBody("evt_concurrent_1", "payment_intent.succeeded", settledIntent(listing.ID))

	concurrency := 20
	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			r := postWebhook(t, app, payload, signEvent(payload))
			assert.Equal(t, http.StatusOK, r.StatusCode)
		}()
	}
	wg.Wait()

	order, err := app.orderRepo.GetByPaymentRef(context.Background(), "pi_test_1")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)

	settled, err := app.listingRepo.GetByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ListingStatusSold, settled.Status)
}

// TestConcurrentCheckouts races several buyers against the same listing.
// Checkout intentionally does not reserve the listing; every attempt gets an
// intent and an order, and the first settled payment wins at webhook time.
func TestConcurrentCheckouts(t *testing.T) {
	app := newTestApp(t)
	_, listing := seedSellerWithListing(t, app)

	concurrency := 10
	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func(n int) {
			defer wg.Done()
			token := signToken(t, uuid.New(), fmt.Sprintf("buyer%d@example.com", n))
			r, body := doJSON(t, http.MethodPost, app.server.URL+"/api/v1/checkout", token, checkoutBody(listing.ID))
			assert.Equal(t, http.StatusOK, r.StatusCode)
			assert.NotEmpty(t, body["client_secret"])
		}(i)
	}
	wg.Wait()

	// All orders exist and none is settled yet.
	for i := 1; i <= concurrency; i++ {
		order, err := app.orderRepo.GetByPaymentRef(context.Background(), fmt.Sprintf("pi_test_%d", i))
		require.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, domain.OrderStatusRequiresPayment, order.Status)
	}

	still, err := app.listingRepo.GetByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ListingStatusActive, still.Status)
}

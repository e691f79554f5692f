package stripeclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"marketplace-backend/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// newTestClient points the Stripe SDK at a local server so the form-encoded
// request bodies can be inspected.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:           stripe.String(baseURL),
		LeveledLogger: &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	api := &client.API{}
	api.Init("sk_test_key", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
	return &Client{api: api, country: "DK", log: zerolog.Nop()}
}

func captureForm(t *testing.T, form *url.Values, responseBody string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		parsed, err := url.ParseQuery(string(body))
		require.NoError(t, err)
		*form = parsed
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(responseBody))
	}
}

func TestClient_CreateAccount_StandardIndividual(t *testing.T) {
	var form url.Values
	srv := httptest.NewServer(captureForm(t, &form,
		`{"id":"acct_std_1","object":"account","charges_enabled":false,"details_submitted":false}`))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	acct, err := c.CreateAccount(context.Background(), "seller@example.com")
	require.NoError(t, err)
	assert.Equal(t, "acct_std_1", acct.ID)
	assert.False(t, acct.ChargesEnabled)

	// Sellers onboard as standard individual accounts in the configured
	// country; capabilities are owned by the account itself.
	assert.Equal(t, "standard", form.Get("type"))
	assert.Equal(t, "individual", form.Get("business_type"))
	assert.Equal(t, "DK", form.Get("country"))
	assert.Equal(t, "seller@example.com", form.Get("email"))
	assert.Empty(t, form.Get("capabilities[card_payments][requested]"))
	assert.Empty(t, form.Get("capabilities[transfers][requested]"))
}

func portsIntentParams() ports.CreateIntentParams {
	return ports.CreateIntentParams{
		Amount:             150000,
		Currency:           "dkk",
		DestinationAccount: "acct_seller1",
		ApplicationFee:     7500,
		Metadata:           map[string]string{"listing_id": "lst_1"},
	}
}

func TestClient_CreatePaymentIntent_DestinationCharge(t *testing.T) {
	var form url.Values
	srv := httptest.NewServer(captureForm(t, &form,
		`{"id":"pi_std_1","object":"payment_intent","client_secret":"pi_std_1_secret"}`))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	intent, err := c.CreatePaymentIntent(context.Background(), portsIntentParams())
	require.NoError(t, err)
	assert.Equal(t, "pi_std_1", intent.ID)
	assert.Equal(t, "pi_std_1_secret", intent.ClientSecret)

	assert.Equal(t, "150000", form.Get("amount"))
	assert.Equal(t, "dkk", form.Get("currency"))
	assert.Equal(t, "acct_seller1", form.Get("transfer_data[destination]"))
	assert.Equal(t, "7500", form.Get("application_fee_amount"))
	assert.Equal(t, "lst_1", form.Get("metadata[listing_id]"))
}

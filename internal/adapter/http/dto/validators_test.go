package dto

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindJSON[T any](t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var req T
	return c.ShouldBindJSON(&req)
}

func validCheckoutBody(t *testing.T) string {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"listing_id": "11111111-1111-1111-1111-111111111111",
		"shipping_address": map[string]any{
			"name":        "Mette Jensen",
			"line1":       "Nørrebrogade 1",
			"postal_code": "2200",
			"city":        "København N",
			"country":     "DK",
		},
	})
	require.NoError(t, err)
	return string(body)
}

func TestCheckoutRequest_Valid(t *testing.T) {
	assert.NoError(t, bindJSON[CheckoutRequest](t, validCheckoutBody(t)))
}

func TestCheckoutRequest_MissingListingID(t *testing.T) {
	body := `{"shipping_address":{"name":"A","line1":"B","postal_code":"1","city":"C","country":"DK"}}`
	assert.Error(t, bindJSON[CheckoutRequest](t, body))
}

func TestCheckoutRequest_MalformedListingID(t *testing.T) {
	body := strings.Replace(validCheckoutBody(t), "11111111-1111-1111-1111-111111111111", "not-a-uuid", 1)
	assert.Error(t, bindJSON[CheckoutRequest](t, body))
}

func TestCheckoutRequest_BadCountryCode(t *testing.T) {
	body := strings.Replace(validCheckoutBody(t), `"country":"DK"`, `"country":"DNK"`, 1)
	assert.Error(t, bindJSON[CheckoutRequest](t, body))
}

func TestConnectLinkRequest_SafeURL(t *testing.T) {
	assert.NoError(t, bindJSON[ConnectLinkRequest](t, `{"return_url":"https://shop.example/account"}`))
	assert.NoError(t, bindJSON[ConnectLinkRequest](t, `{}`))
	assert.Error(t, bindJSON[ConnectLinkRequest](t, `{"return_url":"javascript:alert(1)"}`))
	assert.Error(t, bindJSON[ConnectLinkRequest](t, `{"return_url":"not a url"}`))
}

func TestAdminActionRequest_RequiresAction(t *testing.T) {
	assert.Error(t, bindJSON[AdminActionRequest](t, `{}`))
	assert.NoError(t, bindJSON[AdminActionRequest](t, `{"action":"metrics"}`))
}

func TestAdminActionRequest_OptionalUUIDs(t *testing.T) {
	assert.NoError(t, bindJSON[AdminActionRequest](t,
		`{"action":"ban_user","user_id":"11111111-1111-1111-1111-111111111111","reason":"spam"}`))
	assert.Error(t, bindJSON[AdminActionRequest](t, `{"action":"ban_user","user_id":"nope"}`))
}

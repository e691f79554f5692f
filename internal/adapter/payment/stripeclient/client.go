package stripeclient

import (
	"context"
	"fmt"

	"marketplace-backend/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Client implements ports.PaymentPlatform against the Stripe API. Funds are
// routed to the seller's connected account via transfer_data; the platform
// account only ever holds its application fee.
type Client struct {
	api     *client.API
	country string
	log     zerolog.Logger
}

// New creates a Stripe-backed payment platform client. country is the ISO
// 3166-1 alpha-2 code new connected accounts are created in.
func New(secretKey, country string, log zerolog.Logger) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api, country: country, log: log}
}

// CreatePaymentIntent creates a destination-charge intent for a purchase.
func (c *Client) CreatePaymentIntent(ctx context.Context, params ports.CreateIntentParams) (*ports.PaymentIntent, error) {
	piParams := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(params.Amount),
		Currency: stripe.String(params.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(params.DestinationAccount),
		},
	}
	if params.ApplicationFee > 0 {
		piParams.ApplicationFeeAmount = stripe.Int64(params.ApplicationFee)
	}
	for k, v := range params.Metadata {
		piParams.AddMetadata(k, v)
	}

	pi, err := c.api.PaymentIntents.New(piParams)
	if err != nil {
		return nil, fmt.Errorf("stripe create payment intent: %w", err)
	}
	return &ports.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// CreateAccount creates a Standard connected account for an individual
// seller. Standard accounts own their capabilities, so none are requested.
func (c *Client) CreateAccount(ctx context.Context, email string) (*ports.PlatformAccount, error) {
	acctParams := &stripe.AccountParams{
		Params:       stripe.Params{Context: ctx},
		Type:         stripe.String(string(stripe.AccountTypeStandard)),
		BusinessType: stripe.String(string(stripe.AccountBusinessTypeIndividual)),
		Email:        stripe.String(email),
		Country:      stripe.String(c.country),
	}

	acct, err := c.api.Accounts.New(acctParams)
	if err != nil {
		return nil, fmt.Errorf("stripe create account: %w", err)
	}
	return mapAccount(acct), nil
}

// CreateAccountLink mints a one-time onboarding link for a connected account.
// The same URL serves as both refresh and return destination.
func (c *Client) CreateAccountLink(ctx context.Context, accountID, returnURL string) (string, error) {
	linkParams := &stripe.AccountLinkParams{
		Params:     stripe.Params{Context: ctx},
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(returnURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}

	link, err := c.api.AccountLinks.New(linkParams)
	if err != nil {
		return "", fmt.Errorf("stripe create account link: %w", err)
	}
	return link.URL, nil
}

// GetAccount fetches the current state of a connected account.
func (c *Client) GetAccount(ctx context.Context, accountID string) (*ports.PlatformAccount, error) {
	acct, err := c.api.Accounts.GetByID(accountID, &stripe.AccountParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("stripe get account: %w", err)
	}
	return mapAccount(acct), nil
}

func mapAccount(acct *stripe.Account) *ports.PlatformAccount {
	return &ports.PlatformAccount{
		ID:               acct.ID,
		ChargesEnabled:   acct.ChargesEnabled,
		DetailsSubmitted: acct.DetailsSubmitted,
	}
}

package paygate

import (
	"errors"
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// Client wraps the external payment gateway. It only produces the
// client-side charge secret; verification of a completed charge is the
// gateway's business, not ours.
type Client struct {
	enabled bool
}

func New(secretKey string) *Client {
	if secretKey == "" {
		return &Client{}
	}
	stripe.Key = secretKey
	return &Client{enabled: true}
}

// CreateIntent charges in the smallest currency unit.
func (c *Client) CreateIntent(amount float64, email string) (string, error) {
	if c == nil || !c.enabled {
		return "", errors.New("payment gateway is not configured")
	}
	if amount <= 0 {
		return "", errors.New("amount must be positive")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if email != "" {
		params.ReceiptEmail = stripe.String(email)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

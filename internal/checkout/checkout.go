// Package checkout hands cart line items to Stripe's hosted checkout and
// returns the redirect URL. Card data, authoritative totals, and order
// persistence all stay on Stripe's side.
package checkout

import (
	"fmt"
	"math"

	apperrors "github.com/Allison-thonio/TTTSL/internal/errors"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
)

// LineItem is one cart entry as submitted by the storefront.
type LineItem struct {
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int64   `json:"quantity" validate:"required,gt=0"`
	Image    string  `json:"image"`
}

// Config carries the checkout-session settings.
type Config struct {
	Currency   string `koanf:"currency"`
	SuccessURL string `koanf:"successUrl"`
	CancelURL  string `koanf:"cancelUrl"`
}

func (c *Config) Validate() error {
	if c.Currency == "" {
		return fmt.Errorf("checkout currency is not configured")
	}
	if c.SuccessURL == "" {
		return fmt.Errorf("checkout success URL is not configured")
	}
	if c.CancelURL == "" {
		return fmt.Errorf("checkout cancel URL is not configured")
	}
	return nil
}

// sessionCreator matches stripe's session.New; swapped out in tests.
type sessionCreator func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)

// Client creates hosted checkout sessions.
type Client struct {
	cfg    Config
	create sessionCreator
}

// NewClient creates a checkout Client. The Stripe API key is process-global
// (stripe.Key), set at startup.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg, create: session.New}
}

// CreateSession builds a payment-mode checkout session from the line items
// and returns its redirect URL. Returns ErrEmptyCart for an empty item list.
func (c *Client) CreateSession(items []LineItem) (string, error) {
	if len(items) == 0 {
		return "", apperrors.ErrEmptyCart
	}
	s, err := c.create(c.buildParams(items))
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return s.URL, nil
}

// buildParams mirrors the storefront checkout contract: unit amounts in
// cents, billing address required, phone number collected.
func (c *Client) buildParams(items []LineItem) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Image != "" {
			productData.Images = stripe.StringSlice([]string{item.Image})
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(item.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(c.cfg.Currency),
				UnitAmount:  stripe.Int64(toCents(item.Price)),
				ProductData: productData,
			},
		})
	}
	return &stripe.CheckoutSessionParams{
		LineItems:                lineItems,
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		PhoneNumberCollection: &stripe.CheckoutSessionPhoneNumberCollectionParams{
			Enabled: stripe.Bool(true),
		},
		SuccessURL: stripe.String(c.cfg.SuccessURL),
		CancelURL:  stripe.String(c.cfg.CancelURL),
	}
}

// toCents converts a decimal price to the smallest currency unit.
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

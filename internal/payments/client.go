// Package payments wraps the Stripe hosted-checkout API: session creation
// for the storefront cart, session retrieval with expanded line items for the
// webhook reconciler, and webhook signature verification.
package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v84"
)

type Client struct {
	client *stripe.Client
}

func NewClient(secretKey string) *Client {
	return &Client{client: stripe.NewClient(secretKey)}
}

// CheckoutLineItem carries one cart entry into the provider's native line
// item shape. ProductID, size and color travel in product metadata so the
// webhook can map the session back to internal products.
type CheckoutLineItem struct {
	ProductID string
	Title     string
	UnitPrice float64
	Quantity  int64
	Color     string
	Size      string
}

type CheckoutInput struct {
	LineItems  []CheckoutLineItem
	ClerkID    string
	SuccessURL string
	CancelURL  string
}

func (c *Client) CreateCheckoutSession(ctx context.Context, input CheckoutInput) (*stripe.CheckoutSession, error) {
	if len(input.LineItems) == 0 {
		return nil, fmt.Errorf("at least one line item is required")
	}

	lineItems := make([]*stripe.CheckoutSessionCreateLineItemParams, 0, len(input.LineItems))
	for _, item := range input.LineItems {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		metadata := map[string]string{"productId": item.ProductID}
		if item.Size != "" {
			metadata["size"] = item.Size
		}
		if item.Color != "" {
			metadata["color"] = item.Color
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionCreateLineItemParams{
			PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
					Name:     stripe.String(item.Title),
					Metadata: metadata,
				},
				UnitAmount: stripe.Int64(MinorUnits(item.UnitPrice)),
			},
			Quantity: stripe.Int64(quantity),
		})
	}

	params := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		ShippingAddressCollection: &stripe.CheckoutSessionCreateShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice([]string{"US", "CA"}),
		},
		LineItems:         lineItems,
		ClientReferenceID: stripe.String(input.ClerkID),
		SuccessURL:        stripe.String(input.SuccessURL),
		CancelURL:         stripe.String(input.CancelURL),
	}

	sess, err := c.client.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return sess, nil
}

// RetrieveSession re-fetches the full checkout session. The webhook event
// only carries summary data, so the reconciler needs this second round trip
// to see line items and their product metadata.
func (c *Client) RetrieveSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionRetrieveParams{}
	params.AddExpand("line_items.data.price.product")

	sess, err := c.client.V1CheckoutSessions.Retrieve(ctx, sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	return sess, nil
}

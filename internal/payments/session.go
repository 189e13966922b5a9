package payments

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v84"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Tahabaig044/luxury-admin/internal/models"
)

// Sentinels stored in place of fields the provider did not send, instead of
// failing the whole reconciliation.
const (
	SentinelNA      = "N/A"
	SentinelUnknown = "Unknown"
)

// SessionPayload is the checkout session object as delivered inside a
// webhook event. Shipping details no longer live on the SDK struct, so they
// are decoded from the raw JSON alongside it; shipping_cost arrives with an
// unexpanded rate id, decoded the same way.
type SessionPayload struct {
	stripe.CheckoutSession
	ShippingDetails *stripe.ShippingDetails `json:"shipping_details"`
	ShippingCost    *sessionShippingCost    `json:"shipping_cost"`
}

type sessionShippingCost struct {
	ShippingRate string `json:"shipping_rate"`
}

func ParseSessionPayload(raw json.RawMessage) (*SessionPayload, error) {
	var session SessionPayload
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("invalid event object: %w", err)
	}
	if session.ID == "" {
		return nil, fmt.Errorf("missing session ID")
	}
	return &session, nil
}

// CustomerInfo is the identity extracted from a completed session.
type CustomerInfo struct {
	ClerkID string
	Name    string
	Email   string
}

func CustomerFromSession(session *SessionPayload) CustomerInfo {
	info := CustomerInfo{
		ClerkID: SentinelNA,
		Name:    SentinelUnknown,
		Email:   SentinelUnknown,
	}
	if session == nil {
		return info
	}

	if session.ClientReferenceID != "" {
		info.ClerkID = session.ClientReferenceID
	}
	if details := session.CustomerDetails; details != nil {
		if details.Name != "" {
			info.Name = details.Name
		}
		if details.Email != "" {
			info.Email = details.Email
		}
	}
	return info
}

func AddressFromSession(session *SessionPayload) models.ShippingAddress {
	address := models.ShippingAddress{
		Street:     SentinelNA,
		City:       SentinelNA,
		State:      SentinelNA,
		PostalCode: SentinelNA,
		Country:    SentinelNA,
		Phone:      SentinelNA,
	}
	if session == nil {
		return address
	}

	if details := session.ShippingDetails; details != nil && details.Address != nil {
		if details.Address.Line1 != "" {
			address.Street = details.Address.Line1
		}
		if details.Address.City != "" {
			address.City = details.Address.City
		}
		if details.Address.State != "" {
			address.State = details.Address.State
		}
		if details.Address.PostalCode != "" {
			address.PostalCode = details.Address.PostalCode
		}
		if details.Address.Country != "" {
			address.Country = details.Address.Country
		}
	}
	if details := session.CustomerDetails; details != nil && details.Phone != "" {
		address.Phone = details.Phone
	}
	return address
}

func ShippingRateFromSession(session *SessionPayload) string {
	if session == nil || session.ShippingCost == nil || session.ShippingCost.ShippingRate == "" {
		return SentinelNA
	}
	return session.ShippingCost.ShippingRate
}

// OrderItemsFromLineItems maps the expanded line items of a retrieved session
// back to internal order items through the productId/size/color metadata the
// checkout initiator embedded. A line item whose metadata is missing or whose
// productId is not a valid object id keeps a zero product reference rather
// than dropping the quantity from the order.
func OrderItemsFromLineItems(items []*stripe.LineItem) []models.OrderItem {
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}

		orderItem := models.OrderItem{
			Color:    SentinelNA,
			Size:     SentinelNA,
			Quantity: 1,
		}
		if item.Quantity > 0 {
			orderItem.Quantity = int(item.Quantity)
		}

		if item.Price != nil && item.Price.Product != nil {
			metadata := item.Price.Product.Metadata
			if id, err := primitive.ObjectIDFromHex(metadata["productId"]); err == nil {
				orderItem.Product = id
			}
			if color := metadata["color"]; color != "" {
				orderItem.Color = color
			}
			if size := metadata["size"]; size != "" {
				orderItem.Size = size
			}
		}

		orderItems = append(orderItems, orderItem)
	}
	return orderItems
}

// AmountFromMinorUnits converts the provider's integer amount (cents) to the
// stored decimal total.
func AmountFromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}

// MinorUnits converts a decimal price to the provider's integer cents.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

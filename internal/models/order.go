package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentMethodCOD  = "cod"
	PaymentMethodCard = "card"

	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"

	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// OrderItem is a single line item: a product reference plus the chosen
// variant and quantity.
type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Color    string             `bson:"color" json:"color"`
	Size     string             `bson:"size" json:"size"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

type ShippingAddress struct {
	Street     string `bson:"street" json:"street"`
	City       string `bson:"city" json:"city"`
	State      string `bson:"state" json:"state"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Order references its customer by the identity provider's clerkId, never by
// an internal document reference. Order lifetime is independent of the
// customer document.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerClerkID string             `bson:"customerClerkId" json:"customerClerkId"`
	Products        []OrderItem        `bson:"products" json:"products"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	ShippingRate    string             `bson:"shippingRate,omitempty" json:"shippingRate,omitempty"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	OrderStatus     string             `bson:"orderStatus" json:"orderStatus"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is created lazily: the first completed order for an unseen clerkId
// inserts it, later orders only append to Orders. The Orders list holds
// references to documents this record does not own.
type Customer struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ClerkID   string               `bson:"clerkId" json:"clerkId"`
	Name      string               `bson:"name" json:"name"`
	Email     string               `bson:"email" json:"email"`
	Orders    []primitive.ObjectID `bson:"orders" json:"orders"`
	VIP       bool                 `bson:"vip" json:"vip"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

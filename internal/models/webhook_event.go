package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WebhookEvent records a processed payment-provider event id so replayed
// deliveries can be acknowledged without creating a second order.
type WebhookEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID    string             `bson:"eventId" json:"eventId"`
	ReceivedAt time.Time          `bson:"receivedAt" json:"receivedAt"`
}

package handlers

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Tahabaig044/luxury-admin/internal/models"
	"github.com/Tahabaig044/luxury-admin/internal/payments"
)

// errEventReplayed reports that the provider event id was already recorded;
// the delivery is acknowledged without writing a second order.
var errEventReplayed = errors.New("webhook event already processed")

// reconcileWrites are the per-document writes of one reconciliation, kept
// narrow so the ordering rules in runReconciliation can be exercised without
// a live database. The mongo implementation runs them inside one transaction.
type reconcileWrites interface {
	markEventProcessed(ctx context.Context, eventID string) error
	insertOrder(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	upsertCustomerOrder(ctx context.Context, info payments.CustomerInfo, orderID primitive.ObjectID) error
}

// runReconciliation mutates both records of one logical event. The event
// marker is written first but in the same transaction as the order, so a
// failure anywhere aborts all three writes together: a retried delivery
// after a transient error starts from a clean slate instead of matching a
// marker for an order that was never persisted.
func runReconciliation(ctx context.Context, w reconcileWrites, order *models.Order, info payments.CustomerInfo, eventID string) error {
	if eventID != "" {
		if err := w.markEventProcessed(ctx, eventID); err != nil {
			return err
		}
	}

	orderID, err := w.insertOrder(ctx, order)
	if err != nil {
		return err
	}
	order.ID = orderID

	return w.upsertCustomerOrder(ctx, info, orderID)
}

type mongoReconcileWrites struct {
	db *mongo.Database
}

func (m mongoReconcileWrites) markEventProcessed(ctx context.Context, eventID string) error {
	_, err := m.db.Collection("webhook_events").InsertOne(ctx, models.WebhookEvent{
		EventID:    eventID,
		ReceivedAt: time.Now(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return errEventReplayed
	}
	return err
}

func (m mongoReconcileWrites) insertOrder(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	res, err := m.db.Collection("orders").InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, err
	}
	orderID, _ := res.InsertedID.(primitive.ObjectID)
	return orderID, nil
}

// upsertCustomerOrder is an atomic find-or-create by clerkId, so two
// concurrent first orders from a new customer cannot race into duplicate
// customer documents.
func (m mongoReconcileWrites) upsertCustomerOrder(ctx context.Context, info payments.CustomerInfo, orderID primitive.ObjectID) error {
	now := time.Now()
	_, err := m.db.Collection("customers").UpdateOne(
		ctx,
		bson.M{"clerkId": info.ClerkID},
		bson.M{
			"$push": bson.M{"orders": orderID},
			"$set":  bson.M{"updatedAt": now},
			"$setOnInsert": bson.M{
				"clerkId":   info.ClerkID,
				"name":      info.Name,
				"email":     info.Email,
				"vip":       false,
				"createdAt": now,
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// insertOrderAndLinkCustomer is the single place two records are mutated for
// one logical event; the writes run inside one transaction so a failure
// between them cannot leave an order without a customer linkage. eventID may
// be empty for flows without a provider event (cash on delivery).
func insertOrderAndLinkCustomer(ctx context.Context, db *mongo.Database, order *models.Order, info payments.CustomerInfo, eventID string) error {
	session, err := db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, runReconciliation(sessCtx, mongoReconcileWrites{db: db}, order, info, eventID)
	})
	return err
}

// webhookEventSeen is a read-only fast path for replayed deliveries; the
// authoritative dedup is the unique-index insert inside the transaction.
func webhookEventSeen(ctx context.Context, db *mongo.Database, eventID string) (bool, error) {
	count, err := db.Collection("webhook_events").CountDocuments(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Tahabaig044/luxury-admin/internal/models"
	"github.com/Tahabaig044/luxury-admin/internal/payments"
)

type OrderRow struct {
	ID          string  `json:"id"`
	Customer    string  `json:"customer"`
	Products    int     `json:"products"`
	TotalAmount float64 `json:"totalAmount"`
	CreatedAt   string  `json:"createdAt"`
}

type PaymentStatusUpdateRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

/*
GET /orders
- Newest first, joined with the customer's name for the dashboard table
*/
func GetOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := db.Collection("orders").Find(ctx, bson.M{}, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var orders []models.Order
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		names, err := customerNamesByClerkID(ctx, db, orders)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		rows := make([]OrderRow, 0, len(orders))
		for _, order := range orders {
			customer := names[order.CustomerClerkID]
			if customer == "" {
				customer = payments.SentinelUnknown
			}
			rows = append(rows, OrderRow{
				ID:          order.ID.Hex(),
				Customer:    customer,
				Products:    len(order.Products),
				TotalAmount: order.TotalAmount,
				CreatedAt:   order.CreatedAt.Format("Jan 2, 2006"),
			})
		}

		c.JSON(http.StatusOK, rows)
	}
}

func customerNamesByClerkID(ctx context.Context, db *mongo.Database, orders []models.Order) (map[string]string, error) {
	clerkIDs := make([]string, 0, len(orders))
	seen := map[string]struct{}{}
	for _, order := range orders {
		if _, ok := seen[order.CustomerClerkID]; ok {
			continue
		}
		seen[order.CustomerClerkID] = struct{}{}
		clerkIDs = append(clerkIDs, order.CustomerClerkID)
	}

	names := map[string]string{}
	if len(clerkIDs) == 0 {
		return names, nil
	}

	cursor, err := db.Collection("customers").Find(ctx, bson.M{"clerkId": bson.M{"$in": clerkIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	for _, customer := range customers {
		names[customer.ClerkID] = customer.Name
	}
	return names, nil
}

/*
GET /orders/:id
- Order with product documents populated, plus its customer
*/
func GetOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		err = db.Collection("orders").
			FindOne(ctx, bson.M{"_id": id}).
			Decode(&order)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		productIDs := make([]primitive.ObjectID, 0, len(order.Products))
		for _, item := range order.Products {
			if !item.Product.IsZero() {
				productIDs = append(productIDs, item.Product)
			}
		}

		products := []models.Product{}
		if len(productIDs) > 0 {
			cursor, err := db.Collection("products").Find(ctx, bson.M{"_id": bson.M{"$in": productIDs}})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
				return
			}
			defer cursor.Close(ctx)

			if err := cursor.All(ctx, &products); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
				return
			}
		}

		// The customer may be missing when the identity key was never seen
		// by the reconciler; the order still renders.
		var customer *models.Customer
		var found models.Customer
		err = db.Collection("customers").
			FindOne(ctx, bson.M{"clerkId": order.CustomerClerkID}).
			Decode(&found)
		if err == nil {
			customer = &found
		} else if err != mongo.ErrNoDocuments {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"orderDetails": order,
			"products":     products,
			"customer":     customer,
		})
	}
}

/*
PATCH /orders/:id
- Payment status only; any other value is a client error
*/
func UpdateOrderPaymentStatus(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PATCH /orders/:id"

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req PaymentStatusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "paymentStatus required"})
			return
		}
		requested := strings.TrimSpace(req.PaymentStatus)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		err = db.Collection("orders").
			FindOne(ctx, bson.M{"_id": id}).
			Decode(&order)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		status, changed, err := resolvePaymentStatus(order.PaymentMethod, order.PaymentStatus, requested)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !changed {
			c.JSON(http.StatusOK, gin.H{"paymentStatus": status})
			return
		}

		result, err := db.Collection("orders").UpdateOne(
			ctx,
			bson.M{"_id": id, "paymentStatus": order.PaymentStatus},
			bson.M{"$set": bson.M{"paymentStatus": status}},
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.MatchedCount == 0 {
			// Lost a concurrent update; report whatever is stored now.
			var current models.Order
			if err := db.Collection("orders").FindOne(ctx, bson.M{"_id": id}).Decode(&current); err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			c.JSON(http.StatusOK, gin.H{"paymentStatus": current.PaymentStatus})
			return
		}

		c.JSON(http.StatusOK, gin.H{"paymentStatus": status})
	}
}

/*
DELETE /orders/:id
- The customer's dangling order reference is pulled as well
*/
func DeleteOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("orders").DeleteOne(ctx, bson.M{"_id": orderID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		_, err = db.Collection("customers").UpdateMany(
			ctx,
			bson.M{"orders": orderID},
			bson.M{"$pull": bson.M{"orders": orderID}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
	}
}

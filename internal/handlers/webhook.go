package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v84"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Tahabaig044/luxury-admin/internal/models"
	"github.com/Tahabaig044/luxury-admin/internal/payments"
)

// statuses the provider reports on a completed session
const paymentStatusSettled = string(stripe.CheckoutSessionPaymentStatusPaid)

/*
POST /webhooks
- Server-to-server only. The signature over the raw body is checked before
  any parsing; replayed event ids are acknowledged without writing a second
  order.
*/
func HandleWebhook(db *mongo.Database, client *payments.Client, webhookSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /webhooks"
		defer handlePanic(c, route)

		event, err := payments.ReadWebhookEvent(c.Request, webhookSecret)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid signature")
			return
		}

		if event.Type != "checkout.session.completed" {
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		session, err := payments.ParseSessionPayload(event.Data.Raw)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "malformed payload")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		seen, err := webhookEventSeen(ctx, db, event.ID)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if seen {
			log.Printf("[%s] replayed event ignored: %s", route, event.ID)
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		info := payments.CustomerFromSession(session)
		address := payments.AddressFromSession(session)

		// The event only carries summary data; the line items and their
		// product metadata need a second round trip.
		retrieved, err := client.RetrieveSession(ctx, session.ID)
		if err != nil {
			log.Printf("[%s] session retrieve failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "failed to retrieve session")
			return
		}

		var lineItems []*stripe.LineItem
		if retrieved.LineItems != nil {
			lineItems = retrieved.LineItems.Data
		}

		paymentStatus := models.PaymentStatusUnpaid
		if string(session.PaymentStatus) == paymentStatusSettled {
			paymentStatus = models.PaymentStatusPaid
		}

		order := models.Order{
			CustomerClerkID: info.ClerkID,
			Products:        payments.OrderItemsFromLineItems(lineItems),
			ShippingAddress: address,
			ShippingRate:    payments.ShippingRateFromSession(session),
			TotalAmount:     payments.AmountFromMinorUnits(session.AmountTotal),
			PaymentMethod:   models.PaymentMethodCard,
			PaymentStatus:   paymentStatus,
			OrderStatus:     models.OrderStatusConfirmed,
			CreatedAt:       time.Now(),
		}

		if err := insertOrderAndLinkCustomer(ctx, db, &order, info, event.ID); err != nil {
			if errors.Is(err, errEventReplayed) {
				log.Printf("[%s] replayed event ignored: %s", route, event.ID)
				c.JSON(http.StatusOK, gin.H{"received": true})
				return
			}
			log.Printf("[%s] reconciliation failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "failed to create the order")
			return
		}

		log.Printf("[%s] order %s created for %s", route, order.ID.Hex(), info.ClerkID)
		c.JSON(http.StatusOK, gin.H{"orderId": order.ID.Hex()})
	}
}

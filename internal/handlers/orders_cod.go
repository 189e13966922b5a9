package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Tahabaig044/luxury-admin/internal/models"
	"github.com/Tahabaig044/luxury-admin/internal/payments"
)

type codCartItemRequest struct {
	Item struct {
		ID    string  `json:"_id" binding:"required"`
		Title string  `json:"title"`
		Price float64 `json:"price"`
	} `json:"item" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
	Color    string `json:"color"`
	Size     string `json:"size"`
}

type codCustomerRequest struct {
	ClerkID string `json:"clerkId" binding:"required"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

type codOrderRequest struct {
	Customer        codCustomerRequest      `json:"customer" binding:"required"`
	CartItems       []codCartItemRequest    `json:"cartItems" binding:"required"`
	TotalAmount     *float64                `json:"totalAmount" binding:"required"`
	ShippingAddress *models.ShippingAddress `json:"shippingAddress" binding:"required"`
}

/*
POST /orders/cod
- Cash-on-delivery checkout from the storefront: no provider session, the
  order starts unpaid/confirmed and the customer is linked immediately
*/
func CreateCODOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/cod"
		defer handlePanic(c, route)

		var req codOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "not enough data to checkout")
			return
		}

		order, err := buildCODOrder(req)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		info := payments.CustomerInfo{
			ClerkID: req.Customer.ClerkID,
			Name:    strings.TrimSpace(req.Customer.Name),
			Email:   strings.TrimSpace(req.Customer.Email),
		}
		if info.Name == "" {
			info.Name = payments.SentinelUnknown
		}
		if info.Email == "" {
			info.Email = payments.SentinelUnknown
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		if err := insertOrderAndLinkCustomer(ctx, db, &order, info, ""); err != nil {
			log.Printf("[%s] reconciliation failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"orderId": order.ID.Hex()})
	}
}

func buildCODOrder(req codOrderRequest) (models.Order, error) {
	if len(req.CartItems) == 0 {
		return models.Order{}, errors.New("at least one cart item is required")
	}
	if req.ShippingAddress == nil {
		return models.Order{}, errors.New("shipping address is required")
	}
	if req.TotalAmount == nil || *req.TotalAmount <= 0 {
		return models.Order{}, errors.New("invalid total amount")
	}

	address := *req.ShippingAddress
	if strings.TrimSpace(address.Street) == "" ||
		strings.TrimSpace(address.City) == "" ||
		strings.TrimSpace(address.Country) == "" {
		return models.Order{}, errors.New("incomplete shipping address")
	}

	items := make([]models.OrderItem, 0, len(req.CartItems))
	for _, cartItem := range req.CartItems {
		productID, err := primitive.ObjectIDFromHex(strings.TrimSpace(cartItem.Item.ID))
		if err != nil {
			return models.Order{}, errors.New("invalid product id")
		}
		if cartItem.Quantity <= 0 {
			return models.Order{}, errors.New("quantity must be greater than zero")
		}

		color := strings.TrimSpace(cartItem.Color)
		if color == "" {
			color = payments.SentinelNA
		}
		size := strings.TrimSpace(cartItem.Size)
		if size == "" {
			size = payments.SentinelNA
		}

		items = append(items, models.OrderItem{
			Product:  productID,
			Color:    color,
			Size:     size,
			Quantity: cartItem.Quantity,
		})
	}

	return models.Order{
		CustomerClerkID: req.Customer.ClerkID,
		Products:        items,
		ShippingAddress: address,
		TotalAmount:     *req.TotalAmount,
		PaymentMethod:   models.PaymentMethodCOD,
		PaymentStatus:   models.PaymentStatusUnpaid,
		OrderStatus:     models.OrderStatusConfirmed,
		CreatedAt:       time.Now(),
	}, nil
}

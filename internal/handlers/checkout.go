package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tahabaig044/luxury-admin/internal/payments"
)

type checkoutCartItemRequest struct {
	Item struct {
		ID    string  `json:"_id" binding:"required"`
		Title string  `json:"title" binding:"required"`
		Price float64 `json:"price"`
	} `json:"item" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required"`
	Color    string `json:"color"`
	Size     string `json:"size"`
}

type checkoutCustomerRequest struct {
	ClerkID string `json:"clerkId" binding:"required"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

type checkoutRequest struct {
	CartItems []checkoutCartItemRequest `json:"cartItems" binding:"required"`
	Customer  *checkoutCustomerRequest  `json:"customer" binding:"required"`
}

/*
POST /checkout
- Shapes the cart into a hosted-checkout session; nothing is persisted here.
  The clerkId rides in client_reference_id and comes back verbatim with the
  completion event.
*/
func CreateCheckoutSession(client *payments.Client, storeURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /checkout"
		defer handlePanic(c, route)

		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "not enough data to checkout")
			return
		}

		input, err := buildCheckoutInput(req, storeURL)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		session, err := client.CreateCheckoutSession(ctx, input)
		if err != nil {
			log.Printf("[%s] provider error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "failed to create checkout session")
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

func buildCheckoutInput(req checkoutRequest, storeURL string) (payments.CheckoutInput, error) {
	if len(req.CartItems) == 0 {
		return payments.CheckoutInput{}, errors.New("cart is empty")
	}
	if req.Customer == nil || strings.TrimSpace(req.Customer.ClerkID) == "" {
		return payments.CheckoutInput{}, errors.New("customer identity is required")
	}

	lineItems := make([]payments.CheckoutLineItem, 0, len(req.CartItems))
	for _, cartItem := range req.CartItems {
		if cartItem.Item.Price <= 0 {
			return payments.CheckoutInput{}, errors.New("invalid item price")
		}
		if cartItem.Quantity <= 0 {
			return payments.CheckoutInput{}, errors.New("quantity must be greater than zero")
		}
		lineItems = append(lineItems, payments.CheckoutLineItem{
			ProductID: strings.TrimSpace(cartItem.Item.ID),
			Title:     cartItem.Item.Title,
			UnitPrice: cartItem.Item.Price,
			Quantity:  cartItem.Quantity,
			Color:     strings.TrimSpace(cartItem.Color),
			Size:      strings.TrimSpace(cartItem.Size),
		})
	}

	base := strings.TrimRight(strings.TrimSpace(storeURL), "/")
	return payments.CheckoutInput{
		LineItems:  lineItems,
		ClerkID:    req.Customer.ClerkID,
		SuccessURL: base + "/payment_success",
		CancelURL:  base + "/cart",
	}, nil
}

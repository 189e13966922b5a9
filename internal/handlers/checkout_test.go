package handlers

import (
	"testing"
)

func validCheckoutRequest() checkoutRequest {
	var req checkoutRequest
	item := checkoutCartItemRequest{Quantity: 2, Color: "Black", Size: "M"}
	item.Item.ID = "507f1f77bcf86cd799439011"
	item.Item.Title = "Silk Scarf"
	item.Item.Price = 20.00
	req.CartItems = []checkoutCartItemRequest{item}
	req.Customer = &checkoutCustomerRequest{ClerkID: "user_2f8a", Name: "Ada", Email: "ada@example.com"}
	return req
}

func TestBuildCheckoutInput(t *testing.T) {
	input, err := buildCheckoutInput(validCheckoutRequest(), "https://store.example.com/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.ClerkID != "user_2f8a" {
		t.Fatalf("expected clerkId user_2f8a, got %q", input.ClerkID)
	}
	if input.SuccessURL != "https://store.example.com/payment_success" {
		t.Fatalf("unexpected success url: %q", input.SuccessURL)
	}
	if input.CancelURL != "https://store.example.com/cart" {
		t.Fatalf("unexpected cancel url: %q", input.CancelURL)
	}
	if len(input.LineItems) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(input.LineItems))
	}

	lineItem := input.LineItems[0]
	if lineItem.UnitPrice != 20.00 || lineItem.Quantity != 2 {
		t.Fatalf("unexpected line item: %+v", lineItem)
	}
	if lineItem.Color != "Black" || lineItem.Size != "M" {
		t.Fatalf("expected variant carried through, got %+v", lineItem)
	}
}

func TestBuildCheckoutInputEmptyCart(t *testing.T) {
	req := validCheckoutRequest()
	req.CartItems = nil
	if _, err := buildCheckoutInput(req, "https://store.example.com"); err == nil {
		t.Fatal("expected error for empty cart")
	}
}

func TestBuildCheckoutInputMissingCustomer(t *testing.T) {
	req := validCheckoutRequest()
	req.Customer = nil
	if _, err := buildCheckoutInput(req, "https://store.example.com"); err == nil {
		t.Fatal("expected error for missing customer")
	}

	req = validCheckoutRequest()
	req.Customer.ClerkID = "  "
	if _, err := buildCheckoutInput(req, "https://store.example.com"); err == nil {
		t.Fatal("expected error for blank clerkId")
	}
}

func TestBuildCheckoutInputInvalidItems(t *testing.T) {
	req := validCheckoutRequest()
	req.CartItems[0].Quantity = 0
	if _, err := buildCheckoutInput(req, "https://store.example.com"); err == nil {
		t.Fatal("expected error for zero quantity")
	}

	req = validCheckoutRequest()
	req.CartItems[0].Item.Price = 0
	if _, err := buildCheckoutInput(req, "https://store.example.com"); err == nil {
		t.Fatal("expected error for zero price")
	}
}

package handlers

import (
	"fmt"

	"github.com/Tahabaig044/luxury-admin/internal/models"
)

// resolvePaymentStatus applies a staff payment-status change. Card payments
// are settled once by the provider and never transition through this system;
// cash-on-delivery moves from unpaid to paid exactly once. Repeating the
// stored value is a no-op so the dashboard can submit idempotently.
func resolvePaymentStatus(paymentMethod, current, requested string) (status string, changed bool, err error) {
	if requested != models.PaymentStatusPaid && requested != models.PaymentStatusUnpaid {
		return "", false, fmt.Errorf("invalid payment status value")
	}

	if requested == current {
		return current, false, nil
	}

	if paymentMethod == models.PaymentMethodCard {
		return "", false, fmt.Errorf("card payments are settled by the payment provider")
	}

	if current == models.PaymentStatusPaid && requested == models.PaymentStatusUnpaid {
		return "", false, fmt.Errorf("paid orders cannot be reverted to unpaid")
	}

	return requested, true, nil
}

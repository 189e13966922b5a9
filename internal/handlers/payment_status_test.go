package handlers

import (
	"testing"

	"github.com/Tahabaig044/luxury-admin/internal/models"
)

func TestResolvePaymentStatusRejectsUnknownValue(t *testing.T) {
	for _, value := range []string{"pending", "PAID", "refunded", ""} {
		_, _, err := resolvePaymentStatus(models.PaymentMethodCOD, models.PaymentStatusUnpaid, value)
		if err == nil {
			t.Fatalf("expected error for value %q", value)
		}
	}
}

func TestResolvePaymentStatusCODUnpaidToPaid(t *testing.T) {
	status, changed, err := resolvePaymentStatus(models.PaymentMethodCOD, models.PaymentStatusUnpaid, models.PaymentStatusPaid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed || status != models.PaymentStatusPaid {
		t.Fatalf("expected transition to paid, got status=%q changed=%v", status, changed)
	}
}

func TestResolvePaymentStatusRepeatIsNoOp(t *testing.T) {
	status, changed, err := resolvePaymentStatus(models.PaymentMethodCOD, models.PaymentStatusPaid, models.PaymentStatusPaid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Fatal("expected no-op for repeated value")
	}
	if status != models.PaymentStatusPaid {
		t.Fatalf("expected stored status echoed back, got %q", status)
	}
}

func TestResolvePaymentStatusPaidIsFinal(t *testing.T) {
	_, _, err := resolvePaymentStatus(models.PaymentMethodCOD, models.PaymentStatusPaid, models.PaymentStatusUnpaid)
	if err == nil {
		t.Fatal("expected error reverting paid to unpaid")
	}
}

func TestResolvePaymentStatusCardIsImmutable(t *testing.T) {
	_, _, err := resolvePaymentStatus(models.PaymentMethodCard, models.PaymentStatusUnpaid, models.PaymentStatusPaid)
	if err == nil {
		t.Fatal("expected error changing a card payment")
	}

	// repeating the stored value stays a no-op even for card
	status, changed, err := resolvePaymentStatus(models.PaymentMethodCard, models.PaymentStatusPaid, models.PaymentStatusPaid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed || status != models.PaymentStatusPaid {
		t.Fatalf("expected no-op, got status=%q changed=%v", status, changed)
	}
}

package handlers

import (
	"testing"
	"time"

	"github.com/Tahabaig044/luxury-admin/internal/models"
)

func orderAt(year int, month time.Month, amount float64) models.Order {
	return models.Order{
		TotalAmount: amount,
		CreatedAt:   time.Date(year, month, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestBucketSalesPerMonth(t *testing.T) {
	orders := []models.Order{
		orderAt(2026, time.March, 40),
		orderAt(2026, time.January, 10),
		orderAt(2026, time.March, 5),
		orderAt(2025, time.December, 100),
	}

	buckets := bucketSalesPerMonth(orders)
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}

	if buckets[0].Month != "Dec 2025" || buckets[0].Sales != 100 {
		t.Fatalf("unexpected first bucket: %+v", buckets[0])
	}
	if buckets[1].Month != "Jan 2026" || buckets[1].Sales != 10 {
		t.Fatalf("unexpected second bucket: %+v", buckets[1])
	}
	if buckets[2].Month != "Mar 2026" || buckets[2].Sales != 45 {
		t.Fatalf("expected March totals summed, got %+v", buckets[2])
	}
}

func TestBucketSalesPerMonthEmpty(t *testing.T) {
	if buckets := bucketSalesPerMonth(nil); len(buckets) != 0 {
		t.Fatalf("expected no buckets, got %v", buckets)
	}
}

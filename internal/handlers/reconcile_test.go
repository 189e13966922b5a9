package handlers

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Tahabaig044/luxury-admin/internal/models"
	"github.com/Tahabaig044/luxury-admin/internal/payments"
)

type fakeReconcileStore struct {
	events          map[string]bool
	orders          []models.Order
	customerOrders  map[string][]primitive.ObjectID
	failOrderInsert bool
	calls           []string
}

func newFakeReconcileStore() *fakeReconcileStore {
	return &fakeReconcileStore{
		events:         map[string]bool{},
		customerOrders: map[string][]primitive.ObjectID{},
	}
}

func (f *fakeReconcileStore) markEventProcessed(_ context.Context, eventID string) error {
	f.calls = append(f.calls, "markEventProcessed")
	if f.events[eventID] {
		return errEventReplayed
	}
	f.events[eventID] = true
	return nil
}

func (f *fakeReconcileStore) insertOrder(_ context.Context, order *models.Order) (primitive.ObjectID, error) {
	f.calls = append(f.calls, "insertOrder")
	if f.failOrderInsert {
		return primitive.NilObjectID, errors.New("insert failed")
	}
	id := primitive.NewObjectID()
	stored := *order
	stored.ID = id
	f.orders = append(f.orders, stored)
	return id, nil
}

func (f *fakeReconcileStore) upsertCustomerOrder(_ context.Context, info payments.CustomerInfo, orderID primitive.ObjectID) error {
	f.calls = append(f.calls, "upsertCustomerOrder")
	f.customerOrders[info.ClerkID] = append(f.customerOrders[info.ClerkID], orderID)
	return nil
}

// runFakeTransaction mirrors the transactional wrapper around
// runReconciliation: an error rolls every write of the attempt back.
func runFakeTransaction(f *fakeReconcileStore, order *models.Order, info payments.CustomerInfo, eventID string) error {
	savedEvents := map[string]bool{}
	for k, v := range f.events {
		savedEvents[k] = v
	}
	savedOrders := append([]models.Order(nil), f.orders...)
	savedCustomers := map[string][]primitive.ObjectID{}
	for k, v := range f.customerOrders {
		savedCustomers[k] = append([]primitive.ObjectID(nil), v...)
	}

	err := runReconciliation(context.Background(), f, order, info, eventID)
	if err != nil {
		f.events = savedEvents
		f.orders = savedOrders
		f.customerOrders = savedCustomers
	}
	return err
}

func testReconcileOrder() models.Order {
	return models.Order{
		CustomerClerkID: "clerk_1",
		TotalAmount:     40,
		PaymentMethod:   models.PaymentMethodCard,
		PaymentStatus:   models.PaymentStatusPaid,
		OrderStatus:     models.OrderStatusConfirmed,
	}
}

func TestRunReconciliationCreatesOrderAndLinksCustomer(t *testing.T) {
	store := newFakeReconcileStore()
	order := testReconcileOrder()
	info := payments.CustomerInfo{ClerkID: "clerk_1", Name: "Ada", Email: "ada@example.com"}

	if err := runFakeTransaction(store, &order, info, "evt_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(store.orders))
	}
	if order.ID.IsZero() {
		t.Error("order id not assigned")
	}
	if got := store.customerOrders["clerk_1"]; len(got) != 1 || got[0] != order.ID {
		t.Errorf("customer not linked to order: %v", got)
	}
}

func TestRunReconciliationMarksEventBeforeWriting(t *testing.T) {
	store := newFakeReconcileStore()
	order := testReconcileOrder()
	info := payments.CustomerInfo{ClerkID: "clerk_1"}

	if err := runFakeTransaction(store, &order, info, "evt_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"markEventProcessed", "insertOrder", "upsertCustomerOrder"}
	if len(store.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, store.calls)
	}
	for i := range want {
		if store.calls[i] != want[i] {
			t.Fatalf("expected calls %v, got %v", want, store.calls)
		}
	}
}

func TestRunReconciliationSkipsMarkerWithoutEventID(t *testing.T) {
	store := newFakeReconcileStore()
	order := testReconcileOrder()
	order.PaymentMethod = models.PaymentMethodCOD
	order.PaymentStatus = models.PaymentStatusUnpaid

	if err := runFakeTransaction(store, &order, payments.CustomerInfo{ClerkID: "clerk_1"}, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.events) != 0 {
		t.Errorf("expected no event markers, got %v", store.events)
	}
	if len(store.orders) != 1 {
		t.Errorf("expected 1 order, got %d", len(store.orders))
	}
}

func TestRunReconciliationReplayedEvent(t *testing.T) {
	store := newFakeReconcileStore()
	info := payments.CustomerInfo{ClerkID: "clerk_1"}

	first := testReconcileOrder()
	if err := runFakeTransaction(store, &first, info, "evt_1"); err != nil {
		t.Fatalf("first delivery failed: %v", err)
	}

	second := testReconcileOrder()
	err := runFakeTransaction(store, &second, info, "evt_1")
	if !errors.Is(err, errEventReplayed) {
		t.Fatalf("expected errEventReplayed, got %v", err)
	}
	if len(store.orders) != 1 {
		t.Errorf("replayed delivery wrote a second order: %d orders", len(store.orders))
	}
	if got := store.customerOrders["clerk_1"]; len(got) != 1 {
		t.Errorf("replayed delivery linked a second order: %v", got)
	}
}

// A delivery that fails mid-write must roll back its event marker so the
// provider's retry of the same event id can still create the order.
func TestRunReconciliationRetryAfterFailedDelivery(t *testing.T) {
	store := newFakeReconcileStore()
	info := payments.CustomerInfo{ClerkID: "clerk_1"}

	store.failOrderInsert = true
	first := testReconcileOrder()
	if err := runFakeTransaction(store, &first, info, "evt_1"); err == nil {
		t.Fatal("expected first delivery to fail")
	}
	if len(store.events) != 0 {
		t.Fatalf("event marker survived a rolled-back delivery: %v", store.events)
	}

	store.failOrderInsert = false
	retry := testReconcileOrder()
	if err := runFakeTransaction(store, &retry, info, "evt_1"); err != nil {
		t.Fatalf("retried delivery failed: %v", err)
	}
	if len(store.orders) != 1 {
		t.Fatalf("expected exactly 1 order after retry, got %d", len(store.orders))
	}
	if got := store.customerOrders["clerk_1"]; len(got) != 1 {
		t.Errorf("expected 1 linked order after retry, got %v", got)
	}
}

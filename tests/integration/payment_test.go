package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/safar/go-shop-api/internal/database"
	"github.com/safar/go-shop-api/internal/models"
	"github.com/safar/go-shop-api/internal/store"
	"github.com/shopspring/decimal"
)

func TestMarkPaid(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	item, err := store.CreateItem(ctx, db, "Widget", decimal.NewFromInt(10), 5)
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}

	order, err := store.PlaceOrder(ctx, db, []models.OrderLine{
		{ID: item.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("Place order: %v", err)
	}

	if err := store.MarkPaid(ctx, db, order.ID, "credit_card"); err != nil {
		t.Fatalf("Mark paid: %v", err)
	}

	paid, err := store.GetOrder(ctx, db, order.ID)
	if err != nil {
		t.Fatalf("Get order: %v", err)
	}
	if paid.Status != models.OrderStatusPaid {
		t.Errorf("Expected status paid, got %s", paid.Status)
	}
	if paid.PaymentMethod == nil || *paid.PaymentMethod != "credit_card" {
		t.Errorf("Expected payment method credit_card, got %v", paid.PaymentMethod)
	}

	// Re-marking a paid order is accepted as-is.
	if err := store.MarkPaid(ctx, db, order.ID, "paypal"); err != nil {
		t.Errorf("Marking an already-paid order should not error, got: %v", err)
	}
}

func TestMarkPaidMissingOrder(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := store.MarkPaid(ctx, db, "order_does_not_exist", "credit_card")
	if !errors.Is(err, database.ErrOrderNotFound) {
		t.Errorf("Expected order not found error, got: %v", err)
	}

	summary, err := store.GetSummary(ctx, db)
	if err != nil {
		t.Fatalf("Get summary: %v", err)
	}
	if summary.TotalOrders != 0 {
		t.Errorf("Store should be unchanged, got %d orders", summary.TotalOrders)
	}
}

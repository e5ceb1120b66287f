package api

import (
	"context"
	"database/sql"

	"github.com/safar/go-shop-api/internal/models"
	"github.com/safar/go-shop-api/internal/store"
)

// Store is the persistence surface the handlers depend on. It allows
// tests to substitute a fake for the SQL-backed implementation.
type Store interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	PlaceOrder(ctx context.Context, lines []models.OrderLine) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	MarkPaid(ctx context.Context, orderID, paymentMethod string) error
	GetSummary(ctx context.Context) (*models.SalesSummary, error)
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) ListItems(ctx context.Context) ([]models.Item, error) {
	return store.ListItems(ctx, s.db)
}

func (s *SQLStore) PlaceOrder(ctx context.Context, lines []models.OrderLine) (*models.Order, error) {
	return store.PlaceOrder(ctx, s.db, lines)
}

func (s *SQLStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return store.GetOrder(ctx, s.db, id)
}

func (s *SQLStore) MarkPaid(ctx context.Context, orderID, paymentMethod string) error {
	return store.MarkPaid(ctx, s.db, orderID, paymentMethod)
}

func (s *SQLStore) GetSummary(ctx context.Context) (*models.SalesSummary, error) {
	return store.GetSummary(ctx, s.db)
}

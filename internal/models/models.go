package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OrderLine is one entry of an order request. Orders persist the
// requested lines as a serialized snapshot, not as foreign keys.
type OrderLine struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

type Order struct {
	ID            string          `json:"id"`
	Items         []OrderLine     `json:"items"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        string          `json:"status"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SalesSummary aggregates over the orders table. TotalSales is null
// when no paid order exists (SUM over the empty set).
type SalesSummary struct {
	TotalSales  decimal.NullDecimal `json:"total_sales"`
	TotalOrders int64               `json:"total_orders"`
}

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/go-shop-api/internal/models"
)

// GetSummary reports the sum of total_price over paid orders and the
// count of all orders regardless of status. TotalSales stays null when
// no paid order exists.
func GetSummary(ctx context.Context, db *sql.DB) (*models.SalesSummary, error) {
	summary := &models.SalesSummary{}

	err := db.QueryRowContext(ctx,
		`SELECT SUM(total_price) FROM orders WHERE status = $1`,
		models.OrderStatusPaid).Scan(&summary.TotalSales)
	if err != nil {
		return nil, fmt.Errorf("sum paid orders: %w", err)
	}

	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders`).Scan(&summary.TotalOrders)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	return summary, nil
}

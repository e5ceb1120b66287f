package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/safar/go-shop-api/internal/database"
	"github.com/safar/go-shop-api/internal/models"
	"github.com/shopspring/decimal"
)

func generateOrderID() string {
	return fmt.Sprintf("order_%s", uuid.NewString())
}

// PlaceOrder validates stock, accumulates the total price, decrements
// stock and inserts the order record in a single transaction. Each
// item row is locked with FOR UPDATE before its stock is read, so
// concurrent orders for the same item serialize instead of both
// reading the pre-decrement value. Stock writes happen per line, so
// repeated ids in one request accumulate correctly.
//
// On any failure the whole transaction rolls back: either every stock
// decrement and the order record commit together, or none do.
func PlaceOrder(ctx context.Context, db *sql.DB, lines []models.OrderLine) (*models.Order, error) {
	var order *models.Order

	// Read committed plus FOR UPDATE row locks: a blocked waiter
	// observes the winner's committed stock once the lock releases,
	// without the serialization aborts of a stricter level. Retries
	// cover deadlocks between multi-line orders locking in opposite
	// order.
	err := database.WithRetry(ctx, db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		var total decimal.Decimal

		for _, line := range lines {
			var price decimal.Decimal
			var stock int

			err := tx.QueryRowContext(ctx,
				`SELECT price, stock
				 FROM items
				 WHERE id = $1
				 FOR UPDATE`,
				line.ID).Scan(&price, &stock)
			if err != nil {
				if err == sql.ErrNoRows {
					return fmt.Errorf("%w (id %d)", database.ErrItemNotFound, line.ID)
				}
				return fmt.Errorf("lock item %d: %w", line.ID, err)
			}

			remaining := stock - line.Quantity
			if remaining < 0 {
				return fmt.Errorf("%w for item %d", database.ErrInsufficientStock, line.ID)
			}

			total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))

			_, err = tx.ExecContext(ctx,
				`UPDATE items
				 SET stock = $1,
				     updated_at = NOW()
				 WHERE id = $2`,
				remaining, line.ID)
			if err != nil {
				return fmt.Errorf("update stock for item %d: %w", line.ID, err)
			}
		}

		snapshot, err := json.Marshal(lines)
		if err != nil {
			return fmt.Errorf("marshal order items: %w", err)
		}

		created := &models.Order{
			ID:         generateOrderID(),
			Items:      lines,
			TotalPrice: total,
			Status:     models.OrderStatusPending,
		}
		err = tx.QueryRowContext(ctx,
			`INSERT INTO orders (id, items, total_price, status, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, NOW(), NOW())
			 RETURNING created_at, updated_at`,
			created.ID, string(snapshot), total, created.Status).Scan(
			&created.CreatedAt,
			&created.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		order = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	return order, nil
}

func GetOrder(ctx context.Context, db *sql.DB, id string) (*models.Order, error) {
	order := &models.Order{}
	var snapshot []byte
	var paymentMethod sql.NullString

	query := `
		SELECT id, items, total_price, status, payment_method, created_at, updated_at
		FROM orders
		WHERE id = $1`

	err := db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&snapshot,
		&order.TotalPrice,
		&order.Status,
		&paymentMethod,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	if err := json.Unmarshal(snapshot, &order.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}

	if paymentMethod.Valid {
		order.PaymentMethod = &paymentMethod.String
	}

	return order, nil
}

// MarkPaid flips an order to paid and records the payment method.
// Re-marking an already-paid order succeeds; only a missing order id
// is an error.
func MarkPaid(ctx context.Context, db *sql.DB, orderID, paymentMethod string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE orders
		 SET status = $1,
		     payment_method = $2,
		     updated_at = NOW()
		 WHERE id = $3`,
		models.OrderStatusPaid, paymentMethod, orderID)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return database.ErrOrderNotFound
	}

	return nil
}

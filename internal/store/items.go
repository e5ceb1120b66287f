package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safar/go-shop-api/internal/database"
	"github.com/safar/go-shop-api/internal/models"
	"github.com/shopspring/decimal"
)

func CreateItem(ctx context.Context, db *sql.DB, name string, price decimal.Decimal, stock int) (*models.Item, error) {
	item := &models.Item{}

	query := `
		INSERT INTO items (name, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, name, price, stock, created_at, updated_at`

	err := db.QueryRowContext(ctx, query, name, price, stock).Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.Stock,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	return item, nil
}

func GetItem(ctx context.Context, db *sql.DB, id int64) (*models.Item, error) {
	item := &models.Item{}

	query := `
		SELECT id, name, price, stock, created_at, updated_at
		FROM items
		WHERE id = $1`

	err := db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.Stock,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w (id %d)", database.ErrItemNotFound, id)
		}
		return nil, fmt.Errorf("get item: %w", err)
	}

	return item, nil
}

func ListItems(ctx context.Context, db *sql.DB) ([]models.Item, error) {
	query := `
		SELECT id, name, price, stock, created_at, updated_at
		FROM items
		ORDER BY id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Price,
			&item.Stock,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}

// Package shoppingitems provides the PostgreSQL-backed repository for
// shopping-list rows. Every statement is constrained to the owning user, so
// a row belonging to someone else is indistinguishable from an absent row.
package shoppingitems

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pennywise/internal/common"
	"github.com/dmitrijs2005/pennywise/internal/dbx"
	"github.com/dmitrijs2005/pennywise/internal/server/models"
)

// PostgresRepository implements shopping-item storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new item owned by item.UserID.
func (r *PostgresRepository) Create(ctx context.Context, item *models.ShoppingItem) (*models.ShoppingItem, error) {
	query :=
		`INSERT INTO shopping_items (item_name, quantity, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, item.ItemName, item.Quantity, item.UserID).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

// ListByUser returns all items owned by userID.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.ShoppingItem, error) {
	query :=
		`SELECT id, item_name, quantity, user_id FROM shopping_items
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.ShoppingItem
	for rows.Next() {
		var item models.ShoppingItem
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Quantity, &item.UserID); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update rewrites name and quantity of the row identified by item.ID, but
// only when it is owned by item.UserID. A foreign or absent row yields
// common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, item *models.ShoppingItem) (*models.ShoppingItem, error) {
	query :=
		`UPDATE shopping_items SET item_name = $3, quantity = $4
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, item_name, quantity, user_id
		 `

	updated := &models.ShoppingItem{}
	err := r.db.QueryRowContext(ctx, query, item.ID, item.UserID, item.ItemName, item.Quantity).
		Scan(&updated.ID, &updated.ItemName, &updated.Quantity, &updated.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

// Delete removes the row identified by id when owned by userID. A foreign or
// absent row yields common.ErrorNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id int64, userID int64) error {
	query :=
		`DELETE FROM shopping_items
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

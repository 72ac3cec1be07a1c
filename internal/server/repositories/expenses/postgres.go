// Package expenses provides the PostgreSQL-backed repository for the expense
// ledger. Expenses carry no owner reference: reads and writes are global.
package expenses

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pennywise/internal/common"
	"github.com/dmitrijs2005/pennywise/internal/dbx"
	"github.com/dmitrijs2005/pennywise/internal/server/models"
)

// PostgresRepository implements expense storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new expense. The timestamp defaults to now() in the
// database.
func (r *PostgresRepository) Create(ctx context.Context, expense *models.ExpenseLog) (*models.ExpenseLog, error) {
	query :=
		`INSERT INTO expense_logs (item_name, quantity, price)
		 VALUES ($1, $2, $3)
		 RETURNING id, logged_at
		 `

	err := r.db.QueryRowContext(ctx, query, expense.ItemName, expense.Quantity, expense.Price).
		Scan(&expense.ID, &expense.LoggedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return expense, nil
}

// List returns every expense, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.ExpenseLog, error) {
	query :=
		`SELECT id, item_name, quantity, price, logged_at FROM expense_logs
		 ORDER BY logged_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.ExpenseLog
	for rows.Next() {
		var item models.ExpenseLog
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Quantity, &item.Price, &item.LoggedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Total returns the sum over all expense prices; zero when the ledger is
// empty.
func (r *PostgresRepository) Total(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(price), 0) FROM expense_logs`

	var total float64
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return total, nil
}

// Delete removes the expense with the given id regardless of who logged it.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM expense_logs WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
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

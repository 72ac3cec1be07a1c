// Package budgets provides the PostgreSQL-backed repository for per-user
// budgets. The user_id column is unique, so the upsert can never produce a
// second row for the same owner; concurrent writes are serialized by the
// row-level conflict resolution.
package budgets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pennywise/internal/common"
	"github.com/dmitrijs2005/pennywise/internal/dbx"
	"github.com/dmitrijs2005/pennywise/internal/server/models"
)

// PostgresRepository implements budget storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByUser returns the budget owned by userID, or common.ErrorNotFound when
// none has been set yet.
func (r *PostgresRepository) GetByUser(ctx context.Context, userID int64) (*models.Budget, error) {
	query :=
		`SELECT id, user_id, amount FROM budgets
		 WHERE user_id = $1
		 `

	budget := &models.Budget{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&budget.ID, &budget.UserID, &budget.Amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return budget, nil
}

// Upsert creates the budget row on first write and mutates it in place on
// every subsequent write.
func (r *PostgresRepository) Upsert(ctx context.Context, userID int64, amount float64) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (user_id, amount)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET amount = EXCLUDED.amount
		RETURNING id, user_id, amount
	`

	budget := &models.Budget{}
	err := r.db.QueryRowContext(ctx, query, userID, amount).Scan(&budget.ID, &budget.UserID, &budget.Amount)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return budget, nil
}

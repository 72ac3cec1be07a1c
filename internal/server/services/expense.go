package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/pennywise/internal/common"
	"github.com/dmitrijs2005/pennywise/internal/server/models"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/repomanager"
)

// ExpenseService manages the expense ledger. Expenses are not owner-scoped:
// logging and listing require no identity at all, and deletion only requires
// that the caller authenticated as somebody. This mirrors the product's
// current behavior and must not be "fixed" here without a requirement change.
type ExpenseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewExpenseService constructs an ExpenseService.
func NewExpenseService(db *sql.DB, m repomanager.RepositoryManager) *ExpenseService {
	return &ExpenseService{db: db, repomanager: m}
}

// Log records a new expense. The timestamp is assigned by the store.
func (s *ExpenseService) Log(ctx context.Context, itemName string, quantity *string, price float64) (*models.ExpenseLog, error) {
	if itemName == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Expenses(s.db)
	expense, err := repo.Create(ctx, &models.ExpenseLog{ItemName: itemName, Quantity: quantity, Price: price})
	if err != nil {
		return nil, common.ErrorInternal
	}
	return expense, nil
}

// List returns the whole ledger, newest first.
func (s *ExpenseService) List(ctx context.Context) ([]*models.ExpenseLog, error) {
	repo := s.repomanager.Expenses(s.db)
	items, err := repo.List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return items, nil
}

// Total returns the summed price over all expenses.
func (s *ExpenseService) Total(ctx context.Context) (float64, error) {
	repo := s.repomanager.Expenses(s.db)
	total, err := repo.Total(ctx)
	if err != nil {
		return 0, common.ErrorInternal
	}
	return total, nil
}

// Delete removes any expense by id, no matter who logged it.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Expenses(s.db)
	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}

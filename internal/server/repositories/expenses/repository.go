package expenses

import (
	"context"

	"github.com/dmitrijs2005/pennywise/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, expense *models.ExpenseLog) (*models.ExpenseLog, error)
	List(ctx context.Context) ([]*models.ExpenseLog, error)
	Total(ctx context.Context) (float64, error)
	Delete(ctx context.Context, id int64) error
}

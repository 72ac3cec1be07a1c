package budgets

import (
	"context"

	"github.com/dmitrijs2005/pennywise/internal/server/models"
)

type Repository interface {
	GetByUser(ctx context.Context, userID int64) (*models.Budget, error)
	Upsert(ctx context.Context, userID int64, amount float64) (*models.Budget, error)
}

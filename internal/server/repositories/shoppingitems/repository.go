package shoppingitems

import (
	"context"

	"github.com/dmitrijs2005/pennywise/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, item *models.ShoppingItem) (*models.ShoppingItem, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.ShoppingItem, error)
	Update(ctx context.Context, item *models.ShoppingItem) (*models.ShoppingItem, error)
	Delete(ctx context.Context, id int64, userID int64) error
}

package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/pennywise/internal/common"
	"github.com/dmitrijs2005/pennywise/internal/server/models"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/repomanager"
)

// ShoppingService manages a user's shopping list. Every operation takes the
// acting user's id and never touches rows owned by anyone else.
type ShoppingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewShoppingService constructs a ShoppingService.
func NewShoppingService(db *sql.DB, m repomanager.RepositoryManager) *ShoppingService {
	return &ShoppingService{db: db, repomanager: m}
}

// Add creates a new item on userID's list.
func (s *ShoppingService) Add(ctx context.Context, userID int64, itemName string, quantity *string) (*models.ShoppingItem, error) {
	if itemName == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.ShoppingItems(s.db)
	item, err := repo.Create(ctx, &models.ShoppingItem{ItemName: itemName, Quantity: quantity, UserID: userID})
	if err != nil {
		return nil, common.ErrorInternal
	}
	return item, nil
}

// List returns userID's items.
func (s *ShoppingService) List(ctx context.Context, userID int64) ([]*models.ShoppingItem, error) {
	repo := s.repomanager.ShoppingItems(s.db)
	items, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return items, nil
}

// Update rewrites an item owned by userID. A foreign or absent row yields
// common.ErrorNotFound, so a caller cannot learn whether the id exists for
// someone else.
func (s *ShoppingService) Update(ctx context.Context, userID int64, id int64, itemName string, quantity *string) (*models.ShoppingItem, error) {
	if itemName == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.ShoppingItems(s.db)
	item, err := repo.Update(ctx, &models.ShoppingItem{ID: id, UserID: userID, ItemName: itemName, Quantity: quantity})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return item, nil
}

// Remove deletes an item owned by userID, with the same not-found collapse
// as Update.
func (s *ShoppingService) Remove(ctx context.Context, userID int64, id int64) error {
	repo := s.repomanager.ShoppingItems(s.db)
	if err := repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}

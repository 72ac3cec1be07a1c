package users

import (
	"context"

	"github.com/dmitrijs2005/pennywise/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePassword(ctx context.Context, username string, hashedPassword string) error
}

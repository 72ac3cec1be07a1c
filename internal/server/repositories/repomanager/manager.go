package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/pennywise/internal/dbx"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/budgets"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/expenses"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/shoppingitems"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can run the same repository code on a plain connection or inside
// a transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	ShoppingItems(db dbx.DBTX) shoppingitems.Repository
	Budgets(db dbx.DBTX) budgets.Repository
	Expenses(db dbx.DBTX) expenses.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}

package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/pennywise/internal/dbx"
	"github.com/dmitrijs2005/pennywise/internal/server/models"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/budgets"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/expenses"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/shoppingitems"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/users"
)

// --- fake repositories wired through a fake manager ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	updatePasswordErr  error
	updatePasswordHash string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) UpdatePassword(ctx context.Context, username string, hashedPassword string) error {
	f.updatePasswordHash = hashedPassword
	return f.updatePasswordErr
}

type fakeShoppingRepo struct {
	createOut *models.ShoppingItem
	createErr error

	listOut []*models.ShoppingItem
	listErr error

	updateOut *models.ShoppingItem
	updateErr error

	deleteErr error
}

func (f *fakeShoppingRepo) Create(ctx context.Context, item *models.ShoppingItem) (*models.ShoppingItem, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return item, nil
}

func (f *fakeShoppingRepo) ListByUser(ctx context.Context, userID int64) ([]*models.ShoppingItem, error) {
	return f.listOut, f.listErr
}

func (f *fakeShoppingRepo) Update(ctx context.Context, item *models.ShoppingItem) (*models.ShoppingItem, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeShoppingRepo) Delete(ctx context.Context, id int64, userID int64) error {
	return f.deleteErr
}

type fakeBudgetsRepo struct {
	getOut *models.Budget
	getErr error

	upsertOut *models.Budget
	upsertErr error
}

func (f *fakeBudgetsRepo) GetByUser(ctx context.Context, userID int64) (*models.Budget, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeBudgetsRepo) Upsert(ctx context.Context, userID int64, amount float64) (*models.Budget, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	return f.upsertOut, nil
}

type fakeExpensesRepo struct {
	createOut *models.ExpenseLog
	createErr error

	listOut []*models.ExpenseLog
	listErr error

	totalOut float64
	totalErr error

	deleteErr error
}

func (f *fakeExpensesRepo) Create(ctx context.Context, e *models.ExpenseLog) (*models.ExpenseLog, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return e, nil
}

func (f *fakeExpensesRepo) List(ctx context.Context) ([]*models.ExpenseLog, error) {
	return f.listOut, f.listErr
}

func (f *fakeExpensesRepo) Total(ctx context.Context) (float64, error) {
	return f.totalOut, f.totalErr
}

func (f *fakeExpensesRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteErr
}

type fakeRepoManager struct {
	users    *fakeUsersRepo
	shopping *fakeShoppingRepo
	budgets  *fakeBudgetsRepo
	expenses *fakeExpensesRepo
}

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository { return m.users }

func (m *fakeRepoManager) ShoppingItems(db dbx.DBTX) shoppingitems.Repository { return m.shopping }

func (m *fakeRepoManager) Budgets(db dbx.DBTX) budgets.Repository { return m.budgets }

func (m *fakeRepoManager) Expenses(db dbx.DBTX) expenses.Repository { return m.expenses }

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

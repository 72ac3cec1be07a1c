package httpapi

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/dmitrijs2005/pennywise/internal/common"
	"github.com/dmitrijs2005/pennywise/internal/dbx"
	"github.com/dmitrijs2005/pennywise/internal/server/models"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/budgets"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/expenses"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/shoppingitems"
	"github.com/dmitrijs2005/pennywise/internal/server/repositories/users"
)

// Stateful in-memory repositories so handler tests can run whole scenarios
// (signup, login, mutate, read back) against real services.

type memUsersRepo struct {
	byName map[string]*models.User
	nextID int64
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{byName: make(map[string]*models.User), nextID: 1}
}

func (m *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if _, ok := m.byName[u.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}
	stored := *u
	stored.ID = m.nextID
	m.nextID++
	m.byName[stored.Username] = &stored
	out := stored
	return &out, nil
}

func (m *memUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := m.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (m *memUsersRepo) UpdatePassword(ctx context.Context, username string, hashedPassword string) error {
	u, ok := m.byName[username]
	if !ok {
		return common.ErrorNotFound
	}
	u.HashedPassword = hashedPassword
	return nil
}

type memShoppingRepo struct {
	items  map[int64]*models.ShoppingItem
	nextID int64
}

func newMemShoppingRepo() *memShoppingRepo {
	return &memShoppingRepo{items: make(map[int64]*models.ShoppingItem), nextID: 1}
}

func (m *memShoppingRepo) Create(ctx context.Context, item *models.ShoppingItem) (*models.ShoppingItem, error) {
	stored := *item
	stored.ID = m.nextID
	m.nextID++
	m.items[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *memShoppingRepo) ListByUser(ctx context.Context, userID int64) ([]*models.ShoppingItem, error) {
	var result []*models.ShoppingItem
	for _, item := range m.items {
		if item.UserID == userID {
			out := *item
			result = append(result, &out)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *memShoppingRepo) Update(ctx context.Context, item *models.ShoppingItem) (*models.ShoppingItem, error) {
	stored, ok := m.items[item.ID]
	if !ok || stored.UserID != item.UserID {
		return nil, common.ErrorNotFound
	}
	stored.ItemName = item.ItemName
	stored.Quantity = item.Quantity
	out := *stored
	return &out, nil
}

func (m *memShoppingRepo) Delete(ctx context.Context, id int64, userID int64) error {
	stored, ok := m.items[id]
	if !ok || stored.UserID != userID {
		return common.ErrorNotFound
	}
	delete(m.items, id)
	return nil
}

type memBudgetsRepo struct {
	byUser map[int64]*models.Budget
	nextID int64
}

func newMemBudgetsRepo() *memBudgetsRepo {
	return &memBudgetsRepo{byUser: make(map[int64]*models.Budget), nextID: 1}
}

func (m *memBudgetsRepo) GetByUser(ctx context.Context, userID int64) (*models.Budget, error) {
	b, ok := m.byUser[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *b
	return &out, nil
}

func (m *memBudgetsRepo) Upsert(ctx context.Context, userID int64, amount float64) (*models.Budget, error) {
	b, ok := m.byUser[userID]
	if !ok {
		b = &models.Budget{ID: m.nextID, UserID: userID}
		m.nextID++
		m.byUser[userID] = b
	}
	b.Amount = amount
	out := *b
	return &out, nil
}

type memExpensesRepo struct {
	items  []*models.ExpenseLog
	nextID int64
}

func newMemExpensesRepo() *memExpensesRepo {
	return &memExpensesRepo{nextID: 1}
}

func (m *memExpensesRepo) Create(ctx context.Context, e *models.ExpenseLog) (*models.ExpenseLog, error) {
	stored := *e
	stored.ID = m.nextID
	m.nextID++
	if stored.LoggedAt.IsZero() {
		stored.LoggedAt = time.Now()
	}
	m.items = append(m.items, &stored)
	out := stored
	return &out, nil
}

func (m *memExpensesRepo) List(ctx context.Context) ([]*models.ExpenseLog, error) {
	result := make([]*models.ExpenseLog, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		out := *m.items[i]
		result = append(result, &out)
	}
	return result, nil
}

func (m *memExpensesRepo) Total(ctx context.Context) (float64, error) {
	var total float64
	for _, e := range m.items {
		total += e.Price
	}
	return total, nil
}

func (m *memExpensesRepo) Delete(ctx context.Context, id int64) error {
	for i, e := range m.items {
		if e.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type memRepoManager struct {
	users    *memUsersRepo
	shopping *memShoppingRepo
	budgets  *memBudgetsRepo
	expenses *memExpensesRepo
}

func newMemRepoManager() *memRepoManager {
	return &memRepoManager{
		users:    newMemUsersRepo(),
		shopping: newMemShoppingRepo(),
		budgets:  newMemBudgetsRepo(),
		expenses: newMemExpensesRepo(),
	}
}

func (m *memRepoManager) Users(db dbx.DBTX) users.Repository { return m.users }

func (m *memRepoManager) ShoppingItems(db dbx.DBTX) shoppingitems.Repository { return m.shopping }

func (m *memRepoManager) Budgets(db dbx.DBTX) budgets.Repository { return m.budgets }

func (m *memRepoManager) Expenses(db dbx.DBTX) expenses.Repository { return m.expenses }

func (m *memRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

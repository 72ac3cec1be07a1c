package shoppingitems

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/pennywise/internal/common"
	"github.com/dmitrijs2005/pennywise/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func strPtr(s string) *string { return &s }

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(5))
	mock.ExpectQuery(`INSERT\s+INTO\s+shopping_items\s*\(item_name,\s*quantity,\s*user_id\)`).
		WithArgs("milk", nil, int64(1)).
		WillReturnRows(rows)

	item := &models.ShoppingItem{ItemName: "milk", UserID: 1}
	got, err := repo.Create(context.Background(), item)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 5 || got.Quantity != nil {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestListByUser_FiltersByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "item_name", "quantity", "user_id"}).
		AddRow(int64(1), "milk", nil, int64(1)).
		AddRow(int64(2), "eggs", "12", int64(1))

	mock.ExpectQuery(`SELECT\s+id,\s*item_name,\s*quantity,\s*user_id\s+FROM\s+shopping_items\s+WHERE\s+user_id\s*=\s*\$1`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ItemName != "milk" || got[0].Quantity != nil {
		t.Fatalf("unexpected first item: %+v", got[0])
	}
	if got[1].Quantity == nil || *got[1].Quantity != "12" {
		t.Fatalf("unexpected second item: %+v", got[1])
	}
}

func TestListByUser_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*item_name`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "item_name", "quantity", "user_id"}))

	got, err := repo.ListByUser(context.Background(), 9)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no items, got %d", len(got))
	}
}

func TestUpdate_ScopedToOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "item_name", "quantity", "user_id"}).
		AddRow(int64(3), "bread", "2", int64(1))

	mock.ExpectQuery(`UPDATE\s+shopping_items\s+SET\s+item_name\s*=\s*\$3,\s*quantity\s*=\s*\$4\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`).
		WithArgs(int64(3), int64(1), "bread", strPtr("2")).
		WillReturnRows(rows)

	got, err := repo.Update(context.Background(), &models.ShoppingItem{ID: 3, UserID: 1, ItemName: "bread", Quantity: strPtr("2")})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.ItemName != "bread" {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestUpdate_ForeignRowIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+shopping_items`).
		WithArgs(int64(3), int64(2), "bread", nil).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.ShoppingItem{ID: 3, UserID: 2, ItemName: "bread"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_ScopedToOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+shopping_items\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`).
		WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), 3, 1); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_ForeignRowIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+shopping_items`).
		WithArgs(int64(3), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 3, 2)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

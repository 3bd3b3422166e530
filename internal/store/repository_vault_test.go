package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/alebedev/passvault/internal/logger"
	"github.com/alebedev/passvault/models"
	"github.com/google/uuid"
)

func newTestVaultRepo(t *testing.T) (*vaultRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &vaultRepository{
		db:      &DB{DB: db, logger: l},
		logger:  l,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	return repo, mock, db
}

func vaultItemRows(items ...models.VaultItem) *sqlmock.Rows {
	rows := sqlmock.NewRows(vaultItemColumns)
	now := time.Now()
	for _, item := range items {
		rows.AddRow(item.ID, item.UserID, item.Title, item.Username, item.Password, item.URL, item.Notes, now, now)
	}
	return rows
}

func TestListItems_ScopedToOwner(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	items := []models.VaultItem{
		{ID: uuid.New(), UserID: 42, Title: "GitHub", Username: "blob1", Password: "blob2"},
		{ID: uuid.New(), UserID: 42, Title: "Bank", Username: "blob3", Password: "blob4"},
	}

	mock.ExpectQuery("SELECT (.+) FROM vault_items WHERE user_id = (.+) ORDER BY created_at DESC").
		WithArgs(int64(42)).
		WillReturnRows(vaultItemRows(items...))

	got, err := repo.ListItems(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].Title != "GitHub" {
		t.Errorf("expected first item GitHub, got %s", got[0].Title)
	}
}

func TestListItems_EmptyVault(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM vault_items").
		WithArgs(int64(1)).
		WillReturnRows(vaultItemRows())

	got, err := repo.ListItems(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %d items", len(got))
	}
}

func TestCreateItem_Success(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	item := models.VaultItem{
		UserID:   42,
		Title:    "GitHub",
		Username: "enc-username",
		Password: "enc-password",
		URL:      "https://github.com",
	}
	saved := item
	saved.ID = uuid.New()

	mock.ExpectQuery("INSERT INTO vault_items").
		WithArgs(sqlmock.AnyArg(), item.UserID, item.Title, item.Username, item.Password, item.URL, item.Notes).
		WillReturnRows(vaultItemRows(saved))

	created, err := repo.CreateItem(context.Background(), item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected a server-assigned ID")
	}
	if created.Title != item.Title {
		t.Errorf("expected title %s, got %s", item.Title, created.Title)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE vault_items").
		WillReturnError(sql.ErrNoRows)

	item := models.VaultItem{ID: uuid.New(), UserID: 42, Title: "x", Username: "u", Password: "p"}
	_, err := repo.UpdateItem(context.Background(), item)
	if !errors.Is(err, ErrVaultItemNotFound) {
		t.Fatalf("expected ErrVaultItemNotFound, got %v", err)
	}
}

func TestDeleteItem_Success(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec("DELETE FROM vault_items").
		WithArgs(id, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteItem(context.Background(), 42, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec("DELETE FROM vault_items").
		WithArgs(id, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteItem(context.Background(), 42, id)
	if !errors.Is(err, ErrVaultItemNotFound) {
		t.Fatalf("expected ErrVaultItemNotFound, got %v", err)
	}
}

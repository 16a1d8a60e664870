package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db), mock
}

func TestPostgresStore_Get(t *testing.T) {
	store, mock := setupTestStore(t)

	rows := sqlmock.NewRows([]string{"data", "created_at"}).
		AddRow([]byte(`{"name":"Sakura Diner","status":"live"}`), time.Now())
	mock.ExpectQuery("SELECT data, created_at FROM documents").
		WithArgs("restaurants", "res-1").
		WillReturnRows(rows)

	doc, err := store.Get(context.Background(), "restaurants", "res-1")
	require.NoError(t, err)
	assert.Equal(t, "res-1", doc.ID)
	assert.Equal(t, "Sakura Diner", doc.Fields["name"])
}

func TestPostgresStore_Get_NotFound(t *testing.T) {
	store, mock := setupTestStore(t)

	mock.ExpectQuery("SELECT data, created_at FROM documents").
		WithArgs("restaurants", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"data", "created_at"}))

	_, err := store.Get(context.Background(), "restaurants", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStore_Create(t *testing.T) {
	store, mock := setupTestStore(t)

	mock.ExpectQuery("INSERT INTO documents").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	doc, err := store.Create(context.Background(), "restaurants", "res-1", map[string]any{"name": "Sakura Diner"})
	require.NoError(t, err)
	assert.Equal(t, "res-1", doc.ID)
	assert.False(t, doc.CreatedAt.IsZero())
}

func TestPostgresStore_Create_Conflict(t *testing.T) {
	store, mock := setupTestStore(t)

	mock.ExpectQuery("INSERT INTO documents").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := store.Create(context.Background(), "restaurants", "res-1", map[string]any{"name": "Sakura Diner"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPostgresStore_Create_GeneratesID(t *testing.T) {
	store, mock := setupTestStore(t)

	mock.ExpectQuery("INSERT INTO documents").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	doc, err := store.Create(context.Background(), "notifications", "", map[string]any{"message": "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
}

func TestPostgresStore_Update(t *testing.T) {
	store, mock := setupTestStore(t)

	mock.ExpectExec("UPDATE documents SET data").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Update(context.Background(), "restaurants", "res-1", map[string]any{"status": "removed"})
	assert.NoError(t, err)
}

func TestPostgresStore_Update_NotFound(t *testing.T) {
	store, mock := setupTestStore(t)

	mock.ExpectExec("UPDATE documents SET data").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Update(context.Background(), "restaurants", "missing", map[string]any{"status": "removed"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStore_Delete(t *testing.T) {
	store, mock := setupTestStore(t)

	mock.ExpectExec("DELETE FROM documents").
		WithArgs("user_submissions", "sub-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.Delete(context.Background(), "user_submissions", "sub-1"))
}

func TestPostgresStore_Delete_NotFound(t *testing.T) {
	store, mock := setupTestStore(t)

	mock.ExpectExec("DELETE FROM documents").
		WithArgs("user_submissions", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, store.Delete(context.Background(), "user_submissions", "missing"), ErrNotFound)
}

func TestPostgresStore_List_WithFilter(t *testing.T) {
	store, mock := setupTestStore(t)

	rows := sqlmock.NewRows([]string{"id", "data", "created_at"}).
		AddRow("res-2", []byte(`{"name":"B","status":"live"}`), time.Now()).
		AddRow("res-1", []byte(`{"name":"A","status":"live"}`), time.Now().Add(-time.Hour))
	mock.ExpectQuery("SELECT id, data, created_at FROM documents").
		WillReturnRows(rows)

	documents, err := store.List(context.Background(), "restaurants", map[string]any{"status": "live"}, 200)
	require.NoError(t, err)
	require.Len(t, documents, 2)
	assert.Equal(t, "res-2", documents[0].ID)
	assert.Equal(t, "B", documents[0].Fields["name"])
}

func TestPostgresStore_Count(t *testing.T) {
	store, mock := setupTestStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM documents`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := store.Count(context.Background(), "restaurants", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

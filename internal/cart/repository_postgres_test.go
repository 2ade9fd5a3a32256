package cart

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBySession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "session_id", "items", "total", "created_at", "updated_at"}).
		AddRow("c1", nil, "sess-1",
			[]byte(`[{"product_id":"p1","product_name":"Collier","product_price":25000,"product_image":"","quantity":2,"subtotal":50000}]`),
			50000.0, now, now)
	mock.ExpectQuery("SELECT .* FROM carts WHERE session_id").WithArgs("sess-1").WillReturnRows(rows)

	c, err := repo.GetBySession(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", c.SessionID)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 50000.0, c.Items[0].Subtotal)
	assert.Nil(t, c.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySession_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT .* FROM carts WHERE session_id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "session_id", "items", "total", "created_at", "updated_at"}))

	_, err = repo.GetBySession(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Now().UTC()
	c := Cart{ID: "c1", SessionID: "sess-1", Items: []Item{}, Total: 0, CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("INSERT INTO carts").
		WithArgs("c1", nil, "sess-1", sqlmock.AnyArg(), 0.0, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBySession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM carts WHERE session_id").
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteBySession(context.Background(), "sess-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

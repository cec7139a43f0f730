package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestAccountCreate_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO accounts").
		WithArgs("alice", "hash").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT id,username,password_hash,created_at FROM accounts WHERE id=").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(7, "alice", "hash", created))

	repo := NewAccountRepo(db)
	acc, err := repo.Create(context.Background(), "  Alice ", "hash")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), acc.ID)
	assert.Equal(t, "alice", acc.Username)
	assert.Equal(t, created, acc.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountCreate_DuplicateUsername(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs("alice", "hash").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice' for key 'accounts.username'"))

	repo := NewAccountRepo(db)
	_, err := repo.Create(context.Background(), "alice", "hash")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountGetByUsername_NormalizesInput(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id,username,password_hash,created_at FROM accounts WHERE username=").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(7, "alice", "hash", created))

	repo := NewAccountRepo(db)
	acc, err := repo.GetByUsername(context.Background(), " ALICE ")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), acc.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountGetByUsername_NoRows(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id,username,password_hash,created_at FROM accounts WHERE username=").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	repo := NewAccountRepo(db)
	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

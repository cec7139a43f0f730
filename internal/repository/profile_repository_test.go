package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamkarol/fitness-profile-service/internal/model"
)

func profileRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"account_id", "email", "age", "height_cm", "weight_kg",
		"gender", "goal", "premium", "created_at", "updated_at",
	})
}

func TestProfileGet_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM profiles WHERE account_id=").
		WithArgs(7).
		WillReturnRows(profileRows())

	repo := NewProfileRepo(db)
	_, err := repo.Get(context.Background(), 7)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileGet_NullColumnsStayNil(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .+ FROM profiles WHERE account_id=").
		WithArgs(7).
		WillReturnRows(profileRows().
			AddRow(7, "alice@example.com", 30, nil, nil, nil, nil, true, created, created))

	repo := NewProfileRepo(db)
	p, err := repo.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), p.AccountID)
	require.NotNil(t, p.Email)
	assert.Equal(t, "alice@example.com", *p.Email)
	require.NotNil(t, p.Age)
	assert.Equal(t, uint32(30), *p.Age)
	assert.Nil(t, p.HeightCm)
	assert.Nil(t, p.WeightKg)
	assert.Nil(t, p.Gender)
	assert.Nil(t, p.Goal)
	require.NotNil(t, p.Premium)
	assert.True(t, *p.Premium)
}

func TestProfileUpsert_CreatesThenReadsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	age := uint32(30)
	now := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(7, nil, 30, nil, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .+ FROM profiles WHERE account_id=").
		WithArgs(7).
		WillReturnRows(profileRows().
			AddRow(7, nil, 30, nil, nil, nil, nil, nil, now, now))

	repo := NewProfileRepo(db)
	p, err := repo.Upsert(context.Background(), 7, model.Profile{Age: &age})
	require.NoError(t, err)
	require.NotNil(t, p.Age)
	assert.Equal(t, uint32(30), *p.Age)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileUpsert_MergeKeepsCreatedAt(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	height := 170.0
	age := uint32(31)
	created := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(7, nil, 31, 170.0, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 2)) // ON DUPLICATE KEY UPDATE reports 2 affected rows
	mock.ExpectQuery("SELECT .+ FROM profiles WHERE account_id=").
		WithArgs(7).
		WillReturnRows(profileRows().
			AddRow(7, nil, 31, 170.0, nil, nil, nil, nil, created, updated))

	repo := NewProfileRepo(db)
	p, err := repo.Upsert(context.Background(), 7, model.Profile{Age: &age, HeightCm: &height})
	require.NoError(t, err)

	// Second write wins for overlapping fields; created_at is stable
	// and updated_at moves forward.
	require.NotNil(t, p.Age)
	assert.Equal(t, uint32(31), *p.Age)
	require.NotNil(t, p.HeightCm)
	assert.Equal(t, 170.0, *p.HeightCm)
	assert.Equal(t, created, p.CreatedAt)
	assert.True(t, p.UpdatedAt.After(p.CreatedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

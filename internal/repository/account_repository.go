package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iamkarol/fitness-profile-service/internal/model"
)

// AccountRepo provides access to the 'accounts' table.
type AccountRepo struct{ DB *sql.DB }

func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{DB: db} }

// Create inserts a new account and returns the stored row. Username
// uniqueness is enforced by the unique index, so two concurrent
// registrations with the same name resolve to exactly one success;
// the loser sees ErrUsernameTaken.
func (r *AccountRepo) Create(ctx context.Context, username, passwordHash string) (model.Account, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO accounts (username, password_hash) VALUES (?,?)",
		username, passwordHash)
	if err != nil {
		// MySQL 1062 = duplicate entry for a unique key
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.Account{}, ErrUsernameTaken
		}
		return model.Account{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Account{}, err
	}
	// Read the row back so created_at reflects what the server stored.
	return r.GetByID(ctx, uint64(id))
}

// GetByUsername fetches an account by normalized username.
func (r *AccountRepo) GetByUsername(ctx context.Context, username string) (model.Account, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	var a model.Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password_hash,created_at FROM accounts WHERE username=? LIMIT 1",
		username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

// GetByID fetches an account by id.
func (r *AccountRepo) GetByID(ctx context.Context, id uint64) (model.Account, error) {
	var a model.Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password_hash,created_at FROM accounts WHERE id=? LIMIT 1",
		id).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

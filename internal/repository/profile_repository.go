package repository

import (
	"context"
	"database/sql"

	"github.com/iamkarol/fitness-profile-service/internal/model"
)

// ProfileRepo provides read and upsert access to the 'profiles'
// table. Each account owns at most one profile row, keyed by
// account_id.
type ProfileRepo struct{ DB *sql.DB }

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{DB: db} }

const profileColumns = "account_id,email,age,height_cm,weight_kg,gender,goal,premium,created_at,updated_at"

// Get fetches the profile for an account. ErrProfileNotFound is
// returned when no row exists; that is an empty state, not a fault.
func (r *ProfileRepo) Get(ctx context.Context, accountID uint64) (model.Profile, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM profiles WHERE account_id=? LIMIT 1",
		accountID)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return model.Profile{}, ErrProfileNotFound
	}
	return p, err
}

// Upsert creates the profile on first write or shallow-merges the
// incoming fields over the stored row. The merge runs as a single
// INSERT ... ON DUPLICATE KEY UPDATE statement: absent (nil) fields
// bind as NULL and COALESCE keeps the stored value, so two
// concurrent upserts for the same account serialize on the row lock
// instead of losing an update. created_at is written only on the
// insert path; updated_at is set unconditionally so it refreshes
// even when every field value is unchanged.
func (r *ProfileRepo) Upsert(ctx context.Context, accountID uint64, in model.Profile) (model.Profile, error) {
	const q = `INSERT INTO profiles
		(account_id, email, age, height_cm, weight_kg, gender, goal, premium, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?, UTC_TIMESTAMP(), UTC_TIMESTAMP())
		ON DUPLICATE KEY UPDATE
		email      = COALESCE(VALUES(email), email),
		age        = COALESCE(VALUES(age), age),
		height_cm  = COALESCE(VALUES(height_cm), height_cm),
		weight_kg  = COALESCE(VALUES(weight_kg), weight_kg),
		gender     = COALESCE(VALUES(gender), gender),
		goal       = COALESCE(VALUES(goal), goal),
		premium    = COALESCE(VALUES(premium), premium),
		updated_at = UTC_TIMESTAMP()`
	_, err := r.DB.ExecContext(ctx, q,
		accountID, in.Email, in.Age, in.HeightCm, in.WeightKg, in.Gender, in.Goal, in.Premium)
	if err != nil {
		return model.Profile{}, err
	}
	// Read the merged row back so the caller sees server-assigned timestamps.
	return r.Get(ctx, accountID)
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (model.Profile, error) {
	var (
		p        model.Profile
		email    sql.NullString
		age      sql.NullInt64
		heightCm sql.NullFloat64
		weightKg sql.NullFloat64
		gender   sql.NullString
		goal     sql.NullString
		premium  sql.NullBool
	)
	err := row.Scan(&p.AccountID, &email, &age, &heightCm, &weightKg,
		&gender, &goal, &premium, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Profile{}, err
	}
	if email.Valid {
		p.Email = &email.String
	}
	if age.Valid {
		v := uint32(age.Int64)
		p.Age = &v
	}
	if heightCm.Valid {
		p.HeightCm = &heightCm.Float64
	}
	if weightKg.Valid {
		p.WeightKg = &weightKg.Float64
	}
	if gender.Valid {
		p.Gender = &gender.String
	}
	if goal.Valid {
		p.Goal = &goal.String
	}
	if premium.Valid {
		p.Premium = &premium.Bool
	}
	return p, nil
}

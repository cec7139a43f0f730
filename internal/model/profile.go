package model

import "time"

// Profile is the per-account profile document stored in the
// `profiles` table, keyed 1:1 by account id. All attribute fields
// are pointers: a nil pointer means the column is NULL (never
// written), which is what lets the repository shallow-merge a
// partial update over the stored row without clobbering absent
// fields.
//
// Fields:
//  AccountID – owning account (profiles.account_id, primary key).
//  Email     – contact email address.
//  Age       – age in years.
//  HeightCm  – height in centimeters.
//  WeightKg  – weight in kilograms.
//  Gender    – free-form gender string.
//  Goal      – training goal (e.g. "lose_weight", "gain_muscle").
//  Premium   – whether the account has a premium subscription.
//  CreatedAt – set once when the document is first written.
//  UpdatedAt – refreshed on every write.
type Profile struct {
	AccountID uint64    // profiles.account_id
	Email     *string   // profiles.email
	Age       *uint32   // profiles.age
	HeightCm  *float64  // profiles.height_cm
	WeightKg  *float64  // profiles.weight_kg
	Gender    *string   // profiles.gender
	Goal      *string   // profiles.goal
	Premium   *bool     // profiles.premium
	CreatedAt time.Time // profiles.created_at
	UpdatedAt time.Time // profiles.updated_at
}

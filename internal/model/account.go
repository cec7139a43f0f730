package model

import "time"

// Account represents a registered user as stored in the `accounts`
// table. The password hash column holds a bcrypt digest and must
// never be serialized into an API response; handlers define their
// own response types with only the public fields.
//
// Fields:
//  ID           – primary key identifier of the account.
//  Username     – unique login name, stored trimmed and lower-cased.
//  PasswordHash – bcrypt hash of the password (salt embedded).
//  CreatedAt    – timestamp of registration.
type Account struct {
	ID           uint64    // accounts.id
	Username     string    // accounts.username
	PasswordHash string    // accounts.password_hash
	CreatedAt    time.Time // accounts.created_at
}

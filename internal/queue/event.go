// Package queue defines message payloads exchanged over the message broker.
package queue

// AccountRegisteredEvent is published after a successful
// registration. It carries enough information for downstream
// consumers to send a welcome email or feed analytics without
// querying the primary database. The password hash is never part of
// the payload.
type AccountRegisteredEvent struct {
	AccountID    uint64 `json:"account_id"`
	Username     string `json:"username"`
	RegisteredAt string `json:"registered_at"`
}

// Package repository defines sentinel error values shared by the
// storage repositories. Handlers match on these with errors.Is to
// decide which HTTP status to return, so no driver-specific error
// text ever reaches a client.
package repository

import "errors"

// ErrUsernameTaken is returned when an insert into accounts hits
// the unique index on username. Handlers translate this into an
// HTTP 409 response.
var ErrUsernameTaken = errors.New("username already taken")

// ErrProfileNotFound is returned when no profile row exists for an
// account id. This is a legitimate empty state, not a fault;
// handlers translate it into an HTTP 404 response.
var ErrProfileNotFound = errors.New("profile not found")

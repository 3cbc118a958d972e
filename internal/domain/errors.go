package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, date not in the future).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrOwnerNotFound is returned when a trip or tour is created for a user id
// that does not exist. The wrapping message names the missing user id.
var ErrOwnerNotFound = errors.New("owner not found")

// ErrReconciliationMismatch is returned by a full user update when an
// incoming trip or tour id is not owned by the target user.
// The wrapping message names the offending id.
var ErrReconciliationMismatch = errors.New("reconciliation mismatch")

// ErrUnauthorized is returned by login for an unknown email or a password
// that does not match.
var ErrUnauthorized = errors.New("unauthorized")

// ErrIDExhausted is returned when every generated identifier collided with
// an existing row.
var ErrIDExhausted = errors.New("could not allocate a unique id")

package auth

import "errors"

// Domain outcomes surfaced as sentinel errors so handlers can map them to
// HTTP statuses without string matching.
var (
	// ErrAccountExists signals a signup with an already-taken username or email.
	ErrAccountExists = errors.New("an account with this username or email already exists")
	// ErrInvalidCredentials signals a login where the username or password did
	// not match. Callers cannot tell which.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

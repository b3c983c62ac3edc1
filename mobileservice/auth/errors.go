package auth

import "errors"

// Sentinel errors used across the auth package for stable error mapping.
var (
	// ErrNotLoggedIn indicates no current user is set on the manager.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrInvalidToken indicates the authentication token could not be parsed.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrNoUserID indicates a well-formed token that carries no usable user id claim.
	ErrNoUserID = errors.New("no user id in token")

	// ErrNoStore indicates a persistence operation on a manager configured without a store.
	ErrNoStore = errors.New("no credential store configured")
)

package repository

import "errors"

// Sentinel errors returned by the repositories.  Handlers compare with
// errors.Is and map these to HTTP status codes; anything else is treated
// as an internal error.
var (
	ErrEmailExists   = errors.New("email already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")
	ErrTokenInvalid  = errors.New("refresh token invalid or expired")
)

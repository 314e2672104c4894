package storage

import "errors"

// Common server storage errors
var (
	// ErrUserNotFound indicates that the user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates a duplicate username
	ErrUserAlreadyExists = errors.New("user already exists")
)

package storage

import "errors"

// Common client storage errors
var (
	// ErrDocumentNotFound indicates that no document exists for the id
	ErrDocumentNotFound = errors.New("document not found")

	// ErrConflict indicates an optimistic-concurrency collision on write
	ErrConflict = errors.New("document revision conflict")

	// ErrSessionNotFound indicates that no session token is stored
	ErrSessionNotFound = errors.New("session token not found")
)

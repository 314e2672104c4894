// Package storage defines the client-side local persistence contracts:
// a revisioned document store for offline caches and a key-value slot
// for the current session token.
package storage

import (
	"context"
	"encoding/json"
)

// Kind определяет тип документа в локальном хранилище
type Kind string

const (
	// KindCredentials — кешированные учетные данные пользователя
	KindCredentials Kind = "credentials"
	// KindDashboard — кешированный payload дашборда
	KindDashboard Kind = "dashboard"
)

// Document is a generic persisted record. ID is unique per logical entity.
// Rev is an opaque revision token: a Put succeeds only when the supplied
// revision matches the currently stored one (optimistic concurrency).
type Document struct {
	ID     string          `json:"id"`
	Rev    string          `json:"rev,omitempty"`
	Kind   Kind            `json:"kind"`
	Fields json.RawMessage `json:"fields"`
}

//go:generate moq -out document_mock.go . DocumentStore

// DocumentStore is the local document store contract.
//
// Contract:
//   - GetDocument returns ErrDocumentNotFound when the id is absent.
//   - PutDocument returns the new revision; it fails with ErrConflict when
//     the supplied revision does not match the stored one, or when the
//     document is new and a revision was supplied.
//   - DeleteDocument follows the same revision discipline.
//   - Upsert reads the current revision (if any), attaches it and puts;
//     on ErrConflict it re-reads the revision and retries exactly once,
//     surfacing the second conflict to the caller.
type DocumentStore interface {
	GetDocument(ctx context.Context, id string) (*Document, error)
	PutDocument(ctx context.Context, doc *Document) (string, error)
	DeleteDocument(ctx context.Context, id, rev string) error
	ListDocuments(ctx context.Context) ([]Document, error)
	Upsert(ctx context.Context, id string, kind Kind, fields any) error
}

//go:generate moq -out session_mock.go . SessionStore

// SessionStore holds the current session token. It is a single explicit
// object with one owner; every component needing the token gets it injected.
type SessionStore interface {
	// SetToken stores the session token, overwriting any previous one.
	SetToken(ctx context.Context, token string) error

	// Token returns the stored token or ErrSessionNotFound.
	Token(ctx context.Context) (string, error)

	// ClearToken removes the token. Clearing an absent token is not an error.
	ClearToken(ctx context.Context) error
}

// Package creds реализует offline-кеш учетных данных: после успешного
// онлайн-логина хеш пароля и токен сохраняются локально, что позволяет
// войти без сети с тем же паролем.
package creds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aemlabs/aemdash/internal/client/storage"
	"github.com/aemlabs/aemdash/internal/crypto"
	"github.com/aemlabs/aemdash/internal/validation"
)

// docPrefix префикс id документов с учетными данными
const docPrefix = "credentials_"

// Record is the persisted shape of one cached credential.
// Field names match the historical on-disk layout.
type Record struct {
	Username     string `json:"username"`     // case-folded username
	PasswordHash string `json:"passwordHash"` // дайджест пароля (см. internal/crypto)
	Token        string `json:"token"`        // токен последнего успешного логина
	LastLogin    int64  `json:"lastLogin"`    // unix millis последнего логина
}

// ValidationResult is the outcome of an offline credential check.
// Valid=false is a normal negative result, not an error.
type ValidationResult struct {
	Valid bool
	Token string
}

// Cache stores and validates per-user credential records in the local
// document store. One record per username; logins overwrite via upsert.
type Cache struct {
	store  storage.DocumentStore
	hasher *crypto.Hasher
	logger *slog.Logger
}

// New creates a credential cache over the given document store
func New(store storage.DocumentStore, hasher *crypto.Hasher, logger *slog.Logger) *Cache {
	return &Cache{
		store:  store,
		hasher: hasher,
		logger: logger,
	}
}

// DocumentID returns the document id for a username
func DocumentID(username string) string {
	return docPrefix + validation.NormalizeUsername(username)
}

// Store upserts the credential record for username after a successful
// online login. Overwrites any previous record for the same user.
func (c *Cache) Store(ctx context.Context, username, password, token string) error {
	record := Record{
		Username:     validation.NormalizeUsername(username),
		PasswordHash: c.hasher.Digest(password),
		Token:        token,
		LastLogin:    time.Now().UnixMilli(),
	}

	if err := c.store.Upsert(ctx, DocumentID(username), storage.KindCredentials, &record); err != nil {
		return fmt.Errorf("failed to store credentials for %s: %w", record.Username, err)
	}

	return nil
}

// Validate checks username/password against the cached record.
// Отсутствие записи — не ошибка, а {Valid:false}. Дайджест проверяется
// обоими алгоритмами хеширования (совместимость со старыми записями).
func (c *Cache) Validate(ctx context.Context, username, password string) (ValidationResult, error) {
	doc, err := c.store.GetDocument(ctx, DocumentID(username))
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return ValidationResult{}, nil
		}
		return ValidationResult{}, fmt.Errorf("failed to read credentials: %w", err)
	}

	var record Record
	if err := json.Unmarshal(doc.Fields, &record); err != nil {
		return ValidationResult{}, fmt.Errorf("failed to unmarshal credential record: %w", err)
	}

	if !c.hasher.Verify(password, record.PasswordHash) {
		return ValidationResult{}, nil
	}

	return ValidationResult{Valid: true, Token: record.Token}, nil
}

// Has reports whether a credential record exists for username.
// Дешевая проверка для выбора бюджета таймаута.
func (c *Cache) Has(ctx context.Context, username string) bool {
	_, err := c.store.GetDocument(ctx, DocumentID(username))
	return err == nil
}

// ClearCredentials removes all credential records, keeping other cached
// documents. Best-effort: individual failures are logged and skipped.
func (c *Cache) ClearCredentials(ctx context.Context) {
	c.clear(ctx, func(doc *storage.Document) bool {
		return doc.Kind == storage.KindCredentials
	})
}

// ClearAll removes every cached document (logout wipe). Best-effort.
func (c *Cache) ClearAll(ctx context.Context) {
	c.clear(ctx, func(doc *storage.Document) bool { return true })
}

func (c *Cache) clear(ctx context.Context, match func(*storage.Document) bool) {
	docs, err := c.store.ListDocuments(ctx)
	if err != nil {
		c.logger.Warn("failed to list documents for cleanup", "error", err)
		return
	}

	for i := range docs {
		doc := &docs[i]
		if !match(doc) {
			continue
		}
		if err := c.store.DeleteDocument(ctx, doc.ID, doc.Rev); err != nil {
			// Best-effort очистка: не прерываемся из-за одной записи
			c.logger.Warn("failed to delete cached document", "id", doc.ID, "error", err)
		}
	}
}

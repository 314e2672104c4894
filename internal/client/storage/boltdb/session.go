package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/aemlabs/aemdash/internal/client/storage"
)

var sessionTokenKey = []byte("token")

// SetToken stores the session token, overwriting any previous one
func (s *Storage) SetToken(ctx context.Context, token string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Put(sessionTokenKey, []byte(token)); err != nil {
			return fmt.Errorf("failed to save session token: %w", err)
		}

		return nil
	})
}

// Token returns the stored session token
func (s *Storage) Token(ctx context.Context) (string, error) {
	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(sessionTokenKey)
		if data == nil {
			return storage.ErrSessionNotFound
		}

		token = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return token, nil
}

// ClearToken removes the stored session token (logout)
// Удаление отсутствующего токена не является ошибкой
func (s *Storage) ClearToken(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Delete(sessionTokenKey); err != nil {
			return fmt.Errorf("failed to delete session token: %w", err)
		}

		return nil
	})
}

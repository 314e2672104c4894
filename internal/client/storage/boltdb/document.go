package boltdb

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/aemlabs/aemdash/internal/client/storage"
)

// GetDocument retrieves a document by id
func (s *Storage) GetDocument(ctx context.Context, id string) (*storage.Document, error) {
	var doc *storage.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return fmt.Errorf("documents bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrDocumentNotFound
		}

		doc = &storage.Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("failed to unmarshal document %s: %w", id, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// PutDocument writes a document, enforcing optimistic concurrency:
// doc.Rev must match the stored revision (or be empty for a new document).
// Returns the newly assigned revision.
func (s *Storage) PutDocument(ctx context.Context, doc *storage.Document) (string, error) {
	if doc.ID == "" {
		return "", fmt.Errorf("document id cannot be empty")
	}

	var newRev string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return fmt.Errorf("documents bucket not found")
		}

		generation := uint64(1)

		existing := bucket.Get([]byte(doc.ID))
		if existing == nil {
			// Новый документ не должен иметь ревизию
			if doc.Rev != "" {
				return storage.ErrConflict
			}
		} else {
			var current storage.Document
			if err := json.Unmarshal(existing, &current); err != nil {
				return fmt.Errorf("failed to unmarshal stored document %s: %w", doc.ID, err)
			}

			// Ревизия должна совпадать с текущей
			if doc.Rev != current.Rev {
				return storage.ErrConflict
			}

			generation = revGeneration(current.Rev) + 1
		}

		newRev = newRevision(generation)

		stored := storage.Document{
			ID:     doc.ID,
			Rev:    newRev,
			Kind:   doc.Kind,
			Fields: doc.Fields,
		}

		data, err := json.Marshal(&stored)
		if err != nil {
			return fmt.Errorf("failed to marshal document %s: %w", doc.ID, err)
		}

		return bucket.Put([]byte(doc.ID), data)
	})

	if err != nil {
		return "", err
	}

	return newRev, nil
}

// DeleteDocument removes a document; rev must match the stored revision
func (s *Storage) DeleteDocument(ctx context.Context, id, rev string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return fmt.Errorf("documents bucket not found")
		}

		existing := bucket.Get([]byte(id))
		if existing == nil {
			return storage.ErrDocumentNotFound
		}

		var current storage.Document
		if err := json.Unmarshal(existing, &current); err != nil {
			return fmt.Errorf("failed to unmarshal stored document %s: %w", id, err)
		}

		if rev != current.Rev {
			return storage.ErrConflict
		}

		return bucket.Delete([]byte(id))
	})
}

// ListDocuments returns all stored documents
func (s *Storage) ListDocuments(ctx context.Context) ([]storage.Document, error) {
	var docs []storage.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return fmt.Errorf("documents bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			var doc storage.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("failed to unmarshal document %s: %w", string(k), err)
			}
			docs = append(docs, doc)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return docs, nil
}

// Upsert writes fields under id regardless of whether the document exists.
// Читаем текущую ревизию, подставляем её и делаем Put; при конфликте —
// ровно одна повторная попытка со свежей ревизией, второй конфликт
// возвращается вызывающему.
func (s *Storage) Upsert(ctx context.Context, id string, kind storage.Kind, fields any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields for %s: %w", id, err)
	}

	put := func() error {
		doc := storage.Document{
			ID:     id,
			Kind:   kind,
			Fields: payload,
		}

		current, err := s.GetDocument(ctx, id)
		if err != nil && !errors.Is(err, storage.ErrDocumentNotFound) {
			return err
		}
		if current != nil {
			doc.Rev = current.Rev
		}

		_, err = s.PutDocument(ctx, &doc)
		return err
	}

	if err := put(); err != nil {
		if !errors.Is(err, storage.ErrConflict) {
			return err
		}
		// Конфликт — пробуем еще раз со свежей ревизией
		if err := put(); err != nil {
			return fmt.Errorf("failed to upsert %s after retry: %w", id, err)
		}
	}

	return nil
}

// newRevision возвращает ревизию вида "<generation>-<random hex>"
func newRevision(generation uint64) string {
	u := uuid.New()
	return strconv.FormatUint(generation, 10) + "-" + hex.EncodeToString(u[:])
}

// revGeneration извлекает номер поколения из ревизии; 0 для пустой/кривой
func revGeneration(rev string) uint64 {
	prefix, _, ok := strings.Cut(rev, "-")
	if !ok {
		return 0
	}
	gen, err := strconv.ParseUint(prefix, 10, 64)
	if err != nil {
		return 0
	}
	return gen
}

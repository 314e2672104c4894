package creds

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aemlabs/aemdash/internal/client/storage"
	"github.com/aemlabs/aemdash/internal/client/storage/boltdb"
	"github.com/aemlabs/aemdash/internal/crypto"
)

func newTestCache(t *testing.T, hasher *crypto.Hasher) (*Cache, *boltdb.Storage) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "testdb.db")
	store, err := boltdb.New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, hasher, logger), store
}

func TestDocumentID(t *testing.T) {
	// Username регистронезависимый: id всегда в нижнем регистре
	assert.Equal(t, "credentials_alice", DocumentID("alice"))
	assert.Equal(t, "credentials_alice", DocumentID("ALICE"))
	assert.Equal(t, "credentials_alice", DocumentID("  Alice "))
}

func TestStoreAndValidate(t *testing.T) {
	cache, _ := newTestCache(t, crypto.NewHasher())
	ctx := context.Background()

	err := cache.Store(ctx, "Alice", "secret123", "jwt-token")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		result, err := cache.Validate(ctx, "alice", "secret123")
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, "jwt-token", result.Token)
	})

	t.Run("case-insensitive username", func(t *testing.T) {
		result, err := cache.Validate(ctx, "ALICE", "secret123")
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("wrong password", func(t *testing.T) {
		// Неверный пароль — нормальный негативный результат, не ошибка
		result, err := cache.Validate(ctx, "alice", "wrong")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Empty(t, result.Token)
	})

	t.Run("unknown user", func(t *testing.T) {
		result, err := cache.Validate(ctx, "bob", "secret123")
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})
}

func TestStore_Overwrites(t *testing.T) {
	cache, _ := newTestCache(t, crypto.NewHasher())
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, "alice", "old-password", "old-token"))
	require.NoError(t, cache.Store(ctx, "alice", "new-password", "new-token"))

	// Старый пароль больше не проходит
	result, err := cache.Validate(ctx, "alice", "old-password")
	require.NoError(t, err)
	assert.False(t, result.Valid)

	result, err = cache.Validate(ctx, "alice", "new-password")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "new-token", result.Token)
}

func TestStore_RecordShape(t *testing.T) {
	cache, store := newTestCache(t, crypto.NewHasher())
	ctx := context.Background()

	before := time.Now().UnixMilli()
	require.NoError(t, cache.Store(ctx, "Alice", "secret123", "jwt-token"))

	doc, err := store.GetDocument(ctx, "credentials_alice")
	require.NoError(t, err)
	assert.Equal(t, storage.KindCredentials, doc.Kind)

	var record Record
	require.NoError(t, json.Unmarshal(doc.Fields, &record))
	assert.Equal(t, "alice", record.Username)
	assert.Equal(t, crypto.NewHasher().Digest("secret123"), record.PasswordHash)
	assert.Equal(t, "jwt-token", record.Token)
	assert.GreaterOrEqual(t, record.LastLogin, before)
}

func TestValidate_CrossAlgorithm(t *testing.T) {
	// Запись, сохраненная резервным алгоритмом, должна проходить проверку
	// обычным hasher'ом
	weakCache, store := newTestCache(t, crypto.NewFallbackHasher())
	ctx := context.Background()

	require.NoError(t, weakCache.Store(ctx, "alice", "secret123", "jwt-token"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	strongCache := New(store, crypto.NewHasher(), logger)

	result, err := strongCache.Validate(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "jwt-token", result.Token)

	result, err = strongCache.Validate(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestHas(t *testing.T) {
	cache, _ := newTestCache(t, crypto.NewHasher())
	ctx := context.Background()

	assert.False(t, cache.Has(ctx, "alice"))

	require.NoError(t, cache.Store(ctx, "alice", "secret123", "jwt-token"))

	assert.True(t, cache.Has(ctx, "alice"))
	assert.True(t, cache.Has(ctx, "ALICE"))
	assert.False(t, cache.Has(ctx, "bob"))
}

func TestClearCredentials(t *testing.T) {
	cache, store := newTestCache(t, crypto.NewHasher())
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, "alice", "secret123", "t1"))
	require.NoError(t, cache.Store(ctx, "bob", "hunter2", "t2"))

	// Документ другого типа должен пережить очистку учетных данных
	err := store.Upsert(ctx, "dashboard_cache", storage.KindDashboard, map[string]int{"cachedAt": 1})
	require.NoError(t, err)

	cache.ClearCredentials(ctx)

	assert.False(t, cache.Has(ctx, "alice"))
	assert.False(t, cache.Has(ctx, "bob"))

	_, err = store.GetDocument(ctx, "dashboard_cache")
	assert.NoError(t, err)
}

func TestClearAll(t *testing.T) {
	cache, store := newTestCache(t, crypto.NewHasher())
	ctx := context.Background()

	require.NoError(t, cache.Store(ctx, "alice", "secret123", "t1"))
	err := store.Upsert(ctx, "dashboard_cache", storage.KindDashboard, map[string]int{"cachedAt": 1})
	require.NoError(t, err)

	cache.ClearAll(ctx)

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestClear_EmptyStore(t *testing.T) {
	cache, _ := newTestCache(t, crypto.NewHasher())
	ctx := context.Background()

	// Очистка пустого хранилища не должна паниковать
	cache.ClearCredentials(ctx)
	cache.ClearAll(ctx)
}

// Package dashcache реализует кеш последнего успешно загруженного
// payload'а дашборда для offline-доступа.
package dashcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aemlabs/aemdash/internal/client/storage"
	"github.com/aemlabs/aemdash/internal/models"
)

// DocumentID id единственного документа-снапшота
const DocumentID = "dashboard_cache"

// Snapshot is the persisted shape of the cached dashboard payload.
// Field names match the historical on-disk layout.
type Snapshot struct {
	ChartDonut []models.ChartPoint `json:"chartDonut"`
	ChartBar   []models.ChartPoint `json:"chartBar"`
	TableUsers []models.TableUser  `json:"tableUsers"`
	CachedAt   int64               `json:"cachedAt"` // unix millis
}

// Data converts the snapshot back to the domain payload
func (s *Snapshot) Data() *models.DashboardData {
	return &models.DashboardData{
		Donut: s.ChartDonut,
		Bar:   s.ChartBar,
		Users: s.TableUsers,
	}
}

// CachedTime returns the snapshot timestamp
func (s *Snapshot) CachedTime() time.Time {
	return time.UnixMilli(s.CachedAt)
}

// Cache stores the single most-recent dashboard payload.
// Снапшот ровно один: каждый успешный онлайн-fetch перезаписывает его
// целиком (last-write-wins, без merge).
type Cache struct {
	store storage.DocumentStore
}

// New creates a dashboard cache over the given document store
func New(store storage.DocumentStore) *Cache {
	return &Cache{store: store}
}

// Store overwrites the singleton snapshot with fresh data and timestamp
func (c *Cache) Store(ctx context.Context, data *models.DashboardData) error {
	snapshot := Snapshot{
		ChartDonut: data.Donut,
		ChartBar:   data.Bar,
		TableUsers: data.Users,
		CachedAt:   time.Now().UnixMilli(),
	}

	if err := c.store.Upsert(ctx, DocumentID, storage.KindDashboard, &snapshot); err != nil {
		return fmt.Errorf("failed to store dashboard snapshot: %w", err)
	}

	return nil
}

// Fetch returns the cached snapshot, or nil when nothing was ever cached.
// Отсутствие снапшота — не ошибка.
func (c *Cache) Fetch(ctx context.Context) (*Snapshot, error) {
	doc, err := c.store.GetDocument(ctx, DocumentID)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read dashboard snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(doc.Fields, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard snapshot: %w", err)
	}

	return &snapshot, nil
}

// Exists reports whether a snapshot is cached without decoding the payload.
// Используется для выбора бюджета таймаута сетевого запроса.
func (c *Cache) Exists(ctx context.Context) bool {
	_, err := c.store.GetDocument(ctx, DocumentID)
	return err == nil
}

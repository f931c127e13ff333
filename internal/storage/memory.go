package storage

import (
	"context"
	"sync"
	"time"

	"github.com/atinyakov/go-deeplink-shortener/internal/models"
)

// MemoryStorage keeps records in process memory. It mirrors the Postgres
// store's semantics (sequential ids, one live row per hash, soft deletes) so
// the service behaves identically against either backend.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[int64]*models.URLRecord
	byHash  map[string]int64 // live rows only
	nextID  int64
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		records: make(map[int64]*models.URLRecord),
		byHash:  make(map[string]int64),
		nextID:  1,
	}, nil
}

func (m *MemoryStorage) CreateOrFind(_ context.Context, rec models.NewURLRecord) (*models.URLRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, exists := m.byHash[rec.HashedValue]; exists {
		return copyRecord(m.records[id]), false, nil
	}

	now := time.Now().UTC()
	stored := &models.URLRecord{
		ID:                 m.nextID,
		RandomKey:          rec.RandomKey,
		IOSDeepLink:        rec.IOSDeepLink,
		IOSFallbackURL:     rec.IOSFallbackURL,
		AndroidDeepLink:    rec.AndroidDeepLink,
		AndroidFallbackURL: rec.AndroidFallbackURL,
		DefaultFallbackURL: rec.DefaultFallbackURL,
		HashedValue:        rec.HashedValue,
		WebhookURL:         rec.WebhookURL,
		OGTitle:            rec.OGTitle,
		OGDescription:      rec.OGDescription,
		OGImageURL:         rec.OGImageURL,
		IsActive:           rec.IsActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	m.nextID++

	m.records[stored.ID] = stored
	m.byHash[stored.HashedValue] = stored.ID

	return copyRecord(stored), true, nil
}

func (m *MemoryStorage) FindByID(_ context.Context, id int64) (*models.URLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.records[id]
	if !exists || rec.DeletedAt != nil {
		return nil, ErrNotFound
	}

	return copyRecord(rec), nil
}

func (m *MemoryStorage) FindByHashedValue(_ context.Context, hash string) (*models.URLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.byHash[hash]
	if !exists {
		return nil, ErrNotFound
	}

	return copyRecord(m.records[id]), nil
}

func (m *MemoryStorage) FindByIDForCache(_ context.Context, id int64) (*models.CacheRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.records[id]
	if !exists || rec.DeletedAt != nil || !rec.IsActive {
		return nil, ErrNotFound
	}

	cr := rec.ToCacheRecord()
	return &cr, nil
}

func (m *MemoryStorage) SoftDeleteBatch(_ context.Context, ids []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	for _, id := range ids {
		rec, exists := m.records[id]
		if !exists || rec.DeletedAt != nil {
			continue
		}

		deletedAt := now
		rec.DeletedAt = &deletedAt
		rec.UpdatedAt = now
		delete(m.byHash, rec.HashedValue)
	}

	return nil
}

func (m *MemoryStorage) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.byHash)), nil
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return nil
}

func copyRecord(rec *models.URLRecord) *models.URLRecord {
	c := *rec
	if rec.DeletedAt != nil {
		t := *rec.DeletedAt
		c.DeletedAt = &t
	}
	return &c
}

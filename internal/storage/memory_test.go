package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/go-deeplink-shortener/internal/models"
)

func newTestRecord(hash string) models.NewURLRecord {
	return models.NewURLRecord{
		RandomKey:          "AbXy",
		DefaultFallbackURL: "https://example.com",
		IOSDeepLink:        "app://ios",
		HashedValue:        hash,
		IsActive:           true,
	}
}

func TestMemoryCreateOrFind(t *testing.T) {
	m, err := CreateMemoryStorage()
	require.NoError(t, err)

	rec, created, err := m.CreateOrFind(context.Background(), newTestRecord("hash-1"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1), rec.ID)
	assert.True(t, rec.IsLive())

	// Same hash returns the existing row
	again, created, err := m.CreateOrFind(context.Background(), newTestRecord("hash-1"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, rec.ID, again.ID)

	// Different hash gets the next id
	other, created, err := m.CreateOrFind(context.Background(), newTestRecord("hash-2"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(2), other.ID)
}

func TestMemoryCreateOrFindConcurrent(t *testing.T) {
	m, err := CreateMemoryStorage()
	require.NoError(t, err)

	const goroutines = 32

	var wg sync.WaitGroup
	ids := make([]int64, goroutines)
	createdFlags := make([]bool, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec, created, err := m.CreateOrFind(context.Background(), newTestRecord("same-hash"))
			require.NoError(t, err)
			ids[i] = rec.ID
			createdFlags[i] = created
		}(i)
	}
	wg.Wait()

	// Exactly one Created, everyone sees the same id
	createdCount := 0
	for i := 0; i < goroutines; i++ {
		if createdFlags[i] {
			createdCount++
		}
		assert.Equal(t, ids[0], ids[i])
	}
	assert.Equal(t, 1, createdCount)
}

func TestMemoryFindByID(t *testing.T) {
	m, _ := CreateMemoryStorage()

	rec, _, err := m.CreateOrFind(context.Background(), newTestRecord("hash-1"))
	require.NoError(t, err)

	found, err := m.FindByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", found.DefaultFallbackURL)

	_, err = m.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryFindByHashedValue(t *testing.T) {
	m, _ := CreateMemoryStorage()

	rec, _, err := m.CreateOrFind(context.Background(), newTestRecord("hash-1"))
	require.NoError(t, err)

	found, err := m.FindByHashedValue(context.Background(), "hash-1")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, found.ID)

	_, err = m.FindByHashedValue(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryFindByIDForCache(t *testing.T) {
	m, _ := CreateMemoryStorage()

	rec, _, err := m.CreateOrFind(context.Background(), newTestRecord("hash-1"))
	require.NoError(t, err)

	cached, err := m.FindByIDForCache(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, cached.ID)
	assert.Equal(t, "AbXy", cached.RandomKey)
	assert.Equal(t, "app://ios", cached.IOSDeepLink)
}

func TestMemoryFindByIDForCacheSkipsInactive(t *testing.T) {
	m, _ := CreateMemoryStorage()

	inactive := newTestRecord("hash-1")
	inactive.IsActive = false
	rec, _, err := m.CreateOrFind(context.Background(), inactive)
	require.NoError(t, err)

	_, err = m.FindByIDForCache(context.Background(), rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySoftDelete(t *testing.T) {
	m, _ := CreateMemoryStorage()

	rec, _, err := m.CreateOrFind(context.Background(), newTestRecord("hash-1"))
	require.NoError(t, err)

	require.NoError(t, m.SoftDeleteBatch(context.Background(), []int64{rec.ID, 999}))

	// Invisible everywhere after deletion
	_, err = m.FindByID(context.Background(), rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.FindByHashedValue(context.Background(), "hash-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.FindByIDForCache(context.Background(), rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The hash slot is free again; a re-create gets a fresh id
	again, created, err := m.CreateOrFind(context.Background(), newTestRecord("hash-1"))
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, rec.ID, again.ID)
}

func TestMemoryCount(t *testing.T) {
	m, _ := CreateMemoryStorage()

	_, _, _ = m.CreateOrFind(context.Background(), newTestRecord("hash-1"))
	rec, _, _ := m.CreateOrFind(context.Background(), newTestRecord("hash-2"))

	n, err := m.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, m.SoftDeleteBatch(context.Background(), []int64{rec.ID}))

	n, err = m.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

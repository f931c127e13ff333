// Package storage defines the store contract consumed by the URL service and
// provides the non-Postgres implementations used for tests and DSN-less runs.
package storage

import (
	"context"
	"errors"

	"github.com/atinyakov/go-deeplink-shortener/internal/models"
)

// ErrNotFound is returned when no live record matches a lookup. Soft-deleted
// rows are reported as not found everywhere except the audit lookup.
var ErrNotFound = errors.New("storage: url record not found")

// Store is the authoritative record store. Every lookup filters out
// soft-deleted rows; CreateOrFind enforces at most one live row per hash.
type Store interface {
	// CreateOrFind inserts the record, or returns the existing live record
	// with the same hashed value. The bool reports whether an insert happened.
	CreateOrFind(ctx context.Context, rec models.NewURLRecord) (*models.URLRecord, bool, error)

	// FindByID returns the live record with the given id.
	FindByID(ctx context.Context, id int64) (*models.URLRecord, error)

	// FindByHashedValue returns the live record with the given dedup hash.
	FindByHashedValue(ctx context.Context, hash string) (*models.URLRecord, error)

	// FindByIDForCache returns only the redirect-relevant projection of the
	// live, active record with the given id.
	FindByIDForCache(ctx context.Context, id int64) (*models.CacheRecord, error)

	// SoftDeleteBatch marks the given ids as deleted. Already-deleted and
	// unknown ids are skipped silently.
	SoftDeleteBatch(ctx context.Context, ids []int64) error

	// Count reports the number of live records.
	Count(ctx context.Context) (int64, error)

	// PingContext checks connectivity to the backing store.
	PingContext(ctx context.Context) error
}

package cache

import (
	"context"

	"github.com/atinyakov/go-deeplink-shortener/internal/models"
)

// Noop satisfies the cache contract when no redis address is configured.
// Every read is a miss, so the service goes straight to the store.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (Noop) Get(context.Context, int64) (*models.CacheRecord, bool) { return nil, false }

func (Noop) Put(context.Context, *models.CacheRecord) {}

func (Noop) Invalidate(context.Context, ...int64) {}

func (Noop) Ping(context.Context) error { return nil }

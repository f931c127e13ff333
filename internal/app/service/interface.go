package service

import (
	"context"

	"github.com/atinyakov/go-deeplink-shortener/internal/models"
)

// RedirectCache is the cache-aside layer consumed by the URL service.
// Implementations must be best effort: Get reports a miss on any failure,
// Put and Invalidate never surface errors.
type RedirectCache interface {
	Get(ctx context.Context, id int64) (*models.CacheRecord, bool)
	Put(ctx context.Context, rec *models.CacheRecord)
	Invalidate(ctx context.Context, ids ...int64)
	Ping(ctx context.Context) error
}

// Notifier dispatches a fire-and-forget webhook notification.
type Notifier interface {
	Dispatch(webhookURL, shortKey, userAgent string)
}

// URLServiceIface is the API the HTTP handlers program against.
type URLServiceIface interface {
	CreateShortURL(ctx context.Context, req models.CreateURLRequest) (string, bool, error)
	ResolveRedirect(ctx context.Context, shortKey, userAgent string) (*models.CacheRecord, error)
	DeleteShortURLs(shortKeys []string)
	Stats(ctx context.Context) (int64, error)
	PingContext(ctx context.Context) error
	CachePing(ctx context.Context) error
}

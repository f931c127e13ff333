// Package service implements the URL shortening core: deduplicated creation,
// cache-aside redirect resolution, platform targeting and asynchronous
// deactivation.
package service

import (
	"context"
	"errors"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/atinyakov/go-deeplink-shortener/internal/models"
	"github.com/atinyakov/go-deeplink-shortener/internal/storage"
	"github.com/atinyakov/go-deeplink-shortener/internal/worker"
	"github.com/atinyakov/go-deeplink-shortener/pkg/shortkey"
)

// ErrMissingFallback is returned when a creation request has no default
// fallback URL.
var ErrMissingFallback = errors.New("service: default fallback url is required")

const randomKeyChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// URLService wires the store, the redirect cache, the webhook dispatcher and
// the deactivation worker together.
type URLService struct {
	store    storage.Store
	cache    RedirectCache
	notifier Notifier
	logger   *zap.Logger
	deleteCh chan<- int64
}

// NewURL builds the service and starts the deactivation worker.
func NewURL(store storage.Store, cache RedirectCache, notifier Notifier, logger *zap.Logger) *URLService {
	w := worker.NewDeactivationWorker(logger, store, cache)
	go w.Flush()

	return &URLService{
		store:    store,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
		deleteCh: w.InChannel(),
	}
}

// CreateShortURL deduplicates and stores a creation request, returning the
// short key and whether a new record was created. Concurrent duplicate
// submissions are serialized by the store's live-hash constraint, so every
// caller gets the same short key back.
func (s *URLService) CreateShortURL(ctx context.Context, req models.CreateURLRequest) (string, bool, error) {
	if req.DefaultFallbackURL == "" {
		return "", false, ErrMissingFallback
	}

	rec := models.NewURLRecord{
		RandomKey:          genRandomKey(),
		IOSDeepLink:        req.IOSDeepLink,
		IOSFallbackURL:     req.IOSFallbackURL,
		AndroidDeepLink:    req.AndroidDeepLink,
		AndroidFallbackURL: req.AndroidFallbackURL,
		DefaultFallbackURL: req.DefaultFallbackURL,
		HashedValue:        Fingerprint(req),
		WebhookURL:         req.WebhookURL,
		OGTitle:            req.OGTitle,
		OGDescription:      req.OGDescription,
		OGImageURL:         req.OGImageURL,
		IsActive:           true,
	}

	stored, created, err := s.store.CreateOrFind(ctx, rec)
	if err != nil {
		return "", false, err
	}

	// An existing record keeps its original random key, so the returned
	// short key is stable across duplicate submissions.
	key, err := shortkey.Merge(stored.ID, stored.RandomKey)
	if err != nil {
		return "", false, err
	}

	return key, created, nil
}

// ResolveRedirect turns a short key into the record needed to render the
// redirect, reading through the cache and dispatching the webhook off the
// response path. Malformed keys, unknown ids, deactivated records and
// random-key mismatches are all reported as storage.ErrNotFound so a prober
// cannot tell them apart.
func (s *URLService) ResolveRedirect(ctx context.Context, key, userAgent string) (*models.CacheRecord, error) {
	id, randomKey, err := shortkey.Split(key)
	if err != nil {
		return nil, storage.ErrNotFound
	}

	if rec, ok := s.cache.Get(ctx, id); ok {
		if rec.RandomKey != randomKey || !rec.IsActive {
			return nil, storage.ErrNotFound
		}

		s.notifier.Dispatch(rec.WebhookURL, key, userAgent)
		return rec, nil
	}

	rec, err := s.store.FindByIDForCache(ctx, id)
	if err != nil {
		return nil, err
	}

	if rec.RandomKey != randomKey {
		return nil, storage.ErrNotFound
	}

	s.cache.Put(ctx, rec)
	s.notifier.Dispatch(rec.WebhookURL, key, userAgent)

	return rec, nil
}

// DeleteShortURLs queues the ids behind the given short keys for asynchronous
// soft deletion. Keys that do not parse are dropped; the response to the
// caller never depends on the outcome.
func (s *URLService) DeleteShortURLs(shortKeys []string) {
	for _, key := range shortKeys {
		id, _, err := shortkey.Split(key)
		if err != nil {
			s.logger.Debug("skipping malformed short key in delete request",
				zap.String("short_key", key))
			continue
		}

		s.deleteCh <- id
	}
}

// Stats reports the number of live records.
func (s *URLService) Stats(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

func (s *URLService) PingContext(ctx context.Context) error {
	return s.store.PingContext(ctx)
}

// CachePing checks the redirect cache; used by the readiness probe.
func (s *URLService) CachePing(ctx context.Context) error {
	return s.cache.Ping(ctx)
}

func genRandomKey() string {
	b := make([]byte, shortkey.RandomKeyLen)
	for i := range b {
		b[i] = randomKeyChars[rand.IntN(len(randomKeyChars))]
	}
	return string(b)
}

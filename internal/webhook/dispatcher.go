// Package webhook delivers fire-and-forget redirect notifications.
//
// Delivery is best effort and at most once: when the concurrency limit is
// reached new notifications are dropped, and a failed or timed-out POST is
// never retried. Losing notifications under load is the accepted trade-off
// for never slowing down a redirect.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Payload is the JSON body POSTed to the webhook URL.
type Payload struct {
	ShortKey  string `json:"short_key"`
	UserAgent string `json:"user_agent"`
	Timestamp string `json:"timestamp"`
}

// Dispatcher sends webhook notifications bounded by a counting limiter.
// The limiter is injected at construction so tests can run with a small
// permit count.
type Dispatcher struct {
	sem     *semaphore.Weighted
	client  *http.Client
	timeout time.Duration
	logger  *zap.Logger

	dropped   atomic.Int64
	failed    atomic.Int64
	delivered atomic.Int64
}

// NewDispatcher builds a dispatcher allowing at most maxConcurrent in-flight
// deliveries, each bounded by timeout.
func NewDispatcher(maxConcurrent int64, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		sem: semaphore.NewWeighted(maxConcurrent),
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
		logger:  logger,
	}
}

// Dispatch sends a notification for one resolved redirect. It returns
// immediately: if no permit is available the notification is dropped, and
// otherwise the POST runs in a detached goroutine with its own deadline,
// unaffected by the caller's request finishing.
func (d *Dispatcher) Dispatch(webhookURL, shortKey, userAgent string) {
	if webhookURL == "" {
		return
	}

	if !d.sem.TryAcquire(1) {
		d.dropped.Add(1)
		d.logger.Warn("webhook limit reached, notification dropped",
			zap.String("short_key", shortKey))
		return
	}

	go func() {
		defer d.sem.Release(1)

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.send(ctx, webhookURL, shortKey, userAgent); err != nil {
			d.failed.Add(1)
			d.logger.Warn("webhook delivery failed",
				zap.String("short_key", shortKey), zap.Error(err))
			return
		}

		d.delivered.Add(1)
	}()
}

func (d *Dispatcher) send(ctx context.Context, webhookURL, shortKey, userAgent string) error {
	body, err := json.Marshal(Payload{
		ShortKey:  shortKey,
		UserAgent: userAgent,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		d.logger.Warn("webhook returned non-success status",
			zap.String("short_key", shortKey), zap.Int("status", resp.StatusCode))
	}

	return nil
}

// Stats reports delivered, dropped and failed notification counts.
func (d *Dispatcher) Stats() (delivered, dropped, failed int64) {
	return d.delivered.Load(), d.dropped.Load(), d.failed.Load()
}

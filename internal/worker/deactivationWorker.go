// Package worker batches soft-delete requests so DELETE handlers can answer
// without waiting for the database.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Repo interface {
	SoftDeleteBatch(ctx context.Context, ids []int64) error
}

// Invalidator evicts cached redirect records after deactivation.
type Invalidator interface {
	Invalidate(ctx context.Context, ids ...int64)
}

const (
	batchSize     = 25
	flushInterval = 10 * time.Second
	flushTimeout  = 3 * time.Second
)

type DeactivationWorker struct {
	in          chan int64
	logger      *zap.Logger
	repo        Repo
	invalidator Invalidator
}

func NewDeactivationWorker(logger *zap.Logger, repo Repo, invalidator Invalidator) *DeactivationWorker {
	return &DeactivationWorker{
		in:          make(chan int64),
		logger:      logger,
		repo:        repo,
		invalidator: invalidator,
	}
}

func (w *DeactivationWorker) InChannel() chan<- int64 {
	return w.in
}

// Flush accumulates ids and soft-deletes them in batches, either when the
// batch is full or on the ticker. Deactivated ids are evicted from the cache
// right after the database write so stale entries cannot outlive a delete by
// more than one flush. Runs until the process exits.
func (w *DeactivationWorker) Flush() {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	var ids []int64

	flush := func() {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()

		if err := w.repo.SoftDeleteBatch(ctx, ids); err != nil {
			// Dropped on failure; the records stay live and the caller
			// already got its 202, so there is nothing to answer to.
			w.logger.Error("cannot deactivate records", zap.Error(err), zap.Int("count", len(ids)))
			ids = ids[:0]
			return
		}

		w.invalidator.Invalidate(ctx, ids...)
		w.logger.Info("deactivated records", zap.Int("count", len(ids)))
		ids = ids[:0]
	}

	for {
		select {
		case id := <-w.in:
			ids = append(ids, id)
			if len(ids) >= batchSize {
				flush()
			}
		case <-ticker.C:
			if len(ids) == 0 {
				continue
			}
			flush()
		}
	}
}

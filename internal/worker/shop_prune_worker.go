package worker

import (
	"context"
	"sync"
	"time"

	"github.com/RobNel12/newbot-ai/internal/logger"
)

// Pruner deletes stored daily shops older than the retention window
type Pruner interface {
	Prune(ctx context.Context, now time.Time, retentionDays int) (int64, error)
}

// ShopPruneWorker drops old shop cache rows shortly after each UTC midnight
type ShopPruneWorker struct {
	pruner        Pruner
	retentionDays int
	now           func() time.Time

	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewShopPruneWorker creates a worker keeping retentionDays of shops
func NewShopPruneWorker(pruner Pruner, retentionDays int) *ShopPruneWorker {
	return &ShopPruneWorker{
		pruner:        pruner,
		retentionDays: retentionDays,
		now:           time.Now,
		shutdown:      make(chan struct{}),
	}
}

// Start prunes once in the background and schedules the nightly run
func (w *ShopPruneWorker) Start() {
	w.executePrune()
	w.scheduleNext()
}

// RunOnce prunes synchronously
func (w *ShopPruneWorker) RunOnce(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShopPruneStarting, "retention_days", w.retentionDays)

	n, err := w.pruner.Prune(ctx, w.now().UTC(), w.retentionDays)
	if err != nil {
		log.Error(LogMsgShopPruneFailed, "error", err)
		return 0, err
	}

	log.Info(LogMsgShopPruneCompleted, "rows_deleted", n)
	return n, nil
}

func (w *ShopPruneWorker) scheduleNext() {
	duration := untilNextPrune(w.now())
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdown:
		return
	default:
	}

	if w.timer != nil {
		w.timer.Stop()
	}

	if duration > StandbyThreshold {
		wait := duration - StandbyLead
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		log.Info(LogMsgShopPruneStandby, "next_check_at", w.now().UTC().Add(wait))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// More than a few seconds left means the timer fired early; less
		// than LateFireWindow means the target has not passed yet.
		if rem := untilNextPrune(w.now()); rem > EarlyFireTolerance && rem < LateFireWindow {
			w.scheduleNext()
			return
		}

		w.executePrune()
		w.scheduleNext()
	})
	log.Info(LogMsgShopPruneScheduled, "next_prune_at", w.now().UTC().Add(duration))
}

// executePrune runs one prune in a tracked goroutine
func (w *ShopPruneWorker) executePrune() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		_, _ = w.RunOnce(context.Background())
	}()
}

// Shutdown cancels the pending timer and waits for an in-flight prune
func (w *ShopPruneWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShopPruneShutdown)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
		log.Info(LogMsgShopPruneCancelled)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShopPruneStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShopPruneTimeout)
		return ctx.Err()
	}
}

// untilNextPrune is the wait until PruneOffset past the next UTC midnight
func untilNextPrune(now time.Time) time.Duration {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(PruneOffset)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

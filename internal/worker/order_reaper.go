package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
)

// ShopFacade exposes the subset of application functionality required by the reaper.
type ShopFacade interface {
	StalePendingOrders(ctx context.Context, age time.Duration, limit int) ([]string, error)
	CancelPendingOrder(ctx context.Context, orderID string) error
}

// OrderReaper cancels orders stuck in pending longer than the configured TTL,
// returning their reserved stock to the catalog. A pool of workers processes
// the stale ids concurrently; each cancellation is its own transaction, so a
// pending order that gets confirmed mid-sweep simply loses the race.
type OrderReaper struct {
	facade       ShopFacade
	pollInterval time.Duration
	pendingTTL   time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan string
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOrderReaper constructs the reaper worker pool. A non-positive pendingTTL
// disables it.
func NewOrderReaper(facade ShopFacade, pollInterval, pendingTTL time.Duration, batchSize, workers int, logger *slog.Logger) *OrderReaper {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OrderReaper{
		facade:       facade,
		pollInterval: pollInterval,
		pendingTTL:   pendingTTL,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan string, batchSize*workers),
	}
}

// Enabled reports whether the reaper will run at all.
func (p *OrderReaper) Enabled() bool {
	return p.pendingTTL > 0
}

// Start launches background processing.
func (p *OrderReaper) Start(ctx context.Context) {
	if !p.Enabled() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *OrderReaper) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *OrderReaper) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *OrderReaper) fetchAndDispatch(ctx context.Context) {
	ids, err := p.facade.StalePendingOrders(ctx, p.pendingTTL, p.batchSize)
	if err != nil {
		p.logger.Error("fetch stale pending orders failed", slog.String("error", err.Error()))
		return
	}
	for _, id := range ids {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- id:
		}
	}
}

func (p *OrderReaper) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case orderID, ok := <-p.jobs:
			if !ok {
				return
			}
			p.reap(ctx, orderID)
		}
	}
}

func (p *OrderReaper) reap(ctx context.Context, orderID string) {
	err := p.facade.CancelPendingOrder(ctx, orderID)
	switch {
	case err == nil:
		p.logger.Info("stale pending order cancelled", slog.String("order", orderID))
	case errors.Is(err, domainErrors.ErrInvalidState), errors.Is(err, domainErrors.ErrNotFound):
		// Another transaction moved the order on; nothing to do.
	default:
		p.logger.Error("cancel stale order failed", slog.String("order", orderID), slog.String("error", err.Error()))
	}
}

package test

import (
	"context"
	"sync"
	"time"
)

// ReaperFacadeStub simulates the stale order feed consumed by the reaper.
// Batches are handed out one sweep at a time; cancelled ids are recorded.
type ReaperFacadeStub struct {
	sync.Mutex

	Batches   [][]string
	ListErr   error
	CancelFn  func(ctx context.Context, orderID string) error
	Cancelled []string

	sweep int
}

// StalePendingOrders pops the next configured batch.
func (s *ReaperFacadeStub) StalePendingOrders(ctx context.Context, age time.Duration, limit int) ([]string, error) {
	s.Lock()
	defer s.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	if s.sweep >= len(s.Batches) {
		return nil, nil
	}
	batch := s.Batches[s.sweep]
	s.sweep++
	return batch, nil
}

// CancelPendingOrder records the cancellation.
func (s *ReaperFacadeStub) CancelPendingOrder(ctx context.Context, orderID string) error {
	s.Lock()
	s.Cancelled = append(s.Cancelled, orderID)
	s.Unlock()
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID)
	}
	return nil
}

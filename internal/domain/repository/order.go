package repository

import (
	"context"
	"time"

	"github.com/sweetworks/sweetshop/internal/domain/model"
)

// OrderRepository describes persistence operations for orders. Create is the
// atomic order-placement transaction: stock checks, price capture, item
// inserts, and quantity decrements all commit or all roll back.
type OrderRepository interface {
	Create(ctx context.Context, userID string, lines []model.OrderLineInput, meta model.OrderMeta) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error)

	// ListStalePendingIDs returns up to limit ids of orders that have sat
	// in pending longer than age.
	ListStalePendingIDs(ctx context.Context, age time.Duration, limit int) ([]string, error)
	// CancelPendingOrder cancels the order and restores its line quantities
	// to stock in one transaction. The status is re-checked under the row
	// lock; a non-pending order fails with ErrInvalidState.
	CancelPendingOrder(ctx context.Context, orderID string) error
}

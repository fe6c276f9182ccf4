package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
	"github.com/sweetworks/sweetshop/internal/domain/repository"
)

// OrderUseCase encapsulates the order transaction engine: placement,
// authorized reads, and the role-scoped partial update.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// PlaceOrder validates the requested lines and commits the order atomically.
// Validation failures are rejected before any store access. Duplicate sweet
// ids stay separate lines and are evaluated sequentially in input order.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, userID string, lines []model.OrderLineInput, meta model.OrderMeta) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domainErrors.ErrInvalidInput)
	}
	for _, line := range lines {
		if line.SweetID == "" {
			return nil, fmt.Errorf("%w: missing sweet id", domainErrors.ErrInvalidInput)
		}
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", domainErrors.ErrInvalidInput)
		}
	}

	return u.orders.Create(ctx, userID, lines, meta)
}

// Get returns the order if the requester owns it or is an admin.
func (u *OrderUseCase) Get(ctx context.Context, orderID, requesterID string, isAdmin bool) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID && !isAdmin {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListAll returns every order; callers must gate this behind the admin role.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// Update applies a partial order update under the role rules: non-admin
// requesters must own the order, may never touch status, and may only patch
// shipping metadata while the order is still pending. Admins may set any
// known status value on a non-terminal order; delivered and cancelled
// orders are immutable.
func (u *OrderUseCase) Update(ctx context.Context, orderID, requesterID string, isAdmin bool, patch model.OrderPatch) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin {
		if order.UserID != requesterID {
			return nil, domainErrors.ErrForbidden
		}
		if patch.Status != nil {
			return nil, domainErrors.ErrForbidden
		}
		if order.Status != model.OrderStatusPending {
			return nil, domainErrors.ErrInvalidState
		}
	}

	if order.Status.Terminal() {
		return nil, fmt.Errorf("%w: order is %s", domainErrors.ErrInvalidState, order.Status)
	}
	if patch.Status != nil && !model.ValidOrderStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: unknown order status %q", domainErrors.ErrInvalidInput, *patch.Status)
	}

	return u.orders.Update(ctx, orderID, patch)
}

// StalePendingOrders returns ids of orders stuck in pending longer than age.
func (u *OrderUseCase) StalePendingOrders(ctx context.Context, age time.Duration, limit int) ([]string, error) {
	return u.orders.ListStalePendingIDs(ctx, age, limit)
}

// CancelPendingOrder cancels one pending order and restores its stock.
func (u *OrderUseCase) CancelPendingOrder(ctx context.Context, orderID string) error {
	return u.orders.CancelPendingOrder(ctx, orderID)
}

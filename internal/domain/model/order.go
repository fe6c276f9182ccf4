package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known status value.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Order is a priced multi-line purchase record owned by a user. TotalAmount
// equals the exact sum of its item totals.
type Order struct {
	ID              string
	UserID          string
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	ShippingAddress *string
	PaymentMethod   *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items     []OrderItem
	UserEmail string
}

// OrderItem is one sweet/quantity pair within an order. UnitPrice is copied
// from the sweet row at commit time and never changes afterwards, which is
// what makes the order a financial record rather than a live view.
type OrderItem struct {
	ID         string
	OrderID    string
	SweetID    string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	CreatedAt  time.Time

	// Display fields captured at read time, not persisted on the line.
	SweetName     string
	SweetImageURL *string
}

// OrderLineInput is one requested line of a placement request. Any
// client-supplied price is dropped before this point.
type OrderLineInput struct {
	SweetID  string
	Quantity int
}

// OrderMeta carries the optional shipping metadata of a placement request.
type OrderMeta struct {
	ShippingAddress *string
	PaymentMethod   *string
	Notes           *string
}

// OrderPatch is an explicit partial update. Nil fields are left untouched;
// which fields a caller may set depends on their role and the order state.
type OrderPatch struct {
	Status          *OrderStatus
	ShippingAddress *string
	PaymentMethod   *string
	Notes           *string
}

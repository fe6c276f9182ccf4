package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest is one requested line. unit_price is accepted for client
// convenience but ignored: pricing is always server-authoritative.
type OrderItemRequest struct {
	SweetID   string           `json:"sweet_id"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// OrderCreateRequest describes the order placement payload.
type OrderCreateRequest struct {
	ShippingAddress *string            `json:"shipping_address"`
	PaymentMethod   *string            `json:"payment_method"`
	Notes           *string            `json:"notes"`
	Items           []OrderItemRequest `json:"items"`
}

// OrderUpdateRequest is the partial order update; absent fields stay
// untouched. Status is admin-only.
type OrderUpdateRequest struct {
	Status          *string `json:"status"`
	ShippingAddress *string `json:"shipping_address"`
	PaymentMethod   *string `json:"payment_method"`
	Notes           *string `json:"notes"`
}

// OrderItemResponse is one persisted line with display fields captured at
// read time.
type OrderItemResponse struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"order_id"`
	SweetID       string          `json:"sweet_id"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	CreatedAt     time.Time       `json:"created_at"`
	SweetName     string          `json:"sweet_name"`
	SweetImageURL *string         `json:"sweet_image_url,omitempty"`
}

// OrderResponse describes a full order aggregate.
type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	ShippingAddress *string             `json:"shipping_address,omitempty"`
	PaymentMethod   *string             `json:"payment_method,omitempty"`
	Notes           *string             `json:"notes,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	OrderItems      []OrderItemResponse `json:"order_items"`
	UserEmail       string              `json:"user_email,omitempty"`
}

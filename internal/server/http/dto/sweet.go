package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SweetCreateRequest describes the admin catalog-create payload.
type SweetCreateRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	ImageURL    *string         `json:"image_url"`
	Description *string         `json:"description"`
}

// SweetUpdateRequest is a partial admin update; absent fields stay untouched.
type SweetUpdateRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	ImageURL    *string          `json:"image_url"`
	Description *string          `json:"description"`
}

// SweetResponse describes one catalog item. Rating fields are present on
// read-side listings where they are computed.
type SweetResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	ImageURL    *string         `json:"image_url,omitempty"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	AvgRating   *float64        `json:"avg_rating,omitempty"`
	ReviewCount *int            `json:"review_count,omitempty"`
}

// PriceRangeResponse is the catalog-wide min/max price aggregate.
type PriceRangeResponse struct {
	MinPrice decimal.Decimal `json:"min_price"`
	MaxPrice decimal.Decimal `json:"max_price"`
}

// PurchaseRequest describes the quick-purchase payload.
type PurchaseRequest struct {
	Quantity int `json:"quantity"`
}

// PurchaseResponse describes a recorded quick purchase.
type PurchaseResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	SweetID    string          `json:"sweet_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

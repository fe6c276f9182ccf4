package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sweet is a purchasable catalog item with a fixed-point price and on-hand
// quantity. Quantity is mutated only by the order engine, the quick-purchase
// path, restock, and admin updates.
type Sweet struct {
	ID          string
	Name        string
	Category    string
	Price       decimal.Decimal
	Quantity    int
	ImageURL    *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RatedSweet is a catalog item annotated with its read-side aggregate rating.
// The rating is recomputed per query and never persisted.
type RatedSweet struct {
	Sweet
	AvgRating   float64
	ReviewCount int
}

// SweetPatch carries the admin-mutable catalog fields. Nil fields are left
// untouched.
type SweetPatch struct {
	Name        *string
	Category    *string
	Price       *decimal.Decimal
	Quantity    *int
	ImageURL    *string
	Description *string
}

package model

import "github.com/shopspring/decimal"

// SweetSortKey enumerates the catalog sort columns.
type SweetSortKey string

const (
	SortByPrice     SweetSortKey = "price"
	SortByName      SweetSortKey = "name"
	SortByRating    SweetSortKey = "rating"
	SortByCreatedAt SweetSortKey = "created_at"
	SortByQuantity  SweetSortKey = "quantity"
	SortByCategory  SweetSortKey = "category"
)

// SweetFilter collects the catalog search criteria. Nil fields are not
// applied. Sorting defaults to created_at descending.
type SweetFilter struct {
	Query       *string
	Category    *string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	MinRating   *float64
	InStockOnly bool
	MinQuantity *int
	MaxQuantity *int

	SortBy         SweetSortKey
	SortDescending bool

	Skip  int
	Limit int
}

// PriceRange is the catalog-wide min/max price aggregate.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

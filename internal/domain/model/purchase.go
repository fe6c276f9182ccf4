package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the legacy single-item quick-purchase record. It shares the
// stock-decrement discipline with orders but keeps its own flat ledger.
type Purchase struct {
	ID         string
	UserID     string
	SweetID    string
	Quantity   int
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

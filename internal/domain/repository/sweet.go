package repository

import (
	"context"

	"github.com/sweetworks/sweetshop/internal/domain/model"
)

// SweetRepository describes persistence operations for catalog items.
// Restock and Purchase lock the sweet row before reading its quantity so
// concurrent mutators on the same item serialize.
type SweetRepository interface {
	Create(ctx context.Context, sweet *model.Sweet) (*model.Sweet, error)
	GetByID(ctx context.Context, id string) (*model.Sweet, error)
	Update(ctx context.Context, id string, patch model.SweetPatch) (*model.Sweet, error)
	Delete(ctx context.Context, id string) error

	ListWithRatings(ctx context.Context, skip, limit int) ([]model.RatedSweet, error)
	Search(ctx context.Context, filter model.SweetFilter) ([]model.RatedSweet, error)
	Categories(ctx context.Context) ([]string, error)
	PriceRange(ctx context.Context) (*model.PriceRange, error)

	Restock(ctx context.Context, id string, quantity int) (*model.Sweet, error)
	Purchase(ctx context.Context, sweetID, userID string, quantity int) (*model.Purchase, error)
}

package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
	"github.com/sweetworks/sweetshop/internal/domain/repository"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 100
)

// CatalogUseCase covers the catalog read side plus the admin CRUD, restock,
// and the legacy quick-purchase path.
type CatalogUseCase struct {
	sweets repository.SweetRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(sweets repository.SweetRepository) *CatalogUseCase {
	return &CatalogUseCase{sweets: sweets}
}

// Create adds a catalog item; admin only by routing.
func (u *CatalogUseCase) Create(ctx context.Context, sweet *model.Sweet) (*model.Sweet, error) {
	if sweet.Name == "" || sweet.Category == "" {
		return nil, fmt.Errorf("%w: name and category are required", domainErrors.ErrInvalidInput)
	}
	if !sweet.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", domainErrors.ErrInvalidInput)
	}
	if sweet.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", domainErrors.ErrInvalidInput)
	}
	return u.sweets.Create(ctx, sweet)
}

// Get fetches one catalog item.
func (u *CatalogUseCase) Get(ctx context.Context, id string) (*model.Sweet, error) {
	return u.sweets.GetByID(ctx, id)
}

// Update applies an admin patch.
func (u *CatalogUseCase) Update(ctx context.Context, id string, patch model.SweetPatch) (*model.Sweet, error) {
	if patch.Price != nil && !patch.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", domainErrors.ErrInvalidInput)
	}
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", domainErrors.ErrInvalidInput)
	}
	return u.sweets.Update(ctx, id, patch)
}

// Delete removes a catalog item.
func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	return u.sweets.Delete(ctx, id)
}

// List returns the catalog with read-side aggregate ratings.
func (u *CatalogUseCase) List(ctx context.Context, skip, limit int) ([]model.RatedSweet, error) {
	skip, limit = clampPage(skip, limit)
	return u.sweets.ListWithRatings(ctx, skip, limit)
}

// Search runs the filtered catalog query. Sorting defaults to creation time,
// newest first, when no key is supplied.
func (u *CatalogUseCase) Search(ctx context.Context, filter model.SweetFilter) ([]model.RatedSweet, error) {
	filter.Skip, filter.Limit = clampPage(filter.Skip, filter.Limit)
	if filter.SortBy == "" {
		filter.SortBy = model.SortByCreatedAt
		filter.SortDescending = true
	}
	return u.sweets.Search(ctx, filter)
}

// Categories returns the distinct category list.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	return u.sweets.Categories(ctx)
}

// PriceRange returns the catalog-wide min/max prices.
func (u *CatalogUseCase) PriceRange(ctx context.Context) (*model.PriceRange, error) {
	return u.sweets.PriceRange(ctx)
}

// Restock increments a sweet's on-hand quantity.
func (u *CatalogUseCase) Restock(ctx context.Context, id string, quantity int) (*model.Sweet, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: restock quantity must be positive", domainErrors.ErrInvalidInput)
	}
	return u.sweets.Restock(ctx, id, quantity)
}

// Purchase runs the legacy single-item quick-purchase.
func (u *CatalogUseCase) Purchase(ctx context.Context, sweetID, userID string, quantity int) (*model.Purchase, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: purchase quantity must be positive", domainErrors.ErrInvalidInput)
	}
	return u.sweets.Purchase(ctx, sweetID, userID, quantity)
}

func clampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return skip, limit
}

package repository

import (
	"context"

	"github.com/sweetworks/sweetshop/internal/domain/model"
)

// ReviewRepository describes persistence operations for reviews and the
// purchase-history lookups backing the eligibility gate.
type ReviewRepository interface {
	Create(ctx context.Context, userID, sweetID string, rating int, comment *string) (*model.Review, error)
	GetByID(ctx context.Context, id string) (*model.Review, error)
	ListBySweet(ctx context.Context, sweetID string) ([]model.Review, error)
	ListByUser(ctx context.Context, userID string) ([]model.Review, error)
	Update(ctx context.Context, id string, patch model.ReviewPatch) (*model.Review, error)
	Delete(ctx context.Context, id string) error

	// HasQualifyingOrder reports whether the user has an order containing
	// the sweet with status confirmed or delivered.
	HasQualifyingOrder(ctx context.Context, userID, sweetID string) (bool, error)
	// Exists reports whether the user already reviewed the sweet.
	Exists(ctx context.Context, userID, sweetID string) (bool, error)
	// ListReviewable returns purchased-and-unreviewed sweets, one entry per
	// distinct sweet.
	ListReviewable(ctx context.Context, userID string) ([]model.ReviewableItem, error)
}

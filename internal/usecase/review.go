package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
	"github.com/sweetworks/sweetshop/internal/domain/repository"
)

// ReviewUseCase enforces the purchase-history eligibility gate in front of
// review creation and owns the rest of the review lifecycle.
type ReviewUseCase struct {
	reviews repository.ReviewRepository
	sweets  repository.SweetRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository, sweets repository.SweetRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, sweets: sweets}
}

// Create checks the sweet exists, that the user has a confirmed or delivered
// order containing it, and that no prior review exists, then persists the
// review. A race between two creations resolves at the unique constraint.
func (u *ReviewUseCase) Create(ctx context.Context, userID, sweetID string, rating int, comment *string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domainErrors.ErrInvalidInput)
	}

	if _, err := u.sweets.GetByID(ctx, sweetID); err != nil {
		return nil, err
	}

	eligible, err := u.reviews.HasQualifyingOrder(ctx, userID, sweetID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, domainErrors.ErrNotEligible
	}

	exists, err := u.reviews.Exists(ctx, userID, sweetID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainErrors.ErrAlreadyExists
	}

	return u.reviews.Create(ctx, userID, sweetID, rating, comment)
}

// ListBySweet returns all reviews for one sweet.
func (u *ReviewUseCase) ListBySweet(ctx context.Context, sweetID string) ([]model.Review, error) {
	return u.reviews.ListBySweet(ctx, sweetID)
}

// ListByUser returns all reviews the user has written.
func (u *ReviewUseCase) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	return u.reviews.ListByUser(ctx, userID)
}

// Update lets the author change their rating or comment.
func (u *ReviewUseCase) Update(ctx context.Context, reviewID, requesterID string, patch model.ReviewPatch) (*model.Review, error) {
	if patch.Rating != nil && (*patch.Rating < 1 || *patch.Rating > 5) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domainErrors.ErrInvalidInput)
	}

	review, err := u.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != requesterID {
		return nil, domainErrors.ErrForbidden
	}

	return u.reviews.Update(ctx, reviewID, patch)
}

// Delete removes a review; allowed for the author or an admin.
func (u *ReviewUseCase) Delete(ctx context.Context, reviewID, requesterID string, isAdmin bool) error {
	review, err := u.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != requesterID && !isAdmin {
		return domainErrors.ErrForbidden
	}

	return u.reviews.Delete(ctx, reviewID)
}

// ListReviewable returns the user's purchased-and-unreviewed sweets.
func (u *ReviewUseCase) ListReviewable(ctx context.Context, userID string) ([]model.ReviewableItem, error) {
	return u.reviews.ListReviewable(ctx, userID)
}

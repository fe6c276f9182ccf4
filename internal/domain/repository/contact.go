package repository

import (
	"context"

	"github.com/sweetworks/sweetshop/internal/domain/model"
)

// ContactRepository describes persistence operations for contact submissions.
type ContactRepository interface {
	Create(ctx context.Context, form *model.ContactForm) (*model.ContactForm, error)
	List(ctx context.Context, unprocessedOnly bool) ([]model.ContactForm, error)
	Update(ctx context.Context, id string, patch model.ContactPatch) (*model.ContactForm, error)
	Delete(ctx context.Context, id string) error
}

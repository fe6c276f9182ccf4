package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
	"github.com/sweetworks/sweetshop/internal/domain/repository"
)

// ContactUseCase manages inbound contact submissions and their moderation.
type ContactUseCase struct {
	contacts repository.ContactRepository
}

// NewContactUseCase constructs ContactUseCase.
func NewContactUseCase(contacts repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contacts: contacts}
}

// Submit records a public contact submission.
func (u *ContactUseCase) Submit(ctx context.Context, form *model.ContactForm) (*model.ContactForm, error) {
	if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Message) == "" {
		return nil, fmt.Errorf("%w: name and message are required", domainErrors.ErrInvalidInput)
	}
	if !strings.Contains(form.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email", domainErrors.ErrInvalidInput)
	}
	return u.contacts.Create(ctx, form)
}

// List returns submissions, optionally only unprocessed ones.
func (u *ContactUseCase) List(ctx context.Context, unprocessedOnly bool) ([]model.ContactForm, error) {
	return u.contacts.List(ctx, unprocessedOnly)
}

// Update applies a moderation patch.
func (u *ContactUseCase) Update(ctx context.Context, id string, patch model.ContactPatch) (*model.ContactForm, error) {
	return u.contacts.Update(ctx, id, patch)
}

// Delete removes a submission.
func (u *ContactUseCase) Delete(ctx context.Context, id string) error {
	return u.contacts.Delete(ctx, id)
}

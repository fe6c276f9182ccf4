package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
	"github.com/sweetworks/sweetshop/internal/test"
)

func TestContactUseCaseSubmitValidation(t *testing.T) {
	repo := &test.ContactRepositoryStub{CreateFn: func(context.Context, *model.ContactForm) (*model.ContactForm, error) {
		t.Fatal("create should not be called for invalid input")
		return nil, nil
	}}
	uc := NewContactUseCase(repo)

	cases := []struct {
		name string
		form model.ContactForm
	}{
		{"missing name", model.ContactForm{Email: "a@b.example", Message: "hello"}},
		{"blank message", model.ContactForm{Name: "Ann", Email: "a@b.example", Message: "   "}},
		{"bad email", model.ContactForm{Name: "Ann", Email: "nowhere", Message: "hello"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := tc.form
			if _, err := uc.Submit(context.Background(), &form); !errors.Is(err, domainErrors.ErrInvalidInput) {
				t.Fatalf("expected invalid input error, got %v", err)
			}
		})
	}
}

func TestContactUseCaseSubmitSuccess(t *testing.T) {
	uc := NewContactUseCase(&test.ContactRepositoryStub{})

	form, err := uc.Submit(context.Background(), &model.ContactForm{
		Name:        "Ann",
		Email:       "a@b.example",
		Message:     "bulk order inquiry",
		IsBulkOrder: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.ID == "" {
		t.Fatal("expected assigned id")
	}
}

func TestContactUseCaseListPassesFlag(t *testing.T) {
	var gotFlag bool
	repo := &test.ContactRepositoryStub{ListFn: func(ctx context.Context, unprocessedOnly bool) ([]model.ContactForm, error) {
		gotFlag = unprocessedOnly
		return nil, nil
	}}
	uc := NewContactUseCase(repo)

	if _, err := uc.List(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotFlag {
		t.Fatal("unprocessed flag not forwarded")
	}
}

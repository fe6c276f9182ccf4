package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
	"github.com/sweetworks/sweetshop/internal/test"
)

func TestCatalogUseCaseCreateValidation(t *testing.T) {
	repo := &test.SweetRepositoryStub{CreateFn: func(context.Context, *model.Sweet) (*model.Sweet, error) {
		t.Fatal("create should not be called for invalid input")
		return nil, nil
	}}
	uc := NewCatalogUseCase(repo)

	cases := []struct {
		name  string
		sweet model.Sweet
	}{
		{"missing name", model.Sweet{Category: "chocolate", Price: decimal.NewFromInt(5), Quantity: 1}},
		{"missing category", model.Sweet{Name: "truffle", Price: decimal.NewFromInt(5), Quantity: 1}},
		{"zero price", model.Sweet{Name: "truffle", Category: "chocolate", Quantity: 1}},
		{"negative price", model.Sweet{Name: "truffle", Category: "chocolate", Price: decimal.NewFromInt(-1), Quantity: 1}},
		{"negative quantity", model.Sweet{Name: "truffle", Category: "chocolate", Price: decimal.NewFromInt(5), Quantity: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sweet := tc.sweet
			if _, err := uc.Create(context.Background(), &sweet); !errors.Is(err, domainErrors.ErrInvalidInput) {
				t.Fatalf("expected invalid input error, got %v", err)
			}
		})
	}
}

func TestCatalogUseCaseUpdateValidation(t *testing.T) {
	repo := &test.SweetRepositoryStub{UpdateFn: func(ctx context.Context, id string, patch model.SweetPatch) (*model.Sweet, error) {
		return &model.Sweet{ID: id}, nil
	}}
	uc := NewCatalogUseCase(repo)

	zero := decimal.Zero
	if _, err := uc.Update(context.Background(), "sweet-1", model.SweetPatch{Price: &zero}); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for zero price, got %v", err)
	}

	negative := -3
	if _, err := uc.Update(context.Background(), "sweet-1", model.SweetPatch{Quantity: &negative}); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for negative quantity, got %v", err)
	}

	name := "renamed"
	if _, err := uc.Update(context.Background(), "sweet-1", model.SweetPatch{Name: &name}); err != nil {
		t.Fatalf("valid patch failed: %v", err)
	}
}

func TestCatalogUseCaseListClampsPagination(t *testing.T) {
	repo := &test.SweetRepositoryStub{ListWithRatingsFn: func(ctx context.Context, skip, limit int) ([]model.RatedSweet, error) {
		if skip != 0 {
			t.Fatalf("negative skip must clamp to zero, got %d", skip)
		}
		if limit != maxPageLimit {
			t.Fatalf("limit must clamp to %d, got %d", maxPageLimit, limit)
		}
		return nil, nil
	}}
	uc := NewCatalogUseCase(repo)

	if _, err := uc.List(context.Background(), -5, 100000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCatalogUseCaseSearchDefaultsSort(t *testing.T) {
	repo := &test.SweetRepositoryStub{}
	uc := NewCatalogUseCase(repo)

	if _, err := uc.Search(context.Background(), model.SweetFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.Filters) != 1 {
		t.Fatalf("expected one search call, got %d", len(repo.Filters))
	}
	got := repo.Filters[0]
	if got.SortBy != model.SortByCreatedAt || !got.SortDescending {
		t.Fatalf("expected created_at desc default, got %s desc=%t", got.SortBy, got.SortDescending)
	}
	if got.Limit != defaultPageLimit {
		t.Fatalf("expected default limit %d, got %d", defaultPageLimit, got.Limit)
	}
}

func TestCatalogUseCaseSearchKeepsExplicitSort(t *testing.T) {
	repo := &test.SweetRepositoryStub{}
	uc := NewCatalogUseCase(repo)

	if _, err := uc.Search(context.Background(), model.SweetFilter{SortBy: model.SortByPrice}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.Filters[0]; got.SortBy != model.SortByPrice || got.SortDescending {
		t.Fatalf("explicit sort must survive, got %s desc=%t", got.SortBy, got.SortDescending)
	}
}

func TestCatalogUseCaseRestockRejectsNonPositive(t *testing.T) {
	repo := &test.SweetRepositoryStub{RestockFn: func(context.Context, string, int) (*model.Sweet, error) {
		t.Fatal("restock should not be called for invalid quantity")
		return nil, nil
	}}
	uc := NewCatalogUseCase(repo)

	for _, qty := range []int{0, -1} {
		if _, err := uc.Restock(context.Background(), "sweet-1", qty); !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for quantity %d, got %v", qty, err)
		}
	}
}

func TestCatalogUseCasePurchaseRejectsNonPositive(t *testing.T) {
	repo := &test.SweetRepositoryStub{PurchaseFn: func(context.Context, string, string, int) (*model.Purchase, error) {
		t.Fatal("purchase should not be called for invalid quantity")
		return nil, nil
	}}
	uc := NewCatalogUseCase(repo)

	if _, err := uc.Purchase(context.Background(), "sweet-1", "user-1", 0); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

package test

import (
	"context"
	"strconv"
	"time"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[string]*model.User
	Next  int
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: "user-" + strconv.Itoa(s.Next), Email: email, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// SweetRepositoryStub allows tests to customize catalog behaviour.
type SweetRepositoryStub struct {
	CreateFn          func(context.Context, *model.Sweet) (*model.Sweet, error)
	GetByIDFn         func(context.Context, string) (*model.Sweet, error)
	UpdateFn          func(context.Context, string, model.SweetPatch) (*model.Sweet, error)
	DeleteFn          func(context.Context, string) error
	ListWithRatingsFn func(context.Context, int, int) ([]model.RatedSweet, error)
	SearchFn          func(context.Context, model.SweetFilter) ([]model.RatedSweet, error)
	CategoriesFn      func(context.Context) ([]string, error)
	PriceRangeFn      func(context.Context) (*model.PriceRange, error)
	RestockFn         func(context.Context, string, int) (*model.Sweet, error)
	PurchaseFn        func(context.Context, string, string, int) (*model.Purchase, error)

	Sweets  []model.RatedSweet
	Filters []model.SweetFilter
}

func (s *SweetRepositoryStub) Create(ctx context.Context, sweet *model.Sweet) (*model.Sweet, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, sweet)
	}
	created := *sweet
	created.ID = "sweet-1"
	return &created, nil
}

func (s *SweetRepositoryStub) GetByID(ctx context.Context, id string) (*model.Sweet, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for i := range s.Sweets {
		if s.Sweets[i].ID == id {
			sweet := s.Sweets[i].Sweet
			return &sweet, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *SweetRepositoryStub) Update(ctx context.Context, id string, patch model.SweetPatch) (*model.Sweet, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *SweetRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s *SweetRepositoryStub) ListWithRatings(ctx context.Context, skip, limit int) ([]model.RatedSweet, error) {
	if s.ListWithRatingsFn != nil {
		return s.ListWithRatingsFn(ctx, skip, limit)
	}
	return s.Sweets, nil
}

func (s *SweetRepositoryStub) Search(ctx context.Context, filter model.SweetFilter) ([]model.RatedSweet, error) {
	s.Filters = append(s.Filters, filter)
	if s.SearchFn != nil {
		return s.SearchFn(ctx, filter)
	}
	return s.Sweets, nil
}

func (s *SweetRepositoryStub) Categories(ctx context.Context) ([]string, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return nil, nil
}

func (s *SweetRepositoryStub) PriceRange(ctx context.Context) (*model.PriceRange, error) {
	if s.PriceRangeFn != nil {
		return s.PriceRangeFn(ctx)
	}
	return &model.PriceRange{}, nil
}

func (s *SweetRepositoryStub) Restock(ctx context.Context, id string, quantity int) (*model.Sweet, error) {
	if s.RestockFn != nil {
		return s.RestockFn(ctx, id, quantity)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *SweetRepositoryStub) Purchase(ctx context.Context, sweetID, userID string, quantity int) (*model.Purchase, error) {
	if s.PurchaseFn != nil {
		return s.PurchaseFn(ctx, sweetID, userID, quantity)
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	CreateFn              func(context.Context, string, []model.OrderLineInput, model.OrderMeta) (*model.Order, error)
	GetByIDFn             func(context.Context, string) (*model.Order, error)
	ListByUserFn          func(context.Context, string) ([]model.Order, error)
	ListAllFn             func(context.Context) ([]model.Order, error)
	UpdateFn              func(context.Context, string, model.OrderPatch) (*model.Order, error)
	ListStalePendingIDsFn func(context.Context, time.Duration, int) ([]string, error)
	CancelPendingOrderFn  func(context.Context, string) error

	Orders    []model.Order
	Patches   []model.OrderPatch
	Cancelled []string
}

func (s *OrderRepositoryStub) Create(ctx context.Context, userID string, lines []model.OrderLineInput, meta model.OrderMeta) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, lines, meta)
	}
	return &model.Order{ID: "order-1", UserID: userID, Status: model.OrderStatusPending}, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Orders, nil
}

func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

func (s *OrderRepositoryStub) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	s.Patches = append(s.Patches, patch)
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	return s.GetByID(ctx, id)
}

func (s *OrderRepositoryStub) ListStalePendingIDs(ctx context.Context, age time.Duration, limit int) ([]string, error) {
	if s.ListStalePendingIDsFn != nil {
		return s.ListStalePendingIDsFn(ctx, age, limit)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) CancelPendingOrder(ctx context.Context, orderID string) error {
	s.Cancelled = append(s.Cancelled, orderID)
	if s.CancelPendingOrderFn != nil {
		return s.CancelPendingOrderFn(ctx, orderID)
	}
	return nil
}

// ReviewRepositoryStub allows tests to customize review behaviour.
type ReviewRepositoryStub struct {
	CreateFn             func(context.Context, string, string, int, *string) (*model.Review, error)
	GetByIDFn            func(context.Context, string) (*model.Review, error)
	ListBySweetFn        func(context.Context, string) ([]model.Review, error)
	ListByUserFn         func(context.Context, string) ([]model.Review, error)
	UpdateFn             func(context.Context, string, model.ReviewPatch) (*model.Review, error)
	DeleteFn             func(context.Context, string) error
	HasQualifyingOrderFn func(context.Context, string, string) (bool, error)
	ExistsFn             func(context.Context, string, string) (bool, error)
	ListReviewableFn     func(context.Context, string) ([]model.ReviewableItem, error)

	Reviews []model.Review
}

func (s *ReviewRepositoryStub) Create(ctx context.Context, userID, sweetID string, rating int, comment *string) (*model.Review, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, sweetID, rating, comment)
	}
	return &model.Review{ID: "review-1", UserID: userID, SweetID: sweetID, Rating: rating, Comment: comment}, nil
}

func (s *ReviewRepositoryStub) GetByID(ctx context.Context, id string) (*model.Review, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for i := range s.Reviews {
		if s.Reviews[i].ID == id {
			review := s.Reviews[i]
			return &review, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ReviewRepositoryStub) ListBySweet(ctx context.Context, sweetID string) ([]model.Review, error) {
	if s.ListBySweetFn != nil {
		return s.ListBySweetFn(ctx, sweetID)
	}
	return s.Reviews, nil
}

func (s *ReviewRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Reviews, nil
}

func (s *ReviewRepositoryStub) Update(ctx context.Context, id string, patch model.ReviewPatch) (*model.Review, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	return s.GetByID(ctx, id)
}

func (s *ReviewRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s *ReviewRepositoryStub) HasQualifyingOrder(ctx context.Context, userID, sweetID string) (bool, error) {
	if s.HasQualifyingOrderFn != nil {
		return s.HasQualifyingOrderFn(ctx, userID, sweetID)
	}
	return true, nil
}

func (s *ReviewRepositoryStub) Exists(ctx context.Context, userID, sweetID string) (bool, error) {
	if s.ExistsFn != nil {
		return s.ExistsFn(ctx, userID, sweetID)
	}
	return false, nil
}

func (s *ReviewRepositoryStub) ListReviewable(ctx context.Context, userID string) ([]model.ReviewableItem, error) {
	if s.ListReviewableFn != nil {
		return s.ListReviewableFn(ctx, userID)
	}
	return nil, nil
}

// ContactRepositoryStub allows tests to customize contact behaviour.
type ContactRepositoryStub struct {
	CreateFn func(context.Context, *model.ContactForm) (*model.ContactForm, error)
	ListFn   func(context.Context, bool) ([]model.ContactForm, error)
	UpdateFn func(context.Context, string, model.ContactPatch) (*model.ContactForm, error)
	DeleteFn func(context.Context, string) error

	Forms []model.ContactForm
}

func (s *ContactRepositoryStub) Create(ctx context.Context, form *model.ContactForm) (*model.ContactForm, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, form)
	}
	created := *form
	created.ID = "contact-1"
	return &created, nil
}

func (s *ContactRepositoryStub) List(ctx context.Context, unprocessedOnly bool) ([]model.ContactForm, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, unprocessedOnly)
	}
	return s.Forms, nil
}

func (s *ContactRepositoryStub) Update(ctx context.Context, id string, patch model.ContactPatch) (*model.ContactForm, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ContactRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

package test

import (
	"context"

	"github.com/sweetworks/sweetshop/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (string, error)
	UserByIDFn     func(context.Context, string) (*model.User, error)
}

// Register returns the created account for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return &model.User{ID: "user-1", Email: email}, "token", nil
}

// Authenticate returns the account for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: "user-1", Email: email}, "token", nil
}

// ParseToken returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

// UserByID resolves the requested account.
func (s AuthFacadeStub) UserByID(ctx context.Context, id string) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id}, nil
}

// CatalogFacadeStub simulates catalog facade interactions.
type CatalogFacadeStub struct {
	SweetsFn        func(context.Context, int, int) ([]model.RatedSweet, error)
	SearchSweetsFn  func(context.Context, model.SweetFilter) ([]model.RatedSweet, error)
	SweetFn         func(context.Context, string) (*model.Sweet, error)
	CreateSweetFn   func(context.Context, *model.Sweet) (*model.Sweet, error)
	UpdateSweetFn   func(context.Context, string, model.SweetPatch) (*model.Sweet, error)
	DeleteSweetFn   func(context.Context, string) error
	CategoriesFn    func(context.Context) ([]string, error)
	PriceRangeFn    func(context.Context) (*model.PriceRange, error)
	RestockSweetFn  func(context.Context, string, int) (*model.Sweet, error)
	PurchaseSweetFn func(context.Context, string, string, int) (*model.Purchase, error)
}

func (s CatalogFacadeStub) Sweets(ctx context.Context, skip, limit int) ([]model.RatedSweet, error) {
	if s.SweetsFn != nil {
		return s.SweetsFn(ctx, skip, limit)
	}
	return nil, nil
}

func (s CatalogFacadeStub) SearchSweets(ctx context.Context, filter model.SweetFilter) ([]model.RatedSweet, error) {
	if s.SearchSweetsFn != nil {
		return s.SearchSweetsFn(ctx, filter)
	}
	return nil, nil
}

func (s CatalogFacadeStub) Sweet(ctx context.Context, id string) (*model.Sweet, error) {
	if s.SweetFn != nil {
		return s.SweetFn(ctx, id)
	}
	return &model.Sweet{ID: id}, nil
}

func (s CatalogFacadeStub) CreateSweet(ctx context.Context, sweet *model.Sweet) (*model.Sweet, error) {
	if s.CreateSweetFn != nil {
		return s.CreateSweetFn(ctx, sweet)
	}
	created := *sweet
	created.ID = "sweet-1"
	return &created, nil
}

func (s CatalogFacadeStub) UpdateSweet(ctx context.Context, id string, patch model.SweetPatch) (*model.Sweet, error) {
	if s.UpdateSweetFn != nil {
		return s.UpdateSweetFn(ctx, id, patch)
	}
	return &model.Sweet{ID: id}, nil
}

func (s CatalogFacadeStub) DeleteSweet(ctx context.Context, id string) error {
	if s.DeleteSweetFn != nil {
		return s.DeleteSweetFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) Categories(ctx context.Context) ([]string, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return nil, nil
}

func (s CatalogFacadeStub) PriceRange(ctx context.Context) (*model.PriceRange, error) {
	if s.PriceRangeFn != nil {
		return s.PriceRangeFn(ctx)
	}
	return &model.PriceRange{}, nil
}

func (s CatalogFacadeStub) RestockSweet(ctx context.Context, id string, quantity int) (*model.Sweet, error) {
	if s.RestockSweetFn != nil {
		return s.RestockSweetFn(ctx, id, quantity)
	}
	return &model.Sweet{ID: id, Quantity: quantity}, nil
}

func (s CatalogFacadeStub) PurchaseSweet(ctx context.Context, sweetID, userID string, quantity int) (*model.Purchase, error) {
	if s.PurchaseSweetFn != nil {
		return s.PurchaseSweetFn(ctx, sweetID, userID, quantity)
	}
	return &model.Purchase{ID: "purchase-1", UserID: userID, SweetID: sweetID, Quantity: quantity}, nil
}

// OrderFacadeStub simulates order facade interactions.
type OrderFacadeStub struct {
	PlaceOrderFn  func(context.Context, string, []model.OrderLineInput, model.OrderMeta) (*model.Order, error)
	OrderFn       func(context.Context, string, string, bool) (*model.Order, error)
	MyOrdersFn    func(context.Context, string) ([]model.Order, error)
	AllOrdersFn   func(context.Context) ([]model.Order, error)
	UpdateOrderFn func(context.Context, string, string, bool, model.OrderPatch) (*model.Order, error)
}

func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID string, lines []model.OrderLineInput, meta model.OrderMeta) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, userID, lines, meta)
	}
	return &model.Order{ID: "order-1", UserID: userID, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, orderID, requesterID string, isAdmin bool) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID, requesterID, isAdmin)
	}
	return &model.Order{ID: orderID, UserID: requesterID}, nil
}

func (s OrderFacadeStub) MyOrders(ctx context.Context, userID string) ([]model.Order, error) {
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx, userID)
	}
	return nil, nil
}

func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return nil, nil
}

func (s OrderFacadeStub) UpdateOrder(ctx context.Context, orderID, requesterID string, isAdmin bool, patch model.OrderPatch) (*model.Order, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, orderID, requesterID, isAdmin, patch)
	}
	return &model.Order{ID: orderID, UserID: requesterID}, nil
}

// ReviewFacadeStub simulates review facade interactions.
type ReviewFacadeStub struct {
	CreateReviewFn    func(context.Context, string, string, int, *string) (*model.Review, error)
	ReviewsBySweetFn  func(context.Context, string) ([]model.Review, error)
	MyReviewsFn       func(context.Context, string) ([]model.Review, error)
	UpdateReviewFn    func(context.Context, string, string, model.ReviewPatch) (*model.Review, error)
	DeleteReviewFn    func(context.Context, string, string, bool) error
	ReviewableItemsFn func(context.Context, string) ([]model.ReviewableItem, error)
}

func (s ReviewFacadeStub) CreateReview(ctx context.Context, userID, sweetID string, rating int, comment *string) (*model.Review, error) {
	if s.CreateReviewFn != nil {
		return s.CreateReviewFn(ctx, userID, sweetID, rating, comment)
	}
	return &model.Review{ID: "review-1", UserID: userID, SweetID: sweetID, Rating: rating}, nil
}

func (s ReviewFacadeStub) ReviewsBySweet(ctx context.Context, sweetID string) ([]model.Review, error) {
	if s.ReviewsBySweetFn != nil {
		return s.ReviewsBySweetFn(ctx, sweetID)
	}
	return nil, nil
}

func (s ReviewFacadeStub) MyReviews(ctx context.Context, userID string) ([]model.Review, error) {
	if s.MyReviewsFn != nil {
		return s.MyReviewsFn(ctx, userID)
	}
	return nil, nil
}

func (s ReviewFacadeStub) UpdateReview(ctx context.Context, reviewID, requesterID string, patch model.ReviewPatch) (*model.Review, error) {
	if s.UpdateReviewFn != nil {
		return s.UpdateReviewFn(ctx, reviewID, requesterID, patch)
	}
	return &model.Review{ID: reviewID, UserID: requesterID}, nil
}

func (s ReviewFacadeStub) DeleteReview(ctx context.Context, reviewID, requesterID string, isAdmin bool) error {
	if s.DeleteReviewFn != nil {
		return s.DeleteReviewFn(ctx, reviewID, requesterID, isAdmin)
	}
	return nil
}

func (s ReviewFacadeStub) ReviewableItems(ctx context.Context, userID string) ([]model.ReviewableItem, error) {
	if s.ReviewableItemsFn != nil {
		return s.ReviewableItemsFn(ctx, userID)
	}
	return nil, nil
}

// ContactFacadeStub simulates contact facade interactions.
type ContactFacadeStub struct {
	SubmitContactFn func(context.Context, *model.ContactForm) (*model.ContactForm, error)
	ContactFormsFn  func(context.Context, bool) ([]model.ContactForm, error)
	UpdateContactFn func(context.Context, string, model.ContactPatch) (*model.ContactForm, error)
	DeleteContactFn func(context.Context, string) error
}

func (s ContactFacadeStub) SubmitContact(ctx context.Context, form *model.ContactForm) (*model.ContactForm, error) {
	if s.SubmitContactFn != nil {
		return s.SubmitContactFn(ctx, form)
	}
	created := *form
	created.ID = "contact-1"
	return &created, nil
}

func (s ContactFacadeStub) ContactForms(ctx context.Context, unprocessedOnly bool) ([]model.ContactForm, error) {
	if s.ContactFormsFn != nil {
		return s.ContactFormsFn(ctx, unprocessedOnly)
	}
	return nil, nil
}

func (s ContactFacadeStub) UpdateContact(ctx context.Context, id string, patch model.ContactPatch) (*model.ContactForm, error) {
	if s.UpdateContactFn != nil {
		return s.UpdateContactFn(ctx, id, patch)
	}
	return &model.ContactForm{ID: id}, nil
}

func (s ContactFacadeStub) DeleteContact(ctx context.Context, id string) error {
	if s.DeleteContactFn != nil {
		return s.DeleteContactFn(ctx, id)
	}
	return nil
}

// ShopFacadeStub aggregates facade dependencies for HTTP layer tests.
type ShopFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
	ReviewFacadeStub
	ContactFacadeStub
}

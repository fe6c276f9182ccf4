package app

import (
	"context"
	"time"

	"github.com/sweetworks/sweetshop/internal/domain/model"
	"github.com/sweetworks/sweetshop/internal/usecase"
)

// ShopFacade aggregates the application use cases behind one surface for
// handlers, middleware, and the background worker.
type ShopFacade struct {
	auth     *usecase.AuthUseCase
	orders   *usecase.OrderUseCase
	catalog  *usecase.CatalogUseCase
	reviews  *usecase.ReviewUseCase
	contacts *usecase.ContactUseCase
}

func NewShopFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	catalog *usecase.CatalogUseCase,
	reviews *usecase.ReviewUseCase,
	contacts *usecase.ContactUseCase,
) *ShopFacade {
	return &ShopFacade{auth: auth, orders: orders, catalog: catalog, reviews: reviews, contacts: contacts}
}

// --- auth ---

func (f *ShopFacade) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password)
}

func (f *ShopFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *ShopFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) UserByID(ctx context.Context, id string) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

// --- orders ---

func (f *ShopFacade) PlaceOrder(ctx context.Context, userID string, lines []model.OrderLineInput, meta model.OrderMeta) (*model.Order, error) {
	return f.orders.PlaceOrder(ctx, userID, lines, meta)
}

func (f *ShopFacade) Order(ctx context.Context, orderID, requesterID string, isAdmin bool) (*model.Order, error) {
	return f.orders.Get(ctx, orderID, requesterID, isAdmin)
}

func (f *ShopFacade) MyOrders(ctx context.Context, userID string) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *ShopFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *ShopFacade) UpdateOrder(ctx context.Context, orderID, requesterID string, isAdmin bool, patch model.OrderPatch) (*model.Order, error) {
	return f.orders.Update(ctx, orderID, requesterID, isAdmin, patch)
}

func (f *ShopFacade) StalePendingOrders(ctx context.Context, age time.Duration, limit int) ([]string, error) {
	return f.orders.StalePendingOrders(ctx, age, limit)
}

func (f *ShopFacade) CancelPendingOrder(ctx context.Context, orderID string) error {
	return f.orders.CancelPendingOrder(ctx, orderID)
}

// --- catalog ---

func (f *ShopFacade) Sweets(ctx context.Context, skip, limit int) ([]model.RatedSweet, error) {
	return f.catalog.List(ctx, skip, limit)
}

func (f *ShopFacade) SearchSweets(ctx context.Context, filter model.SweetFilter) ([]model.RatedSweet, error) {
	return f.catalog.Search(ctx, filter)
}

func (f *ShopFacade) Sweet(ctx context.Context, id string) (*model.Sweet, error) {
	return f.catalog.Get(ctx, id)
}

func (f *ShopFacade) CreateSweet(ctx context.Context, sweet *model.Sweet) (*model.Sweet, error) {
	return f.catalog.Create(ctx, sweet)
}

func (f *ShopFacade) UpdateSweet(ctx context.Context, id string, patch model.SweetPatch) (*model.Sweet, error) {
	return f.catalog.Update(ctx, id, patch)
}

func (f *ShopFacade) DeleteSweet(ctx context.Context, id string) error {
	return f.catalog.Delete(ctx, id)
}

func (f *ShopFacade) Categories(ctx context.Context) ([]string, error) {
	return f.catalog.Categories(ctx)
}

func (f *ShopFacade) PriceRange(ctx context.Context) (*model.PriceRange, error) {
	return f.catalog.PriceRange(ctx)
}

func (f *ShopFacade) RestockSweet(ctx context.Context, id string, quantity int) (*model.Sweet, error) {
	return f.catalog.Restock(ctx, id, quantity)
}

func (f *ShopFacade) PurchaseSweet(ctx context.Context, sweetID, userID string, quantity int) (*model.Purchase, error) {
	return f.catalog.Purchase(ctx, sweetID, userID, quantity)
}

// --- reviews ---

func (f *ShopFacade) CreateReview(ctx context.Context, userID, sweetID string, rating int, comment *string) (*model.Review, error) {
	return f.reviews.Create(ctx, userID, sweetID, rating, comment)
}

func (f *ShopFacade) ReviewsBySweet(ctx context.Context, sweetID string) ([]model.Review, error) {
	return f.reviews.ListBySweet(ctx, sweetID)
}

func (f *ShopFacade) MyReviews(ctx context.Context, userID string) ([]model.Review, error) {
	return f.reviews.ListByUser(ctx, userID)
}

func (f *ShopFacade) UpdateReview(ctx context.Context, reviewID, requesterID string, patch model.ReviewPatch) (*model.Review, error) {
	return f.reviews.Update(ctx, reviewID, requesterID, patch)
}

func (f *ShopFacade) DeleteReview(ctx context.Context, reviewID, requesterID string, isAdmin bool) error {
	return f.reviews.Delete(ctx, reviewID, requesterID, isAdmin)
}

func (f *ShopFacade) ReviewableItems(ctx context.Context, userID string) ([]model.ReviewableItem, error) {
	return f.reviews.ListReviewable(ctx, userID)
}

// --- contact ---

func (f *ShopFacade) SubmitContact(ctx context.Context, form *model.ContactForm) (*model.ContactForm, error) {
	return f.contacts.Submit(ctx, form)
}

func (f *ShopFacade) ContactForms(ctx context.Context, unprocessedOnly bool) ([]model.ContactForm, error) {
	return f.contacts.List(ctx, unprocessedOnly)
}

func (f *ShopFacade) UpdateContact(ctx context.Context, id string, patch model.ContactPatch) (*model.ContactForm, error) {
	return f.contacts.Update(ctx, id, patch)
}

func (f *ShopFacade) DeleteContact(ctx context.Context, id string) error {
	return f.contacts.Delete(ctx, id)
}

package handlers

import (
	"context"

	"github.com/sweetworks/sweetshop/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (string, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
}

// CatalogFacade covers catalog reads, admin mutations, and the
// quick-purchase and restock paths.
type CatalogFacade interface {
	Sweets(ctx context.Context, skip, limit int) ([]model.RatedSweet, error)
	SearchSweets(ctx context.Context, filter model.SweetFilter) ([]model.RatedSweet, error)
	Sweet(ctx context.Context, id string) (*model.Sweet, error)
	CreateSweet(ctx context.Context, sweet *model.Sweet) (*model.Sweet, error)
	UpdateSweet(ctx context.Context, id string, patch model.SweetPatch) (*model.Sweet, error)
	DeleteSweet(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
	PriceRange(ctx context.Context) (*model.PriceRange, error)
	RestockSweet(ctx context.Context, id string, quantity int) (*model.Sweet, error)
	PurchaseSweet(ctx context.Context, sweetID, userID string, quantity int) (*model.Purchase, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID string, lines []model.OrderLineInput, meta model.OrderMeta) (*model.Order, error)
	Order(ctx context.Context, orderID, requesterID string, isAdmin bool) (*model.Order, error)
	MyOrders(ctx context.Context, userID string) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, orderID, requesterID string, isAdmin bool, patch model.OrderPatch) (*model.Order, error)
}

// ReviewFacade provides review related operations.
type ReviewFacade interface {
	CreateReview(ctx context.Context, userID, sweetID string, rating int, comment *string) (*model.Review, error)
	ReviewsBySweet(ctx context.Context, sweetID string) ([]model.Review, error)
	MyReviews(ctx context.Context, userID string) ([]model.Review, error)
	UpdateReview(ctx context.Context, reviewID, requesterID string, patch model.ReviewPatch) (*model.Review, error)
	DeleteReview(ctx context.Context, reviewID, requesterID string, isAdmin bool) error
	ReviewableItems(ctx context.Context, userID string) ([]model.ReviewableItem, error)
}

// ContactFacade provides contact form intake and moderation.
type ContactFacade interface {
	SubmitContact(ctx context.Context, form *model.ContactForm) (*model.ContactForm, error)
	ContactForms(ctx context.Context, unprocessedOnly bool) ([]model.ContactForm, error)
	UpdateContact(ctx context.Context, id string, patch model.ContactPatch) (*model.ContactForm, error)
	DeleteContact(ctx context.Context, id string) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
	ReviewFacade
	ContactFacade
}

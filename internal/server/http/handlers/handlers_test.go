package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
	"github.com/sweetworks/sweetshop/internal/server/http/dto"
	"github.com/sweetworks/sweetshop/internal/server/http/middleware"
	testhelpers "github.com/sweetworks/sweetshop/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	routePath := path
	if i := strings.IndexByte(routePath, '?'); i >= 0 {
		routePath = routePath[:i]
	}
	router.Handle(method, routePath, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id string, admin bool) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
		c.Set(middleware.IsAdminContextKey, admin)
	}
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != "" {
		t.Fatalf("expected empty id when not set, got %q", got)
	}

	c.Set(middleware.UserIDContextKey, "user-42")
	if got := CurrentUserID(c); got != "user-42" {
		t.Fatalf("expected user-42, got %q", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	email := testhelpers.RandomEmail()
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.AuthRequest{Email: email, Password: password})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, gotEmail, gotPassword string) (*model.User, string, error) {
		if gotEmail != email || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotEmail, gotPassword)
		}
		return &model.User{ID: "user-1", Email: email}, "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var decoded dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.AccessToken != "session-token" || decoded.TokenType != "bearer" {
		t.Fatalf("unexpected token payload: %+v", decoded)
	}
	if decoded.User.Email != email {
		t.Fatalf("unexpected user in payload: %+v", decoded.User)
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid credentials", body: []byte(`{"email":"","password":""}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusBadRequest},
		{name: "already exists", body: []byte(`{"email":"a@b.c","password":"pw"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict},
		{name: "internal", body: []byte(`{"email":"a@b.c","password":"pw"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "wrong password", body: []byte(`{"email":"a@b.c","password":"pw"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "internal", body: []byte(`{"email":"a@b.c","password":"pw"}`), facade: testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(tt.facade).Login, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerMe(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{UserByIDFn: func(_ context.Context, id string) (*model.User, error) {
		return &model.User{ID: id, Email: "candy@shop.example", IsAdmin: true}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/me", NewAuthHandler(facade).Me, asUser("user-1", true), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded.ID != "user-1" || !decoded.IsAdmin {
		t.Fatalf("unexpected user: %+v", decoded)
	}
}

func TestSweetHandlerSearchParsesFilters(t *testing.T) {
	var captured model.SweetFilter
	facade := testhelpers.CatalogFacadeStub{SearchSweetsFn: func(_ context.Context, filter model.SweetFilter) ([]model.RatedSweet, error) {
		captured = filter
		return nil, nil
	}}
	resp := performRequest(t, http.MethodGet, "/search?query=choc&category=fudge&min_price=1.50&in_stock_only=true&sort_by=price&sort_order=desc", NewSweetHandler(facade).Search, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if captured.Query == nil || *captured.Query != "choc" {
		t.Fatalf("query not captured: %+v", captured)
	}
	if captured.Category == nil || *captured.Category != "fudge" {
		t.Fatalf("category not captured: %+v", captured)
	}
	if captured.MinPrice == nil || !captured.MinPrice.Equal(decimal.RequireFromString("1.50")) {
		t.Fatalf("min price not captured: %+v", captured)
	}
	if !captured.InStockOnly || !captured.SortDescending || captured.SortBy != model.SortByPrice {
		t.Fatalf("unexpected filter: %+v", captured)
	}
}

func TestSweetHandlerSearchRejectsBadPrice(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/search?min_price=cheap", NewSweetHandler(testhelpers.CatalogFacadeStub{}).Search, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestSweetHandlerPurchaseDefaultsQuantity(t *testing.T) {
	var gotQuantity int
	facade := testhelpers.CatalogFacadeStub{PurchaseSweetFn: func(_ context.Context, sweetID, userID string, quantity int) (*model.Purchase, error) {
		gotQuantity = quantity
		return &model.Purchase{ID: "purchase-1", SweetID: sweetID, UserID: userID, Quantity: quantity}, nil
	}}
	resp := performRequest(t, http.MethodPost, "/sweets/sweet-1/purchase", NewSweetHandler(facade).Purchase, asUser("user-1", false), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotQuantity != 1 {
		t.Fatalf("expected quantity to default to 1, got %d", gotQuantity)
	}
}

func TestSweetHandlerPurchaseFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "out of stock", err: domainErrors.ErrInsufficientStock, status: http.StatusBadRequest},
		{name: "unknown sweet", err: domainErrors.ErrNotFound, status: http.StatusNotFound},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.CatalogFacadeStub{PurchaseSweetFn: func(context.Context, string, string, int) (*model.Purchase, error) {
				return nil, tt.err
			}}
			resp := performRequest(t, http.MethodPost, "/sweets/sweet-1/purchase", NewSweetHandler(facade).Purchase, asUser("user-1", false), nil, nil)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestSweetHandlerCreate(t *testing.T) {
	body := []byte(`{"name":"Fudge","category":"chocolate","price":"2.50","quantity":10}`)
	resp := performRequest(t, http.MethodPost, "/sweets", NewSweetHandler(testhelpers.CatalogFacadeStub{}).Create, asUser("admin-1", true), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	var gotLines []model.OrderLineInput
	facade := testhelpers.OrderFacadeStub{PlaceOrderFn: func(_ context.Context, userID string, lines []model.OrderLineInput, _ model.OrderMeta) (*model.Order, error) {
		gotLines = lines
		return &model.Order{ID: "order-1", UserID: userID, Status: model.OrderStatusPending}, nil
	}}
	body := []byte(`{"items":[{"sweet_id":"sweet-1","quantity":2},{"sweet_id":"sweet-2","quantity":1}]}`)
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Create, asUser("user-1", false), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	if len(gotLines) != 2 || gotLines[0].SweetID != "sweet-1" || gotLines[0].Quantity != 2 {
		t.Fatalf("unexpected lines passed to facade: %+v", gotLines)
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("oops"), status: http.StatusBadRequest},
		{name: "empty order", body: []byte(`{"items":[]}`), facade: testhelpers.OrderFacadeStub{PlaceOrderFn: func(context.Context, string, []model.OrderLineInput, model.OrderMeta) (*model.Order, error) {
			return nil, domainErrors.ErrInvalidInput
		}}, status: http.StatusBadRequest},
		{name: "out of stock", body: []byte(`{"items":[{"sweet_id":"sweet-1","quantity":5}]}`), facade: testhelpers.OrderFacadeStub{PlaceOrderFn: func(context.Context, string, []model.OrderLineInput, model.OrderMeta) (*model.Order, error) {
			return nil, domainErrors.ErrInsufficientStock
		}}, status: http.StatusBadRequest},
		{name: "unknown sweet", body: []byte(`{"items":[{"sweet_id":"ghost","quantity":1}]}`), facade: testhelpers.OrderFacadeStub{PlaceOrderFn: func(context.Context, string, []model.OrderLineInput, model.OrderMeta) (*model.Order, error) {
			return nil, domainErrors.ErrNotFound
		}}, status: http.StatusNotFound},
		{name: "internal", body: []byte(`{"items":[{"sweet_id":"sweet-1","quantity":1}]}`), facade: testhelpers.OrderFacadeStub{PlaceOrderFn: func(context.Context, string, []model.OrderLineInput, model.OrderMeta) (*model.Order, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(tt.facade).Create, asUser("user-1", false), tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerCreateReportsStockDetail(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{PlaceOrderFn: func(context.Context, string, []model.OrderLineInput, model.OrderMeta) (*model.Order, error) {
		return nil, &domainErrors.InsufficientStockError{SweetID: "sweet-1", Available: 2, Requested: 5}
	}}
	body := []byte(`{"items":[{"sweet_id":"sweet-1","quantity":5}]}`)
	resp := performRequest(t, http.MethodPost, "/orders", NewOrderHandler(facade).Create, asUser("user-1", false), body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var errResp dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	want := "insufficient stock for sweet sweet-1: available 2, requested 5"
	if errResp.Error != want {
		t.Fatalf("expected error %q, got %q", want, errResp.Error)
	}
}

func TestSweetHandlerPurchaseReportsStockDetail(t *testing.T) {
	facade := testhelpers.CatalogFacadeStub{PurchaseSweetFn: func(context.Context, string, string, int) (*model.Purchase, error) {
		return nil, &domainErrors.InsufficientStockError{SweetID: "sweet-1", Available: 1, Requested: 3}
	}}
	resp := performRequest(t, http.MethodPost, "/sweets/sweet-1/purchase", NewSweetHandler(facade).Purchase, asUser("user-1", false), nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var errResp dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	want := "insufficient stock for sweet sweet-1: available 1, requested 3"
	if errResp.Error != want {
		t.Fatalf("expected error %q, got %q", want, errResp.Error)
	}
}

func TestOrderHandlerGetForbidden(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{OrderFn: func(context.Context, string, string, bool) (*model.Order, error) {
		return nil, domainErrors.ErrForbidden
	}}
	resp := performRequest(t, http.MethodGet, "/orders/order-1", NewOrderHandler(facade).Get, asUser("intruder", false), nil, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", resp.Code)
	}
}

func TestOrderHandlerList(t *testing.T) {
	orders := []model.Order{{ID: "order-1"}, {ID: "order-2"}}
	facade := testhelpers.OrderFacadeStub{AllOrdersFn: func(context.Context) ([]model.Order, error) {
		return orders, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders", NewOrderHandler(facade).List, asUser("admin-1", true), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var decoded []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(decoded) != len(orders) {
		t.Fatalf("expected %d orders, got %d", len(orders), len(decoded))
	}
}

func TestOrderHandlerUpdateStatusConversion(t *testing.T) {
	var gotPatch model.OrderPatch
	facade := testhelpers.OrderFacadeStub{UpdateOrderFn: func(_ context.Context, orderID, requesterID string, _ bool, patch model.OrderPatch) (*model.Order, error) {
		gotPatch = patch
		return &model.Order{ID: orderID, UserID: requesterID, Status: *patch.Status}, nil
	}}
	body := []byte(`{"status":"shipped"}`)
	resp := performRequest(t, http.MethodPut, "/orders/order-1", NewOrderHandler(facade).Update, asUser("admin-1", true), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotPatch.Status == nil || *gotPatch.Status != model.OrderStatusShipped {
		t.Fatalf("unexpected patch: %+v", gotPatch)
	}
}

func TestReviewHandlerCreateFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not purchased", err: domainErrors.ErrNotEligible, status: http.StatusBadRequest},
		{name: "bad rating", err: domainErrors.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "unknown sweet", err: domainErrors.ErrNotFound, status: http.StatusNotFound},
		{name: "already reviewed", err: domainErrors.ErrAlreadyExists, status: http.StatusConflict},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	body := []byte(`{"sweet_id":"sweet-1","rating":5}`)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := testhelpers.ReviewFacadeStub{CreateReviewFn: func(context.Context, string, string, int, *string) (*model.Review, error) {
				return nil, tt.err
			}}
			resp := performRequest(t, http.MethodPost, "/reviews", NewReviewHandler(facade).Create, asUser("user-1", false), body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestReviewHandlerCreate(t *testing.T) {
	body := []byte(`{"sweet_id":"sweet-1","rating":4,"comment":"lovely"}`)
	resp := performRequest(t, http.MethodPost, "/reviews", NewReviewHandler(testhelpers.ReviewFacadeStub{}).Create, asUser("user-1", false), body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestReviewHandlerDelete(t *testing.T) {
	resp := performRequest(t, http.MethodDelete, "/reviews/review-1", NewReviewHandler(testhelpers.ReviewFacadeStub{}).Delete, asUser("user-1", false), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestContactHandlerCreate(t *testing.T) {
	body := []byte(`{"name":"Candy Fan","email":"candy@shop.example","message":"bulk order please"}`)
	resp := performRequest(t, http.MethodPost, "/contact", NewContactHandler(testhelpers.ContactFacadeStub{}).Create, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestContactHandlerCreateInvalid(t *testing.T) {
	facade := testhelpers.ContactFacadeStub{SubmitContactFn: func(context.Context, *model.ContactForm) (*model.ContactForm, error) {
		return nil, domainErrors.ErrInvalidInput
	}}
	body := []byte(`{"name":"","email":"","message":""}`)
	resp := performRequest(t, http.MethodPost, "/contact", NewContactHandler(facade).Create, nil, body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestContactHandlerUnprocessed(t *testing.T) {
	var gotUnprocessedOnly bool
	facade := testhelpers.ContactFacadeStub{ContactFormsFn: func(_ context.Context, unprocessedOnly bool) ([]model.ContactForm, error) {
		gotUnprocessedOnly = unprocessedOnly
		return nil, nil
	}}
	resp := performRequest(t, http.MethodGet, "/contact/unprocessed", NewContactHandler(facade).Unprocessed, asUser("admin-1", true), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !gotUnprocessedOnly {
		t.Fatal("expected unprocessed-only listing")
	}
}

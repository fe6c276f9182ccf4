package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
)

func ratedRows() *pgxmockv3.Rows {
	return pgxmockv3.NewRows([]string{
		"id", "name", "category", "price", "quantity", "image_url", "description",
		"created_at", "updated_at", "avg_rating", "review_count",
	})
}

func TestSweetCreateAssignsID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	sweets := storage.Sweets()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO sweets").
		WithArgs(anyArgs(7)...).
		WillReturnRows(pgxmockv3.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := sweets.Create(context.Background(), &model.Sweet{
		Name:     "fudge",
		Category: "chocolate",
		Price:    decimal.RequireFromString("2.50"),
		Quantity: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSweetGetByIDNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	sweets := storage.Sweets()

	mock.ExpectQuery("SELECT id, name, category, price, quantity").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	if _, err := sweets.GetByID(context.Background(), "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSweetSearchAppliesFilters(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	sweets := storage.Sweets()

	query := "choc"
	minPrice := decimal.RequireFromString("1.00")
	minRating := 4.0

	mock.ExpectQuery("s.name ILIKE .+ AND s.price >= .+ AND s.quantity > 0 GROUP BY s.id HAVING").
		WithArgs("%choc%", minPrice, minRating, 0, 20).
		WillReturnRows(ratedRows().AddRow(
			"sweet-1", "truffle", "chocolate", decimal.RequireFromString("3.20"), 5,
			(*string)(nil), (*string)(nil), time.Now(), time.Now(), 4.5, 2,
		))

	result, err := sweets.Search(context.Background(), model.SweetFilter{
		Query:       &query,
		MinPrice:    &minPrice,
		MinRating:   &minRating,
		InStockOnly: true,
		SortBy:      model.SortByRating,
		Skip:        0,
		Limit:       20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 || result[0].AvgRating != 4.5 || result[0].ReviewCount != 2 {
		t.Fatalf("unexpected result %+v", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSweetSearchSortWhitelistFallsBack(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	sweets := storage.Sweets()

	mock.ExpectQuery("ORDER BY s.created_at DESC").
		WithArgs(0, 10).
		WillReturnRows(ratedRows())

	_, err := sweets.Search(context.Background(), model.SweetFilter{
		SortBy:         model.SweetSortKey("drop table"),
		SortDescending: true,
		Limit:          10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSweetListWithRatings(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	sweets := storage.Sweets()

	mock.ExpectQuery("LEFT JOIN reviews r ON r.sweet_id = s.id").
		WithArgs(0, 50).
		WillReturnRows(ratedRows().AddRow(
			"sweet-1", "fudge", "chocolate", decimal.RequireFromString("2.50"), 10,
			(*string)(nil), (*string)(nil), time.Now(), time.Now(), 0.0, 0,
		))

	result, err := sweets.ListWithRatings(context.Background(), 0, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 1 || result[0].Name != "fudge" {
		t.Fatalf("unexpected result %+v", result)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSweetUpdatePatchOnlyTouchesGivenFields(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	sweets := storage.Sweets()

	name := "renamed"
	now := time.Now()

	mock.ExpectExec("UPDATE sweets SET name=").
		WithArgs(name, "sweet-1").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectQuery("SELECT id, name, category, price, quantity").
		WithArgs("sweet-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "name", "category", "price", "quantity", "image_url", "description", "created_at", "updated_at"}).
			AddRow("sweet-1", name, "chocolate", decimal.RequireFromString("2.50"), 10, (*string)(nil), (*string)(nil), now, now))

	updated, err := sweets.Update(context.Background(), "sweet-1", model.SweetPatch{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("unexpected name %s", updated.Name)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSweetDeleteNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	sweets := storage.Sweets()

	mock.ExpectExec("DELETE FROM sweets").
		WithArgs("ghost").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 0))

	if err := sweets.Delete(context.Background(), "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSweetRestockLocksThenIncrements(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	sweets := storage.Sweets()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT quantity FROM sweets").
		WithArgs("sweet-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"quantity"}).AddRow(4))
	mock.ExpectQuery("UPDATE sweets SET quantity=").
		WithArgs(9, "sweet-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "name", "category", "price", "quantity", "image_url", "description", "created_at", "updated_at"}).
			AddRow("sweet-1", "fudge", "chocolate", decimal.RequireFromString("2.50"), 9, (*string)(nil), (*string)(nil), now, now))
	mock.ExpectCommit()

	sweet, err := sweets.Restock(context.Background(), "sweet-1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sweet.Quantity != 9 {
		t.Fatalf("expected quantity 9, got %d", sweet.Quantity)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSweetPurchaseComputesTotalAndDecrements(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	sweets := storage.Sweets()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT price, quantity FROM sweets").
		WithArgs("sweet-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"price", "quantity"}).AddRow(decimal.RequireFromString("1.99"), 5))
	mock.ExpectExec("UPDATE sweets SET quantity = quantity -").
		WithArgs(3, "sweet-1").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectQuery("INSERT INTO purchases").
		WithArgs(anyArgs(5)...).
		WillReturnRows(pgxmockv3.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectCommit()

	purchase, err := sweets.Purchase(context.Background(), "sweet-1", "user-1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := purchase.TotalPrice.String(); got != "5.97" {
		t.Fatalf("expected exact total 5.97, got %s", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSweetPurchaseInsufficientStockRollsBack(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	sweets := storage.Sweets()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT price, quantity FROM sweets").
		WithArgs("sweet-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"price", "quantity"}).AddRow(decimal.RequireFromString("1.99"), 2))
	mock.ExpectRollback()

	if _, err := sweets.Purchase(context.Background(), "sweet-1", "user-1", 3); !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSweetPriceRange(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	sweets := storage.Sweets()

	mock.ExpectQuery("COALESCE").
		WillReturnRows(pgxmockv3.NewRows([]string{"min", "max"}).
			AddRow(decimal.RequireFromString("0.99"), decimal.RequireFromString("12.50")))

	pr, err := sweets.PriceRange(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pr.Min.String() != "0.99" || pr.Max.String() != "12.5" {
		t.Fatalf("unexpected range %s..%s", pr.Min, pr.Max)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestSweetCategories(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	sweets := storage.Sweets()

	mock.ExpectQuery("SELECT DISTINCT category FROM sweets").
		WillReturnRows(pgxmockv3.NewRows([]string{"category"}).AddRow("chocolate").AddRow("gummy"))

	categories, err := sweets.Categories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 2 || categories[0] != "chocolate" {
		t.Fatalf("unexpected categories %v", categories)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
)

func (r *sweetRepository) Create(ctx context.Context, sweet *model.Sweet) (*model.Sweet, error) {
	const query = `INSERT INTO sweets (id, name, category, price, quantity, image_url, description)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at, updated_at`
	created := *sweet
	created.ID = uuid.NewString()
	err := r.storage.pool.QueryRow(ctx, query,
		created.ID, created.Name, created.Category, created.Price, created.Quantity,
		created.ImageURL, created.Description,
	).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

const sweetColumns = `id, name, category, price, quantity, image_url, description, created_at, updated_at`

func (r *sweetRepository) GetByID(ctx context.Context, id string) (*model.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets WHERE id=$1`
	var s model.Sweet
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.ImageURL, &s.Description, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *sweetRepository) Update(ctx context.Context, id string, patch model.SweetPatch) (*model.Sweet, error) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+"=$"+strconv.Itoa(len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Quantity != nil {
		add("quantity", *patch.Quantity)
	}
	if patch.ImageURL != nil {
		add("image_url", *patch.ImageURL)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := "UPDATE sweets SET " + joinSets(sets) + ", updated_at=NOW() WHERE id=$" + strconv.Itoa(len(args))
		tag, err := r.storage.pool.Exec(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			return nil, domainErrors.ErrNotFound
		}
	}

	return r.GetByID(ctx, id)
}

func (r *sweetRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM sweets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

const ratedSweetColumns = `s.id, s.name, s.category, s.price, s.quantity, s.image_url, s.description, s.created_at, s.updated_at,
       COALESCE(AVG(r.rating), 0) AS avg_rating, COUNT(r.id) AS review_count`

func (r *sweetRepository) ListWithRatings(ctx context.Context, skip, limit int) ([]model.RatedSweet, error) {
	query := `SELECT ` + ratedSweetColumns + `
              FROM sweets s LEFT JOIN reviews r ON r.sweet_id = s.id
              GROUP BY s.id
              ORDER BY s.created_at DESC
              OFFSET $1 LIMIT $2`
	return r.queryRated(ctx, query, skip, limit)
}

// Search builds the catalog query from the filter. Aggregate ratings are
// computed at query time over the current review set, never cached.
func (r *sweetRepository) Search(ctx context.Context, filter model.SweetFilter) ([]model.RatedSweet, error) {
	query := `SELECT ` + ratedSweetColumns + `
              FROM sweets s LEFT JOIN reviews r ON r.sweet_id = s.id`

	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	var where []string
	if filter.Query != nil {
		where = append(where, "s.name ILIKE "+arg("%"+*filter.Query+"%"))
	}
	if filter.Category != nil {
		where = append(where, "s.category ILIKE "+arg("%"+*filter.Category+"%"))
	}
	if filter.MinPrice != nil {
		where = append(where, "s.price >= "+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		where = append(where, "s.price <= "+arg(*filter.MaxPrice))
	}
	if filter.InStockOnly {
		where = append(where, "s.quantity > 0")
	}
	if filter.MinQuantity != nil {
		where = append(where, "s.quantity >= "+arg(*filter.MinQuantity))
	}
	if filter.MaxQuantity != nil {
		where = append(where, "s.quantity <= "+arg(*filter.MaxQuantity))
	}

	if len(where) > 0 {
		query += " WHERE " + where[0]
		for _, w := range where[1:] {
			query += " AND " + w
		}
	}

	query += " GROUP BY s.id"

	if filter.MinRating != nil {
		query += " HAVING COALESCE(AVG(r.rating), 0) >= " + arg(*filter.MinRating)
	}

	query += " ORDER BY " + sortColumn(filter.SortBy)
	if filter.SortDescending {
		query += " DESC"
	} else {
		query += " ASC"
	}

	query += " OFFSET " + arg(filter.Skip) + " LIMIT " + arg(filter.Limit)

	return r.queryRated(ctx, query, args...)
}

// sortColumn whitelists sortable expressions; unknown keys fall back to
// creation time.
func sortColumn(key model.SweetSortKey) string {
	switch key {
	case model.SortByPrice:
		return "s.price"
	case model.SortByName:
		return "s.name"
	case model.SortByRating:
		return "COALESCE(AVG(r.rating), 0)"
	case model.SortByQuantity:
		return "s.quantity"
	case model.SortByCategory:
		return "s.category"
	default:
		return "s.created_at"
	}
}

func (r *sweetRepository) queryRated(ctx context.Context, query string, args ...any) ([]model.RatedSweet, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.RatedSweet
	for rows.Next() {
		var s model.RatedSweet
		err := rows.Scan(
			&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.ImageURL, &s.Description,
			&s.CreatedAt, &s.UpdatedAt, &s.AvgRating, &s.ReviewCount,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *sweetRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT DISTINCT category FROM sweets ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *sweetRepository) PriceRange(ctx context.Context) (*model.PriceRange, error) {
	const query = `SELECT COALESCE(MIN(price), 0), COALESCE(MAX(price), 0) FROM sweets`
	var pr model.PriceRange
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&pr.Min, &pr.Max); err != nil {
		return nil, err
	}
	return &pr, nil
}

// Restock locks the sweet row before incrementing so the increment serializes
// with concurrent order decrements on the same row.
func (r *sweetRepository) Restock(ctx context.Context, id string, quantity int) (*model.Sweet, error) {
	var s model.Sweet
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lock = `SELECT quantity FROM sweets WHERE id=$1 FOR UPDATE`
		var current int
		if err := tx.QueryRow(ctx, lock, id).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		query := `UPDATE sweets SET quantity=$1, updated_at=NOW() WHERE id=$2
                  RETURNING ` + sweetColumns
		return tx.QueryRow(ctx, query, current+quantity, id).Scan(
			&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.ImageURL, &s.Description, &s.CreatedAt, &s.UpdatedAt,
		)
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Purchase is the legacy single-item quick-purchase: same lock-check-decrement
// discipline as order placement, but recording a flat purchase row.
func (r *sweetRepository) Purchase(ctx context.Context, sweetID, userID string, quantity int) (*model.Purchase, error) {
	purchase := &model.Purchase{
		ID:       uuid.NewString(),
		UserID:   userID,
		SweetID:  sweetID,
		Quantity: quantity,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lock = `SELECT price, quantity FROM sweets WHERE id=$1 FOR UPDATE`
		var (
			price     decimal.Decimal
			available int
		)
		if err := tx.QueryRow(ctx, lock, sweetID).Scan(&price, &available); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if available < quantity {
			return &domainErrors.InsufficientStockError{SweetID: sweetID, Available: available, Requested: quantity}
		}

		purchase.TotalPrice = price.Mul(decimal.NewFromInt(int64(quantity)))

		const decrement = `UPDATE sweets SET quantity = quantity - $1, updated_at=NOW() WHERE id=$2`
		if _, err := tx.Exec(ctx, decrement, quantity, sweetID); err != nil {
			return err
		}

		const insert = `INSERT INTO purchases (id, user_id, sweet_id, quantity, total_price)
                        VALUES ($1, $2, $3, $4, $5)
                        RETURNING created_at`
		return tx.QueryRow(ctx, insert, purchase.ID, userID, sweetID, quantity, purchase.TotalPrice).Scan(&purchase.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

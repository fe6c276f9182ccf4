package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
)

func (r *reviewRepository) Create(ctx context.Context, userID, sweetID string, rating int, comment *string) (*model.Review, error) {
	const query = `INSERT INTO reviews (id, user_id, sweet_id, rating, comment)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING created_at, updated_at`
	rev := model.Review{ID: uuid.NewString(), UserID: userID, SweetID: sweetID, Rating: rating, Comment: comment}
	err := r.storage.pool.QueryRow(ctx, query, rev.ID, userID, sweetID, rating, comment).Scan(&rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &rev, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*model.Review, error) {
	const query = `SELECT id, user_id, sweet_id, rating, comment, created_at, updated_at FROM reviews WHERE id=$1`
	var rev model.Review
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&rev.ID, &rev.UserID, &rev.SweetID, &rev.Rating, &rev.Comment, &rev.CreatedAt, &rev.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

const reviewWithEmailColumns = `r.id, r.user_id, r.sweet_id, r.rating, r.comment, r.created_at, r.updated_at, u.email`

func (r *reviewRepository) ListBySweet(ctx context.Context, sweetID string) ([]model.Review, error) {
	query := `SELECT ` + reviewWithEmailColumns + ` FROM reviews r JOIN users u ON u.id = r.user_id
              WHERE r.sweet_id=$1 ORDER BY r.created_at DESC`
	return r.listReviews(ctx, query, sweetID)
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID string) ([]model.Review, error) {
	query := `SELECT ` + reviewWithEmailColumns + ` FROM reviews r JOIN users u ON u.id = r.user_id
              WHERE r.user_id=$1 ORDER BY r.created_at DESC`
	return r.listReviews(ctx, query, userID)
}

func (r *reviewRepository) listReviews(ctx context.Context, query string, args ...any) ([]model.Review, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.SweetID, &rev.Rating, &rev.Comment, &rev.CreatedAt, &rev.UpdatedAt, &rev.UserEmail); err != nil {
			return nil, err
		}
		result = append(result, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *reviewRepository) Update(ctx context.Context, id string, patch model.ReviewPatch) (*model.Review, error) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+"=$"+strconv.Itoa(len(args)))
	}

	if patch.Rating != nil {
		add("rating", *patch.Rating)
	}
	if patch.Comment != nil {
		add("comment", *patch.Comment)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := "UPDATE reviews SET " + joinSets(sets) + ", updated_at=NOW() WHERE id=$" + strconv.Itoa(len(args))
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

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM reviews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *reviewRepository) HasQualifyingOrder(ctx context.Context, userID, sweetID string) (bool, error) {
	const query = `SELECT EXISTS (
                       SELECT 1 FROM order_items oi
                       JOIN orders o ON o.id = oi.order_id
                       WHERE o.user_id=$1 AND oi.sweet_id=$2 AND o.status = ANY($3)
                   )`
	qualifying := []string{string(model.OrderStatusConfirmed), string(model.OrderStatusDelivered)}
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, userID, sweetID, qualifying).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *reviewRepository) Exists(ctx context.Context, userID, sweetID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id=$1 AND sweet_id=$2)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, userID, sweetID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListReviewable returns one entry per distinct purchased-and-unreviewed
// sweet, keeping the earliest purchase of each.
func (r *reviewRepository) ListReviewable(ctx context.Context, userID string) ([]model.ReviewableItem, error) {
	const query = `SELECT DISTINCT ON (s.id) s.id, s.name, s.image_url, s.category, oi.quantity, oi.created_at
                   FROM order_items oi
                   JOIN orders o ON o.id = oi.order_id
                   JOIN sweets s ON s.id = oi.sweet_id
                   WHERE o.user_id=$1 AND o.status = ANY($2)
                     AND NOT EXISTS (
                         SELECT 1 FROM reviews r WHERE r.user_id=$1 AND r.sweet_id = s.id
                     )
                   ORDER BY s.id, oi.created_at`
	qualifying := []string{string(model.OrderStatusConfirmed), string(model.OrderStatusDelivered)}
	rows, err := r.storage.pool.Query(ctx, query, userID, qualifying)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.ReviewableItem
	for rows.Next() {
		var it model.ReviewableItem
		if err := rows.Scan(&it.SweetID, &it.SweetName, &it.SweetImageURL, &it.SweetCategory, &it.PurchasedQuantity, &it.PurchaseDate); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

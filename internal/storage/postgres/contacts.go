package postgres

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
)

func (r *contactRepository) Create(ctx context.Context, form *model.ContactForm) (*model.ContactForm, error) {
	const query = `INSERT INTO contact_forms (id, name, email, phone, company, message, is_bulk_order)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at, updated_at`
	created := *form
	created.ID = uuid.NewString()
	created.IsProcessed = false
	err := r.storage.pool.QueryRow(ctx, query,
		created.ID, created.Name, created.Email, created.Phone, created.Company, created.Message, created.IsBulkOrder,
	).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

const contactColumns = `id, name, email, phone, company, message, is_bulk_order, is_processed, created_at, updated_at`

func (r *contactRepository) List(ctx context.Context, unprocessedOnly bool) ([]model.ContactForm, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_forms`
	if unprocessedOnly {
		query += ` WHERE is_processed = FALSE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ContactForm
	for rows.Next() {
		var f model.ContactForm
		if err := rows.Scan(&f.ID, &f.Name, &f.Email, &f.Phone, &f.Company, &f.Message, &f.IsBulkOrder, &f.IsProcessed, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *contactRepository) Update(ctx context.Context, id string, patch model.ContactPatch) (*model.ContactForm, error) {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 8)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+"=$"+strconv.Itoa(len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Company != nil {
		add("company", *patch.Company)
	}
	if patch.Message != nil {
		add("message", *patch.Message)
	}
	if patch.IsBulkOrder != nil {
		add("is_bulk_order", *patch.IsBulkOrder)
	}
	if patch.IsProcessed != nil {
		add("is_processed", *patch.IsProcessed)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := "UPDATE contact_forms SET " + joinSets(sets) + ", updated_at=NOW() WHERE id=$" + strconv.Itoa(len(args))
		tag, err := r.storage.pool.Exec(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			return nil, domainErrors.ErrNotFound
		}
	}

	query := `SELECT ` + contactColumns + ` FROM contact_forms WHERE id=$1`
	var f model.ContactForm
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.Email, &f.Phone, &f.Company, &f.Message, &f.IsBulkOrder, &f.IsProcessed, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM contact_forms WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/sweetworks/sweetshop/internal/domain/errors"
	"github.com/sweetworks/sweetshop/internal/domain/model"
)

// maxAmount is the largest value a NUMERIC(10,2) money column can hold.
// Totals are checked against it before any row is written.
var maxAmount = decimal.New(9999999999, -2)

// Create places an order atomically. Each requested line, in input order,
// locks its sweet row (SELECT ... FOR UPDATE) before the stock check, so a
// concurrent placement on the same sweet cannot read a stale quantity. Any
// failure rolls the whole transaction back: no partial decrement, no partial
// order is ever observable.
func (r *orderRepository) Create(ctx context.Context, userID string, lines []model.OrderLineInput, meta model.OrderMeta) (*model.Order, error) {
	order := &model.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Status:          model.OrderStatusPending,
		ShippingAddress: meta.ShippingAddress,
		PaymentMethod:   meta.PaymentMethod,
		Notes:           meta.Notes,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockSweet = `SELECT name, image_url, price, quantity FROM sweets WHERE id=$1 FOR UPDATE`

		total := decimal.Zero
		items := make([]model.OrderItem, 0, len(lines))
		requested := make(map[string]int, len(lines))
		for _, line := range lines {
			var (
				name      string
				imageURL  *string
				price     decimal.Decimal
				available int
			)
			err := tx.QueryRow(ctx, lockSweet, line.SweetID).Scan(&name, &imageURL, &price, &available)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return &domainErrors.LineItemNotFoundError{SweetID: line.SweetID}
				}
				return err
			}
			// Duplicate lines on one sweet share the locked quantity, so the
			// check runs against the running sum, not the single line.
			requested[line.SweetID] += line.Quantity
			if available < requested[line.SweetID] {
				return &domainErrors.InsufficientStockError{
					SweetID:   line.SweetID,
					Available: available,
					Requested: requested[line.SweetID],
				}
			}

			lineTotal := price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(lineTotal)
			if total.GreaterThan(maxAmount) {
				return fmt.Errorf("%w: order total exceeds currency precision", domainErrors.ErrInvalidInput)
			}

			items = append(items, model.OrderItem{
				ID:            uuid.NewString(),
				OrderID:       order.ID,
				SweetID:       line.SweetID,
				Quantity:      line.Quantity,
				UnitPrice:     price,
				TotalPrice:    lineTotal,
				SweetName:     name,
				SweetImageURL: imageURL,
			})
		}

		const insertOrder = `INSERT INTO orders (id, user_id, total_amount, status, shipping_address, payment_method, notes)
                             VALUES ($1, $2, $3, $4, $5, $6, $7)
                             RETURNING created_at, updated_at`
		err := tx.QueryRow(ctx, insertOrder,
			order.ID, userID, total, order.Status,
			meta.ShippingAddress, meta.PaymentMethod, meta.Notes,
		).Scan(&order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (id, order_id, sweet_id, quantity, unit_price, total_price)
                            VALUES ($1, $2, $3, $4, $5, $6)
                            RETURNING created_at`
		for i := range items {
			it := &items[i]
			if err := tx.QueryRow(ctx, insertItem, it.ID, it.OrderID, it.SweetID, it.Quantity, it.UnitPrice, it.TotalPrice).Scan(&it.CreatedAt); err != nil {
				return err
			}
		}

		const decrement = `UPDATE sweets SET quantity = quantity - $1, updated_at = NOW() WHERE id = $2`
		for _, it := range items {
			if _, err := tx.Exec(ctx, decrement, it.Quantity, it.SweetID); err != nil {
				return err
			}
		}

		order.TotalAmount = total
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

const orderColumns = `o.id, o.user_id, o.total_amount, o.status, o.shipping_address, o.payment_method, o.notes, o.created_at, o.updated_at, u.email`

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o JOIN users u ON u.id = o.user_id WHERE o.id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o JOIN users u ON u.id = o.user_id
              WHERE o.user_id=$1 ORDER BY o.created_at DESC`
	return r.listOrders(ctx, query, userID)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o JOIN users u ON u.id = o.user_id
              ORDER BY o.created_at DESC`
	return r.listOrders(ctx, query)
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		if err := r.loadItems(ctx, &result[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.ShippingAddress, &o.PaymentMethod, &o.Notes, &o.CreatedAt, &o.UpdatedAt, &o.UserEmail)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) loadItems(ctx context.Context, order *model.Order) error {
	const query = `SELECT oi.id, oi.order_id, oi.sweet_id, oi.quantity, oi.unit_price, oi.total_price, oi.created_at, s.name, s.image_url
                   FROM order_items oi
                   JOIN sweets s ON s.id = oi.sweet_id
                   WHERE oi.order_id=$1
                   ORDER BY oi.created_at`
	rows, err := r.storage.pool.Query(ctx, query, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.SweetID, &it.Quantity, &it.UnitPrice, &it.TotalPrice, &it.CreatedAt, &it.SweetName, &it.SweetImageURL); err != nil {
			return err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	order.Items = items
	return nil
}

// Update applies the patch field by field; absent fields stay untouched.
// Role rules are enforced one layer up, in the use case.
func (r *orderRepository) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+"=$"+strconv.Itoa(len(args)))
	}

	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.ShippingAddress != nil {
		add("shipping_address", *patch.ShippingAddress)
	}
	if patch.PaymentMethod != nil {
		add("payment_method", *patch.PaymentMethod)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := "UPDATE orders SET " + joinSets(sets) + ", updated_at=NOW() WHERE id=$" + strconv.Itoa(len(args))
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

func joinSets(sets []string) string {
	out := sets[0]
	for _, s := range sets[1:] {
		out += ", " + s
	}
	return out
}

// ListStalePendingIDs returns ids of orders stuck in pending past the cutoff.
func (r *orderRepository) ListStalePendingIDs(ctx context.Context, age time.Duration, limit int) ([]string, error) {
	const query = `SELECT id FROM orders
                   WHERE status=$1 AND created_at < $2
                   ORDER BY created_at
                   LIMIT $3`
	cutoff := time.Now().Add(-age)
	rows, err := r.storage.pool.Query(ctx, query, model.OrderStatusPending, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// CancelPendingOrder cancels one pending order, restoring its line
// quantities to stock. The status is re-checked under the row lock so a
// concurrent confirm or a second reaper loses the race cleanly.
func (r *orderRepository) CancelPendingOrder(ctx context.Context, orderID string) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockOrder = `SELECT status FROM orders WHERE id=$1 FOR UPDATE`
		var status model.OrderStatus
		if err := tx.QueryRow(ctx, lockOrder, orderID).Scan(&status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if status != model.OrderStatusPending {
			return domainErrors.ErrInvalidState
		}

		const restore = `UPDATE sweets SET quantity = sweets.quantity + oi.quantity, updated_at = NOW()
                         FROM order_items oi
                         WHERE oi.order_id = $1 AND sweets.id = oi.sweet_id`
		if _, err := tx.Exec(ctx, restore, orderID); err != nil {
			return err
		}

		const cancel = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
		_, err := tx.Exec(ctx, cancel, model.OrderStatusCancelled, orderID)
		return err
	})
}

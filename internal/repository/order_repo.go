package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pos-backend/internal/domain"
)

type OrderRepositoryInterface interface {
	// CreateOrder persists the order, its line items, and the matching stock
	// reservation as one unit of work. On success o.ID and o.CreatedAt are set.
	CreateOrder(ctx context.Context, o *domain.Order) error
	GetOrder(ctx context.Context, id int64) (domain.Order, error)
	SetStatus(ctx context.Context, id int64, status string) error
	ListLive(ctx context.Context, limit, offset int) ([]domain.Order, int, error)
}

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &domain.PersistenceError{Op: "begin order tx", Err: err}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()

	// 1. Order row
	var orderID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (order_uid, customer_name, table_number, status, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, o.Code, o.CustomerName, o.TableNumber, o.Status, now).Scan(&orderID)
	if err != nil {
		return &domain.PersistenceError{Op: "insert order", Err: err}
	}

	for _, line := range o.Items {
		// 2. Line item
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity)
			VALUES (?, ?, ?)
		`, orderID, line.MenuItemID, line.Quantity); err != nil {
			return &domain.PersistenceError{Op: "insert order item", Err: err}
		}

		// 3. Reservation: check and decrement in the same statement so two
		// concurrent orders can never both take the last unit.
		var res sql.Result
		res, err = tx.ExecContext(ctx, `
			UPDATE menu_items SET available = available - ?
			WHERE id = ? AND available >= ?
		`, line.Quantity, line.MenuItemID, line.Quantity)
		if err != nil {
			return &domain.PersistenceError{Op: "reserve stock", Err: err}
		}
		var affected int64
		affected, err = res.RowsAffected()
		if err != nil {
			return &domain.PersistenceError{Op: "reserve stock", Err: err}
		}
		if affected == 0 {
			err = r.stockError(ctx, tx, line)
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return &domain.PersistenceError{Op: "commit order tx", Err: err}
	}
	o.ID = orderID
	o.CreatedAt = now
	return nil
}

// stockError resolves why a conditional decrement matched no row: the item is
// missing or the remaining stock is short of the request.
func (r *OrderRepository) stockError(ctx context.Context, tx *sql.Tx, line domain.OrderLine) error {
	var name string
	var available int
	err := tx.QueryRowContext(ctx,
		`SELECT name, available FROM menu_items WHERE id = ?`, line.MenuItemID,
	).Scan(&name, &available)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return &domain.PersistenceError{Op: "inspect stock", Err: err}
	}
	return &domain.InsufficientStockError{
		ItemID:    line.MenuItemID,
		Name:      name,
		Requested: line.Quantity,
		Available: available,
	}
}

func (r *OrderRepository) GetOrder(ctx context.Context, id int64) (domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_uid, COALESCE(customer_name, ''), COALESCE(table_number, 0), status, created_at
		FROM orders WHERE id = ?
	`, id).Scan(&o.ID, &o.Code, &o.CustomerName, &o.TableNumber, &o.Status, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, &domain.PersistenceError{Op: "get order", Err: err}
	}
	return o, nil
}

func (r *OrderRepository) SetStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return &domain.PersistenceError{Op: "update order status", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &domain.PersistenceError{Op: "update order status", Err: err}
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) ListLive(ctx context.Context, limit, offset int) ([]domain.Order, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM orders WHERE status NOT IN (?, ?)
	`, domain.StatusCompleted, domain.StatusCanceled).Scan(&total)
	if err != nil {
		return nil, 0, &domain.PersistenceError{Op: "count live orders", Err: err}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_uid, COALESCE(customer_name, ''), COALESCE(table_number, 0), status, created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, domain.StatusCompleted, domain.StatusCanceled, limit, offset)
	if err != nil {
		return nil, 0, &domain.PersistenceError{Op: "list live orders", Err: err}
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Code, &o.CustomerName, &o.TableNumber, &o.Status, &o.CreatedAt); err != nil {
			return nil, 0, &domain.PersistenceError{Op: "scan live order", Err: err}
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, &domain.PersistenceError{Op: "list live orders", Err: err}
	}

	for i := range orders {
		items, err := r.orderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}
		orders[i].Items = items
	}
	return orders, total, nil
}

func (r *OrderRepository) orderItems(ctx context.Context, orderID int64) ([]domain.OrderLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.menu_item_id, mi.name, mi.price, oi.quantity
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = ?
	`, orderID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list order items", Err: err}
	}
	defer rows.Close()

	items := make([]domain.OrderLine, 0)
	for rows.Next() {
		var l domain.OrderLine
		if err := rows.Scan(&l.MenuItemID, &l.Name, &l.Price, &l.Quantity); err != nil {
			return nil, &domain.PersistenceError{Op: "scan order item", Err: err}
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

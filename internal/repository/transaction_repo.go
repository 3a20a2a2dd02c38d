package repository

import (
	"context"
	"database/sql"
	"time"

	"pos-backend/internal/domain"
)

type TransactionRepositoryInterface interface {
	// Settle writes the ledger entry, its line items, the sold counters, and
	// the Completed status of the source order in one unit of work.
	Settle(ctx context.Context, t *domain.Transaction, orderID int64) error
	ListHistory(ctx context.Context, limit, offset int) ([]domain.Transaction, int, error)
}

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Settle(ctx context.Context, t *domain.Transaction, orderID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &domain.PersistenceError{Op: "begin settlement tx", Err: err}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()

	// 1. Ledger entry
	var transactionID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO transaction_history
		    (transaction_uid, order_uid, customer_name, table_number, total, tax, subtotal, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`, t.Code, t.OrderCode, t.CustomerName, t.TableNumber, t.Total, t.Tax, t.Subtotal, now).Scan(&transactionID)
	if err != nil {
		return &domain.PersistenceError{Op: "insert transaction", Err: err}
	}

	for _, line := range t.Items {
		// 2. Price snapshot per line, taken from the caller's cart
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO transaction_items (transaction_history_id, menu_item_id, quantity, price_at_sale)
			VALUES (?, ?, ?, ?)
		`, transactionID, line.MenuItemID, line.Quantity, line.PriceAtSale); err != nil {
			return &domain.PersistenceError{Op: "insert transaction item", Err: err}
		}

		// 3. Cumulative sold counter
		if _, err = tx.ExecContext(ctx, `
			UPDATE menu_items SET sold = sold + ? WHERE id = ?
		`, line.Quantity, line.MenuItemID); err != nil {
			return &domain.PersistenceError{Op: "increment sold counter", Err: err}
		}
	}

	// 4. Retire the source order
	if _, err = tx.ExecContext(ctx, `
		UPDATE orders SET status = ? WHERE id = ?
	`, domain.StatusCompleted, orderID); err != nil {
		return &domain.PersistenceError{Op: "complete order", Err: err}
	}

	if err = tx.Commit(); err != nil {
		return &domain.PersistenceError{Op: "commit settlement tx", Err: err}
	}
	t.ID = transactionID
	t.CreatedAt = now
	return nil
}

func (r *TransactionRepository) ListHistory(ctx context.Context, limit, offset int) ([]domain.Transaction, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transaction_history`).Scan(&total); err != nil {
		return nil, 0, &domain.PersistenceError{Op: "count transactions", Err: err}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, transaction_uid, COALESCE(order_uid, ''), COALESCE(customer_name, ''),
		       COALESCE(table_number, 0), subtotal, tax, total, created_at
		FROM transaction_history
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, &domain.PersistenceError{Op: "list transactions", Err: err}
	}
	defer rows.Close()

	txs := make([]domain.Transaction, 0)
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.Code, &t.OrderCode, &t.CustomerName,
			&t.TableNumber, &t.Subtotal, &t.Tax, &t.Total, &t.CreatedAt); err != nil {
			return nil, 0, &domain.PersistenceError{Op: "scan transaction", Err: err}
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, &domain.PersistenceError{Op: "list transactions", Err: err}
	}

	for i := range txs {
		items, err := r.transactionItems(ctx, txs[i].ID)
		if err != nil {
			return nil, 0, err
		}
		txs[i].Items = items
	}
	return txs, total, nil
}

func (r *TransactionRepository) transactionItems(ctx context.Context, transactionID int64) ([]domain.TransactionLine, error) {
	// LEFT JOIN: the ledger outlives catalog deletions, names may be gone.
	rows, err := r.db.QueryContext(ctx, `
		SELECT ti.menu_item_id, COALESCE(mi.name, ''), ti.quantity, ti.price_at_sale
		FROM transaction_items ti
		LEFT JOIN menu_items mi ON mi.id = ti.menu_item_id
		WHERE ti.transaction_history_id = ?
	`, transactionID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list transaction items", Err: err}
	}
	defer rows.Close()

	items := make([]domain.TransactionLine, 0)
	for rows.Next() {
		var l domain.TransactionLine
		if err := rows.Scan(&l.MenuItemID, &l.Name, &l.Quantity, &l.PriceAtSale); err != nil {
			return nil, &domain.PersistenceError{Op: "scan transaction item", Err: err}
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"pos-backend/internal/domain"
)

type NotificationRepositoryInterface interface {
	Append(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, limit, offset int) ([]domain.Notification, int, error)
}

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepositoryInterface {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Append(ctx context.Context, n *domain.Notification) error {
	now := time.Now().UTC()
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO notifications (level, message, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`, n.Level, n.Message, now).Scan(&n.ID)
	if err != nil {
		return &domain.PersistenceError{Op: "insert notification", Err: err}
	}
	n.CreatedAt = now
	return nil
}

func (r *NotificationRepository) List(ctx context.Context, limit, offset int) ([]domain.Notification, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications`).Scan(&total); err != nil {
		return nil, 0, &domain.PersistenceError{Op: "count notifications", Err: err}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, level, message, created_at
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, &domain.PersistenceError{Op: "list notifications", Err: err}
	}
	defer rows.Close()

	out := make([]domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Level, &n.Message, &n.CreatedAt); err != nil {
			return nil, 0, &domain.PersistenceError{Op: "scan notification", Err: err}
		}
		out = append(out, n)
	}
	return out, total, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"pos-backend/internal/domain"
)

type MenuRepositoryInterface interface {
	ListMenu(ctx context.Context) ([]domain.MenuItem, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, item domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id int64) error
}

type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) MenuRepositoryInterface {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT mi.id, mi.name, COALESCE(mi.description, ''), mi.price, COALESCE(mi.image, ''),
		       mi.available, mi.sold, COALESCE(mi.category_id, 0), COALESCE(c.name, '')
		FROM menu_items mi
		LEFT JOIN categories c ON c.id = mi.category_id
		ORDER BY mi.id
	`)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list menu", Err: err}
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Image,
			&m.Available, &m.Sold, &m.CategoryID, &m.CategoryName); err != nil {
			return nil, &domain.PersistenceError{Op: "scan menu item", Err: err}
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *MenuRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list categories", Err: err}
	}
	defer rows.Close()

	cats := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, &domain.PersistenceError{Op: "scan category", Err: err}
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *MenuRepository) GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, error) {
	var m domain.MenuItem
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image, ''),
		       available, sold, COALESCE(category_id, 0)
		FROM menu_items WHERE id = ?
	`, id).Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Image,
		&m.Available, &m.Sold, &m.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.MenuItem{}, domain.ErrMenuItemNotFound
	}
	if err != nil {
		return domain.MenuItem{}, &domain.PersistenceError{Op: "get menu item", Err: err}
	}
	return m, nil
}

func (r *MenuRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO menu_items (name, description, price, image, available, sold, category_id)
		VALUES (?, ?, ?, ?, ?, 0, ?)
		RETURNING id
	`, item.Name, item.Description, item.Price, item.Image, item.Available, item.CategoryID).Scan(&item.ID)
	if err != nil {
		return &domain.PersistenceError{Op: "insert menu item", Err: err}
	}
	return nil
}

func (r *MenuRepository) UpdateMenuItem(ctx context.Context, item domain.MenuItem) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE menu_items SET name = ?, description = ?, price = ?, image = ?, available = ?, category_id = ?
		WHERE id = ?
	`, item.Name, item.Description, item.Price, item.Image, item.Available, item.CategoryID, item.ID)
	if err != nil {
		return &domain.PersistenceError{Op: "update menu item", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &domain.PersistenceError{Op: "update menu item", Err: err}
	}
	if affected == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuRepository) DeleteMenuItem(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return &domain.PersistenceError{Op: "delete menu item", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return &domain.PersistenceError{Op: "delete menu item", Err: err}
	}
	if affected == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

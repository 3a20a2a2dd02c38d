package database

import (
	"context"
	"database/sql"
	"fmt"
)

type seedCategory struct {
	id   int64
	name string
}

type seedItem struct {
	id          int64
	name        string
	description string
	price       float64
	image       string
	available   int
	sold        int
	category    string
}

var seedCategories = []seedCategory{
	{1, "Main course"},
	{2, "Appetizer"},
	{3, "Dessert"},
	{4, "Beverage"},
}

var seedItems = []seedItem{
	{1, "Crispy Dory Sambal Matah", "Crispy dory fillets with sambal matah", 101.00, "https://images.unsplash.com/photo-1625944230942-905dc6196245?auto=format&fit=crop&w=600&q=60", 12, 6, "Main course"},
	{2, "Kopag Benedict", "Legendary poached eggs on toasted muffins", 75.00, "https://images.unsplash.com/photo-1525351484163-7529414344d8?auto=format&fit=crop&w=600&q=60", 5, 32, "Main course"},
	{3, "Holland Bitterballen", "Deep-fried bite sized balls with mustard", 50.50, "https://images.unsplash.com/photo-1585109649234-367a17723378?auto=format&fit=crop&w=600&q=60", 12, 6, "Appetizer"},
	{4, "Spicy Tuna Nachos", "Spicy tuna on crunchy nacho chips", 75.00, "https://images.unsplash.com/photo-1599974579626-1f33a11a1a9e?auto=format&fit=crop&w=600&q=60", 7, 32, "Appetizer"},
	{5, "Banana Wrap", "Golden brown fried bananas in a wrap", 75.00, "https://images.unsplash.com/photo-1625242663993-276707f4b3a4?auto=format&fit=crop&w=600&q=60", 12, 6, "Dessert"},
	{6, "Butterscotch", "A sweet and creamy drink", 35.00, "https://images.unsplash.com/photo-1551024709-8f237c2041f5?auto=format&fit=crop&w=600&q=60", 20, 15, "Beverage"},
}

// Seed loads the starter catalog when the tables are empty. Existing data is
// never touched, so it is safe to call on every startup.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count == 0 {
		for _, c := range seedCategories {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO categories (id, name) VALUES (?, ?)`, c.id, c.name); err != nil {
				return fmt.Errorf("seed category %q: %w", c.name, err)
			}
		}
	}

	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		return fmt.Errorf("count menu items: %w", err)
	}
	if count == 0 {
		for _, it := range seedItems {
			if _, err := db.ExecContext(ctx, `
				INSERT INTO menu_items (id, name, description, price, image, available, sold, category_id)
				VALUES (?, ?, ?, ?, ?, ?, ?, (SELECT id FROM categories WHERE name = ?))
			`, it.id, it.name, it.description, it.price, it.image, it.available, it.sold, it.category); err != nil {
				return fmt.Errorf("seed menu item %q: %w", it.name, err)
			}
		}
	}
	return nil
}

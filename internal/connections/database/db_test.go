package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAppliesSchema(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Ping(ctx, db))

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)

	for _, table := range []string{
		"categories", "menu_items", "orders", "order_items",
		"transaction_history", "transaction_items", "notifications",
	} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "table %s missing", table)
	}

	// Migrate is idempotent.
	require.NoError(t, Migrate(ctx, db))
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Seed(ctx, db))

	var categories, items int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&categories))
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&items))
	assert.Equal(t, 4, categories)
	assert.Equal(t, 6, items)

	// Every seeded item resolved its category.
	var orphans int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM menu_items WHERE category_id IS NULL`).Scan(&orphans))
	assert.Zero(t, orphans)

	// A second run leaves existing rows alone.
	require.NoError(t, Seed(ctx, db))
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&items))
	assert.Equal(t, 6, items)
}

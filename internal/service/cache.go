package service

import (
	"context"
	"encoding/json"
	"time"

	"pos-backend/internal/domain"
	"pos-backend/internal/pkg/cache"
)

const menuCacheTTL = 30 * time.Second

// menuCache is a nil-safe wrapper around the shared cache for the menu read
// path. Inventory and settlement mutate menu rows, so they invalidate it too.
type menuCache struct {
	c cache.Cache
}

func (m *menuCache) key() string {
	return m.c.GenerateKey("menu", "all")
}

func (m *menuCache) get(ctx context.Context) ([]domain.MenuItem, bool) {
	if m == nil || m.c == nil {
		return nil, false
	}
	raw, err := m.c.Get(ctx, m.key())
	if err != nil || raw == "" {
		return nil, false
	}
	var items []domain.MenuItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false
	}
	return items, true
}

func (m *menuCache) store(ctx context.Context, items []domain.MenuItem) {
	if m == nil || m.c == nil {
		return
	}
	b, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = m.c.Set(ctx, m.key(), string(b), menuCacheTTL)
}

func (m *menuCache) invalidate(ctx context.Context) {
	if m == nil || m.c == nil {
		return
	}
	_ = m.c.Del(ctx, m.key())
}

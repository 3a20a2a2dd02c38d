package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"pos-backend/internal/common/logger"
	"pos-backend/internal/connections/database"
	"pos-backend/internal/domain"
	"pos-backend/internal/pkg/cache"
	"pos-backend/internal/repository"
)

// recordingBroadcaster captures every event for assertions.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *recordingBroadcaster) Broadcast(e domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingBroadcaster) all() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out
}

func newTestService(t *testing.T) (*Service, *recordingBroadcaster, *sql.DB) {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	bc := &recordingBroadcaster{}
	svc := New(repository.New(db), bc, cache.NewMemoryCache("test"), logger.New("test"))
	return svc, bc, db
}

func seedCatalog(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()
	_, err := db.ExecContext(ctx, `INSERT INTO categories (id, name) VALUES (1, 'Main course')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `
		INSERT INTO menu_items (id, name, description, price, image, available, sold, category_id)
		VALUES (1, 'Dory Sambal', '', 101.00, '', 10, 0, 1),
		       (2, 'Bitterballen', '', 50.50, '', 3, 5, 1)
	`)
	require.NoError(t, err)
}

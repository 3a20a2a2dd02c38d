package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-backend/internal/domain"
)

func TestMenuList_ServesFromCache(t *testing.T) {
	svc, _, db := newTestService(t)
	seedCatalog(t, db)
	ctx := context.Background()

	first, err := svc.Menu.ListMenu(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// A write that bypasses the service is invisible while the cache holds.
	_, err = db.ExecContext(ctx, `
		INSERT INTO menu_items (id, name, price, available, sold, category_id)
		VALUES (3, 'Smuggled Special', 1.00, 1, 0, 1)
	`)
	require.NoError(t, err)

	second, err := svc.Menu.ListMenu(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestMenuMutationsInvalidateCache(t *testing.T) {
	svc, bc, db := newTestService(t)
	seedCatalog(t, db)
	ctx := context.Background()

	warm, err := svc.Menu.ListMenu(ctx)
	require.NoError(t, err)
	require.Len(t, warm, 2)

	item, err := svc.Menu.Create(ctx, domain.MenuItemRequest{
		Name: "Banana Wrap", Price: 75.00, Available: 12, CategoryID: 1,
	})
	require.NoError(t, err)
	assert.Greater(t, item.ID, int64(0))

	after, err := svc.Menu.ListMenu(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 3)

	require.NoError(t, svc.Menu.Update(ctx, item.ID, domain.MenuItemRequest{
		Name: "Banana Wrap", Price: 80.00, Available: 12, CategoryID: 1,
	}))
	require.NoError(t, svc.Menu.Delete(ctx, item.ID))

	final, err := svc.Menu.ListMenu(ctx)
	require.NoError(t, err)
	assert.Len(t, final, 2)

	events := bc.all()
	require.Len(t, events, 3) // create, update, delete
	assert.Contains(t, events[0].Message, "Banana Wrap")
	for _, e := range events {
		assert.Equal(t, domain.EventUpdateAll, e.Type)
	}
}

func TestOrderInvalidatesMenuCache(t *testing.T) {
	svc, _, db := newTestService(t)
	seedCatalog(t, db)
	ctx := context.Background()

	warm, err := svc.Menu.ListMenu(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, warm[0].Available)

	_, err = svc.Orders.Create(ctx, domain.CreateOrderRequest{
		Items: []domain.OrderItemInput{{ID: 1, Quantity: 4}},
	})
	require.NoError(t, err)

	after, err := svc.Menu.ListMenu(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, after[0].Available, "reservation must evict the cached menu")
}

func TestMenuCreate_Validation(t *testing.T) {
	svc, bc, _ := newTestService(t)
	ctx := context.Background()

	cases := []domain.MenuItemRequest{
		{Price: 1},                                // no name
		{Name: "x", Price: -1},                    // negative price
		{Name: "x", Price: 1, Available: -1},      // negative stock
	}
	for _, req := range cases {
		_, err := svc.Menu.Create(ctx, req)
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	}
	assert.Empty(t, bc.all())
}

func TestNotificationPost(t *testing.T) {
	svc, bc, _ := newTestService(t)
	ctx := context.Background()

	n, err := svc.Notifications.Post(ctx, domain.NotificationRequest{Message: "fryer is down", Level: domain.LevelWarning})
	require.NoError(t, err)
	assert.Greater(t, n.ID, int64(0))

	events := bc.all()
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventNotification, events[0].Type)
	assert.Equal(t, "fryer is down", events[0].Message)

	// Level defaults to info when omitted.
	n2, err := svc.Notifications.Post(ctx, domain.NotificationRequest{Message: "doors open"})
	require.NoError(t, err)
	assert.Equal(t, domain.LevelInfo, n2.Level)

	_, err = svc.Notifications.Post(ctx, domain.NotificationRequest{Message: "x", Level: "shout"})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Notifications.Post(ctx, domain.NotificationRequest{})
	assert.ErrorAs(t, err, &ve)

	list, total, err := svc.Notifications.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, list, 2)
}

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-backend/internal/domain"
)

func TestOrderCreate(t *testing.T) {
	svc, bc, db := newTestService(t)
	seedCatalog(t, db)
	ctx := context.Background()

	order, err := svc.Orders.Create(ctx, domain.CreateOrderRequest{
		CustomerName: "Ada",
		TableNumber:  4,
		Items:        []domain.OrderItemInput{{ID: 1, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaiting, order.Status)
	assert.True(t, strings.HasPrefix(order.Code, "#"))

	events := bc.all()
	require.Len(t, events, 1, "exactly one broadcast per successful mutation")
	assert.Equal(t, domain.EventUpdateAll, events[0].Type)
	assert.Contains(t, events[0].Message, "Table 4")
}

func TestOrderCreate_Validation(t *testing.T) {
	svc, bc, _ := newTestService(t)
	ctx := context.Background()

	cases := []domain.CreateOrderRequest{
		{CustomerName: "Ada"},                                         // no items
		{Items: []domain.OrderItemInput{{ID: 0, Quantity: 1}}},        // missing id
		{Items: []domain.OrderItemInput{{ID: 1, Quantity: 0}}},        // zero quantity
		{TableNumber: -1, Items: []domain.OrderItemInput{{ID: 1, Quantity: 1}}}, // negative table
	}
	for _, req := range cases {
		_, err := svc.Orders.Create(ctx, req)
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	}
	assert.Empty(t, bc.all(), "rejected requests must not broadcast")
}

func TestOrderCreate_InsufficientStock_NoBroadcast(t *testing.T) {
	svc, bc, db := newTestService(t)
	seedCatalog(t, db)
	ctx := context.Background()

	_, err := svc.Orders.Create(ctx, domain.CreateOrderRequest{
		Items: []domain.OrderItemInput{{ID: 2, Quantity: 5}},
	})
	var ise *domain.InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, int64(2), ise.ItemID)
	assert.Empty(t, bc.all())
}

func TestOrderSetStatus(t *testing.T) {
	svc, bc, db := newTestService(t)
	seedCatalog(t, db)
	ctx := context.Background()

	order, err := svc.Orders.Create(ctx, domain.CreateOrderRequest{
		Items: []domain.OrderItemInput{{ID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Orders.SetStatus(ctx, order.ID, domain.StatusReady))
	events := bc.all()
	require.Len(t, events, 2) // create + status change
	assert.Contains(t, events[1].Message, domain.StatusReady)

	err = svc.Orders.SetStatus(ctx, order.ID, "")
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)

	assert.ErrorIs(t, svc.Orders.SetStatus(ctx, 9999, domain.StatusReady), domain.ErrOrderNotFound)
	assert.Len(t, bc.all(), 2, "failed status changes must not broadcast")
}

func TestOrderListLive_ClampsPage(t *testing.T) {
	svc, _, db := newTestService(t)
	seedCatalog(t, db)
	ctx := context.Background()

	_, err := svc.Orders.Create(ctx, domain.CreateOrderRequest{
		Items: []domain.OrderItemInput{{ID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	live, total, err := svc.Orders.ListLive(ctx, -5, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, live, 1)
}

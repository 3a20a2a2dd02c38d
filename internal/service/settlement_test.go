package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pos-backend/internal/domain"
)

func TestSettle(t *testing.T) {
	svc, bc, db := newTestService(t)
	seedCatalog(t, db)
	ctx := context.Background()

	order, err := svc.Orders.Create(ctx, domain.CreateOrderRequest{
		CustomerName: "Ada",
		TableNumber:  4,
		Items:        []domain.OrderItemInput{{ID: 2, Quantity: 2}},
	})
	require.NoError(t, err)

	// The catalog price changes between order and settlement; the recorded
	// price must stay what the customer was charged.
	_, err = db.ExecContext(ctx, `UPDATE menu_items SET price = 99.00 WHERE id = 2`)
	require.NoError(t, err)

	code, err := svc.Settlement.Settle(ctx, domain.SettleRequest{
		OrderID:      order.ID,
		Cart:         []domain.CartItemInput{{ID: 2, Quantity: 2, Price: 10.00}},
		CustomerName: "Ada",
		TableNumber:  4,
		Subtotal:     20.00,
		Tax:          2.00,
		Total:        22.00,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "#T"))

	history, total, err := svc.Settlement.History(ctx, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, history, 1)
	assert.Equal(t, code, history[0].Code)
	assert.Equal(t, order.Code, history[0].OrderCode)
	assert.Equal(t, 20.00, history[0].Subtotal)
	assert.Equal(t, 2.00, history[0].Tax)
	assert.Equal(t, 22.00, history[0].Total)
	require.Len(t, history[0].Items, 1)
	assert.Equal(t, 10.00, history[0].Items[0].PriceAtSale)

	var sold int
	require.NoError(t, db.QueryRow(`SELECT sold FROM menu_items WHERE id = 2`).Scan(&sold))
	assert.Equal(t, 7, sold)

	var status string
	require.NoError(t, db.QueryRow(`SELECT status FROM orders WHERE id = ?`, order.ID).Scan(&status))
	assert.Equal(t, domain.StatusCompleted, status)

	events := bc.all()
	require.Len(t, events, 2) // order created + bill settled
	assert.Contains(t, events[1].Message, "settled")
}

func TestSettle_OrderNotFound(t *testing.T) {
	svc, bc, db := newTestService(t)
	seedCatalog(t, db)
	ctx := context.Background()

	_, err := svc.Settlement.Settle(ctx, domain.SettleRequest{
		OrderID: 9999,
		Cart:    []domain.CartItemInput{{ID: 1, Quantity: 1, Price: 101.00}},
		Total:   101.00,
	})
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	// Nothing written, nothing broadcast, counters unchanged.
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM transaction_history`).Scan(&count))
	assert.Zero(t, count)
	var sold int
	require.NoError(t, db.QueryRow(`SELECT sold FROM menu_items WHERE id = 1`).Scan(&sold))
	assert.Zero(t, sold)
	assert.Empty(t, bc.all())
}

func TestSettle_Validation(t *testing.T) {
	svc, bc, _ := newTestService(t)
	ctx := context.Background()

	cases := []domain.SettleRequest{
		{},                              // no order id
		{OrderID: 1},                    // empty cart
		{OrderID: 1, Cart: []domain.CartItemInput{{ID: 1, Quantity: 0, Price: 1}}},
		{OrderID: 1, Cart: []domain.CartItemInput{{ID: 1, Quantity: 1, Price: -1}}},
		{OrderID: 1, Cart: []domain.CartItemInput{{ID: 1, Quantity: 1, Price: 1}}, Tax: -0.5},
	}
	for _, req := range cases {
		_, err := svc.Settlement.Settle(ctx, req)
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	}
	assert.Empty(t, bc.all())
}

package commerce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderByIDJoinsItems(t *testing.T) {
	svc, st, cols := newTestService(t)
	ctx := context.Background()

	seedProduct(t, st, cols, Product{ID: "p1", Name: "Tea", Slug: "tea", Price: 1000, StockQuantity: 10})
	placed, err := svc.PlaceOrder(ctx, OrderRequest{
		UserID: "u1",
		Items:  []OrderItemRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)

	got, err := svc.OrderByID(ctx, placed.ID)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, got.ID)
	assert.Equal(t, int64(2000), got.TotalAmount)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "p1", got.Items[0].ProductID)
}

func TestOrderByIDNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.OrderByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestOrdersByUser(t *testing.T) {
	svc, st, cols := newTestService(t)
	ctx := context.Background()

	seedProduct(t, st, cols, Product{ID: "p1", Name: "Tea", Slug: "tea", Price: 1000, StockQuantity: 100})

	for range 2 {
		_, err := svc.PlaceOrder(ctx, OrderRequest{
			UserID: "u1",
			Items:  []OrderItemRequest{{ProductID: "p1", Quantity: 1}},
		})
		require.NoError(t, err)
	}
	_, err := svc.PlaceOrder(ctx, OrderRequest{
		UserID: "u2",
		Items:  []OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	orders, err := svc.OrdersByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, order := range orders {
		assert.Equal(t, "u1", order.UserID)
		require.Len(t, order.Items, 1)
		assert.Equal(t, order.ID, order.Items[0].OrderID)
	}

	// Index sort on creation time puts the earlier order first.
	assert.LessOrEqual(t, orders[0].CreatedAt, orders[1].CreatedAt)

	none, err := svc.OrdersByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAllOrders(t *testing.T) {
	svc, st, cols := newTestService(t)
	ctx := context.Background()

	seedProduct(t, st, cols, Product{ID: "p1", Name: "Tea", Slug: "tea", Price: 1000, StockQuantity: 100})
	for range 3 {
		_, err := svc.PlaceOrder(ctx, OrderRequest{
			Items: []OrderItemRequest{{ProductID: "p1", Quantity: 1}},
		})
		require.NoError(t, err)
	}

	orders, err := svc.AllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 3)
	for _, order := range orders {
		assert.Len(t, order.Items, 1)
	}
}

package store

import (
	"context"
	"testing"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/jekabolt/grbpwr-dashboard/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrders(t *testing.T) {
	storetest.Run(t, func(t *testing.T) dependency.Orders {
		return newTestDB(t).Orders()
	})
}

func TestAddOrderKeepsItemPosition(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	os := db.Orders()

	o, err := os.AddOrder(ctx, storetest.NewOrder("0550000000", entity.OrderStatusPending, 100, storetest.Base,
		storetest.Item("z", "Last by id", 10, 1),
		storetest.Item("a", "First by id", 10, 1),
	))
	require.NoError(t, err)

	got, err := os.GetOrderById(ctx, o.Id)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "z", got.Items[0].ProductId)
	assert.Equal(t, "a", got.Items[1].ProductId)
}

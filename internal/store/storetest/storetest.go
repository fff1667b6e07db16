// Package storetest holds the behaviour every dependency.Orders backend
// must share.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Base is the reference instant of the fixtures.
var Base = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

var (
	completed = mustFilter(entity.StatusPolicyCompleted)
	nonCancel = mustFilter(entity.StatusPolicyNotCancelled)
)

func mustFilter(p entity.StatusPolicy) entity.StatusFilter {
	sf, err := entity.StatusFilterByPolicy(p)
	if err != nil {
		panic(err)
	}
	return sf
}

// Item builds a line item.
func Item(productId, name string, price int64, quantity int) entity.OrderItem {
	return entity.OrderItem{
		ProductId:   productId,
		ProductName: name,
		Price:       decimal.NewFromInt(price),
		Quantity:    quantity,
	}
}

// NewOrder builds a valid order placed at createdAt.
func NewOrder(phone string, status entity.OrderStatus, total int64, createdAt time.Time, items ...entity.OrderItem) *entity.OrderNew {
	return &entity.OrderNew{
		CustomerName:    "Customer " + phone,
		CustomerPhone:   phone,
		CustomerAddress: "1 Main street",
		Wilaya:          "Alger",
		Items:           items,
		TotalAmount:     decimal.NewFromInt(total),
		ShippingCost:    decimal.NewFromInt(400),
		Status:          status,
		CreatedAt:       createdAt,
	}
}

// AssertDecimal compares decimals by value.
func AssertDecimal(t *testing.T, expected string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(got), "expected %s, got %s", expected, got.String())
}

// Run exercises an empty store returned by newStore.
func Run(t *testing.T, newStore func(t *testing.T) dependency.Orders) {
	ctx := context.Background()

	t.Run("EmptyStore", func(t *testing.T) {
		os := newStore(t)
		require.NoError(t, os.Ping(ctx))

		n, err := os.CountOrders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		total, err := os.TotalSales(ctx, completed)
		require.NoError(t, err)
		AssertDecimal(t, "0", total)

		customers, err := os.CountCustomers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, customers)

		top, err := os.TopSellingProducts(ctx, completed, 5)
		require.NoError(t, err)
		assert.Empty(t, top)

		recent, err := os.RecentOrders(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, recent)

		sales, err := os.SalesByDay(ctx, completed, Base.AddDate(0, 0, -6), Base, time.UTC)
		require.NoError(t, err)
		assert.Empty(t, sales)
	})

	t.Run("OrderCRUD", func(t *testing.T) {
		os := newStore(t)

		o, err := os.AddOrder(ctx, NewOrder("0550000000", "", 1000, Base,
			Item("p1", "Shirt", 500, 2),
		))
		require.NoError(t, err)
		assert.NotEmpty(t, o.Id)
		assert.Equal(t, entity.OrderStatusPending, o.Status)

		got, err := os.GetOrderById(ctx, o.Id)
		require.NoError(t, err)
		assert.Equal(t, "0550000000", got.CustomerPhone)
		AssertDecimal(t, "1000", got.TotalAmount)
		assert.True(t, got.CreatedAt.Equal(Base))
		require.Len(t, got.Items, 1)
		assert.Equal(t, "p1", got.Items[0].ProductId)
		assert.Equal(t, 2, got.Items[0].Quantity)
		AssertDecimal(t, "500", got.Items[0].Price)

		require.NoError(t, os.UpdateOrderStatus(ctx, o.Id, entity.OrderStatusDelivered))
		got, err = os.GetOrderById(ctx, o.Id)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusDelivered, got.Status)

		err = os.UpdateOrderStatus(ctx, o.Id, "lost")
		assert.ErrorIs(t, err, gerr.ErrInvalidOrder)

		require.NoError(t, os.DeleteOrderById(ctx, o.Id))
		_, err = os.GetOrderById(ctx, o.Id)
		assert.ErrorIs(t, err, gerr.ErrOrderNotFound)
		assert.ErrorIs(t, os.DeleteOrderById(ctx, o.Id), gerr.ErrOrderNotFound)
		assert.ErrorIs(t, os.UpdateOrderStatus(ctx, o.Id, entity.OrderStatusShipped), gerr.ErrOrderNotFound)
	})

	t.Run("AddOrderValidation", func(t *testing.T) {
		os := newStore(t)

		noItems := NewOrder("0550000000", entity.OrderStatusPending, 100, Base)
		_, err := os.AddOrder(ctx, noItems)
		assert.ErrorIs(t, err, gerr.ErrInvalidOrder)

		noPhone := NewOrder("", entity.OrderStatusPending, 100, Base, Item("p1", "Shirt", 100, 1))
		_, err = os.AddOrder(ctx, noPhone)
		assert.ErrorIs(t, err, gerr.ErrInvalidOrder)

		zeroQty := NewOrder("0550000000", entity.OrderStatusPending, 100, Base, Item("p1", "Shirt", 100, 0))
		_, err = os.AddOrder(ctx, zeroQty)
		assert.ErrorIs(t, err, gerr.ErrInvalidOrder)

		n, err := os.CountOrders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("SalesAndCustomers", func(t *testing.T) {
		os := newStore(t)
		add := func(on *entity.OrderNew) {
			_, err := os.AddOrder(ctx, on)
			require.NoError(t, err)
		}
		add(NewOrder("0550000000", entity.OrderStatusCancelled, 5000, Base, Item("p1", "Shirt", 5000, 1)))
		add(NewOrder("0550000000", entity.OrderStatusDelivered, 200, Base, Item("p1", "Shirt", 200, 1)))
		add(NewOrder("0660000000", entity.OrderStatusCompleted, 300, Base, Item("p2", "Hat", 300, 1)))
		add(NewOrder("0770000000", entity.OrderStatusPending, 700, Base, Item("p2", "Hat", 700, 1)))

		n, err := os.CountOrders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		customers, err := os.CountCustomers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, customers)

		total, err := os.TotalSales(ctx, completed)
		require.NoError(t, err)
		AssertDecimal(t, "500", total)

		total, err = os.TotalSales(ctx, nonCancel)
		require.NoError(t, err)
		AssertDecimal(t, "1200", total)

		total, err = os.TotalSales(ctx, entity.StatusFilter{})
		require.NoError(t, err)
		AssertDecimal(t, "0", total)

		total, err = os.TotalSales(ctx, entity.StatusFilter{Exclude: true})
		require.NoError(t, err)
		AssertDecimal(t, "6200", total)
	})

	t.Run("TopSellingProducts", func(t *testing.T) {
		os := newStore(t)
		add := func(on *entity.OrderNew) {
			_, err := os.AddOrder(ctx, on)
			require.NoError(t, err)
		}
		add(NewOrder("1", entity.OrderStatusDelivered, 0, Base.Add(-3*time.Hour),
			Item("p1", "Shirt", 100, 3),
			Item("p2", "Hat", 50, 1),
		))
		add(NewOrder("2", entity.OrderStatusDelivered, 0, Base.Add(-2*time.Hour),
			Item("p1", "Shirt v2", 120, 5),
			Item("p3", "Socks", 10, 4),
		))
		add(NewOrder("3", entity.OrderStatusPending, 0, Base.Add(-time.Hour),
			Item("p2", "Hat", 50, 100),
		))
		add(NewOrder("4", entity.OrderStatusDelivered, 0, Base,
			Item("p4", "Belt", 30, 4),
			Item("p5", "Scarf", 20, 2),
			Item("p6", "Gloves", 15, 1),
		))

		top, err := os.TopSellingProducts(ctx, completed, 5)
		require.NoError(t, err)
		require.Len(t, top, 5)

		assert.Equal(t, "p1", top[0].ProductId)
		assert.Equal(t, "Shirt", top[0].ProductName)
		assert.Equal(t, 8, top[0].UnitsSold)
		AssertDecimal(t, "900", top[0].TotalRevenue)

		// p3 and p4 tie on units, the lower id goes first
		assert.Equal(t, "p3", top[1].ProductId)
		assert.Equal(t, 4, top[1].UnitsSold)
		AssertDecimal(t, "40", top[1].TotalRevenue)
		assert.Equal(t, "p4", top[2].ProductId)
		assert.Equal(t, "p5", top[3].ProductId)

		// p2 and p6 tie on one unit, the pending line of p2 does not count
		assert.Equal(t, "p2", top[4].ProductId)
		assert.Equal(t, 1, top[4].UnitsSold)
		AssertDecimal(t, "50", top[4].TotalRevenue)

		top, err = os.TopSellingProducts(ctx, nonCancel, 1)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, "p2", top[0].ProductId)
		assert.Equal(t, 101, top[0].UnitsSold)
	})

	t.Run("RecentOrders", func(t *testing.T) {
		os := newStore(t)
		var ids []string
		for i := 0; i < 7; i++ {
			o, err := os.AddOrder(ctx, NewOrder("1", entity.OrderStatusCancelled, int64(i), Base.Add(time.Duration(i)*time.Minute),
				Item("p1", "Shirt", 10, i+1),
			))
			require.NoError(t, err)
			ids = append(ids, o.Id)
		}

		recent, err := os.RecentOrders(ctx, 5)
		require.NoError(t, err)
		require.Len(t, recent, 5)
		for i, o := range recent {
			assert.Equal(t, ids[6-i], o.Id)
			require.Len(t, o.Items, 1)
			assert.Equal(t, 7-i, o.Items[0].Quantity)
		}
	})

	t.Run("SalesByDay", func(t *testing.T) {
		os := newStore(t)
		add := func(on *entity.OrderNew) {
			_, err := os.AddOrder(ctx, on)
			require.NoError(t, err)
		}
		day := func(d int, h int) time.Time {
			return time.Date(2024, time.March, d, h, 0, 0, 0, time.UTC)
		}
		add(NewOrder("1", entity.OrderStatusDelivered, 100, day(4, 10), Item("p1", "Shirt", 100, 1)))
		add(NewOrder("1", entity.OrderStatusDelivered, 200, day(5, 1), Item("p1", "Shirt", 200, 1)))
		add(NewOrder("1", entity.OrderStatusDelivered, 300, day(5, 23), Item("p1", "Shirt", 300, 1)))
		add(NewOrder("1", entity.OrderStatusCancelled, 999, day(5, 12), Item("p1", "Shirt", 999, 1)))
		add(NewOrder("1", entity.OrderStatusDelivered, 400, day(8, 12), Item("p1", "Shirt", 400, 1)))
		// outside the window
		add(NewOrder("1", entity.OrderStatusDelivered, 800, day(3, 23), Item("p1", "Shirt", 800, 1)))
		add(NewOrder("1", entity.OrderStatusDelivered, 900, day(10, 13), Item("p1", "Shirt", 900, 1)))

		from := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
		sales, err := os.SalesByDay(ctx, completed, from, Base, time.UTC)
		require.NoError(t, err)
		require.Len(t, sales, 3)
		assert.Equal(t, "2024-03-04", sales[0].Date)
		AssertDecimal(t, "100", sales[0].Amount)
		assert.Equal(t, "2024-03-05", sales[1].Date)
		AssertDecimal(t, "500", sales[1].Amount)
		assert.Equal(t, "2024-03-08", sales[2].Date)
		AssertDecimal(t, "400", sales[2].Amount)

		// 23:00 UTC on the 5th is already the 6th in Algiers (UTC+1)
		algiers := time.FixedZone("CET", 3600)
		sales, err = os.SalesByDay(ctx, completed, from, Base, algiers)
		require.NoError(t, err)
		require.Len(t, sales, 4)
		assert.Equal(t, "2024-03-05", sales[1].Date)
		AssertDecimal(t, "200", sales[1].Amount)
		assert.Equal(t, "2024-03-06", sales[2].Date)
		AssertDecimal(t, "300", sales[2].Amount)
	})
}

package statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/dependency/mocks"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/jekabolt/grbpwr-dashboard/internal/store/bunt"
	"github.com/jekabolt/grbpwr-dashboard/internal/store/storetest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

func newTestOrders(t *testing.T) dependency.Orders {
	s, err := bunt.New(bunt.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s.Orders()
}

func newTestAggregator(t *testing.T, orders dependency.Orders) *Aggregator {
	a, err := New(nil, orders)
	require.NoError(t, err)
	a.now = func() time.Time { return now }
	return a
}

func addOrder(t *testing.T, orders dependency.Orders, on *entity.OrderNew) *entity.Order {
	o, err := orders.AddOrder(context.Background(), on)
	require.NoError(t, err)
	return o
}

func salesOn(st *entity.Statistics, day string) decimal.Decimal {
	for _, s := range st.SalesByDate {
		if s.Date == day {
			return s.Amount
		}
	}
	return decimal.NewFromInt(-1)
}

func TestNew(t *testing.T) {
	orders := mocks.NewOrders(t)

	a, err := New(nil, orders)
	require.NoError(t, err)
	assert.Equal(t, DefaultWindowDays, a.WindowDays())

	a, err = New(&Config{WindowDays: 1000}, orders)
	require.NoError(t, err)
	assert.Equal(t, DefaultWindowDays, a.WindowDays())
	assert.Equal(t, DefaultTopLimit, a.c.TopLimit)
	assert.Equal(t, "UTC", a.loc.String())

	_, err = New(&Config{StatusPolicy: "everything"}, orders)
	assert.Error(t, err)

	_, err = New(&Config{Timezone: "Mars/Olympus"}, orders)
	assert.Error(t, err)
}

func TestComputeEmptyStore(t *testing.T) {
	a := newTestAggregator(t, newTestOrders(t))

	st, err := a.Compute(context.Background())
	require.NoError(t, err)

	assert.True(t, st.TotalSales.IsZero())
	assert.Equal(t, 0, st.TotalOrders)
	assert.Equal(t, 0, st.TotalCustomers)
	assert.NotNil(t, st.TopSellingProducts)
	assert.Empty(t, st.TopSellingProducts)
	assert.NotNil(t, st.RecentOrders)
	assert.Empty(t, st.RecentOrders)
	require.Len(t, st.SalesByDate, 7)
	assert.Equal(t, "2024-03-04", st.SalesByDate[0].Date)
	assert.Equal(t, "2024-03-10", st.SalesByDate[6].Date)
	for _, s := range st.SalesByDate {
		assert.True(t, s.Amount.IsZero())
	}

	st, err = a.Compute(context.Background(), WithWindowDays(30))
	require.NoError(t, err)
	assert.Len(t, st.SalesByDate, 30)
}

func TestComputeSingleDeliveredOrder(t *testing.T) {
	orders := newTestOrders(t)
	addOrder(t, orders, storetest.NewOrder("0550000000", entity.OrderStatusDelivered, 1000, now.Add(-26*time.Hour),
		storetest.Item("p1", "Shirt", 500, 2),
	))
	a := newTestAggregator(t, orders)

	st, err := a.Compute(context.Background())
	require.NoError(t, err)

	storetest.AssertDecimal(t, "1000", st.TotalSales)
	assert.Equal(t, 1, st.TotalOrders)
	assert.Equal(t, 1, st.TotalCustomers)
	require.Len(t, st.TopSellingProducts, 1)
	assert.Equal(t, "p1", st.TopSellingProducts[0].ProductId)
	assert.Equal(t, "Shirt", st.TopSellingProducts[0].ProductName)
	assert.Equal(t, 2, st.TopSellingProducts[0].UnitsSold)
	storetest.AssertDecimal(t, "1000", st.TopSellingProducts[0].TotalRevenue)
	require.Len(t, st.RecentOrders, 1)
	storetest.AssertDecimal(t, "1000", salesOn(st, "2024-03-09"))
	storetest.AssertDecimal(t, "0", salesOn(st, "2024-03-10"))
}

func TestComputeCancelledExcluded(t *testing.T) {
	orders := newTestOrders(t)
	addOrder(t, orders, storetest.NewOrder("0550000000", entity.OrderStatusCancelled, 5000, now.Add(-time.Hour),
		storetest.Item("p1", "Shirt", 5000, 1),
	))
	addOrder(t, orders, storetest.NewOrder("0550000000", entity.OrderStatusDelivered, 200, now.Add(-time.Hour),
		storetest.Item("p1", "Shirt", 200, 1),
	))
	a := newTestAggregator(t, orders)

	st, err := a.Compute(context.Background())
	require.NoError(t, err)
	storetest.AssertDecimal(t, "200", st.TotalSales)
	assert.Equal(t, 1, st.TotalCustomers)
	assert.Equal(t, 2, st.TotalOrders)
	assert.Len(t, st.RecentOrders, 2)
	storetest.AssertDecimal(t, "200", salesOn(st, "2024-03-10"))
}

func TestComputeMergesProducts(t *testing.T) {
	orders := newTestOrders(t)
	addOrder(t, orders, storetest.NewOrder("1", entity.OrderStatusDelivered, 300, now.Add(-2*time.Hour),
		storetest.Item("p1", "Shirt", 100, 3),
	))
	addOrder(t, orders, storetest.NewOrder("2", entity.OrderStatusCompleted, 600, now.Add(-time.Hour),
		storetest.Item("p1", "Shirt", 120, 5),
	))
	a := newTestAggregator(t, orders)

	st, err := a.Compute(context.Background())
	require.NoError(t, err)
	require.Len(t, st.TopSellingProducts, 1)
	assert.Equal(t, 8, st.TopSellingProducts[0].UnitsSold)
	storetest.AssertDecimal(t, "900", st.TopSellingProducts[0].TotalRevenue)
}

func TestComputeLimitsAndPolicy(t *testing.T) {
	orders := newTestOrders(t)
	for i := 0; i < 8; i++ {
		status := entity.OrderStatusPending
		if i%2 == 0 {
			status = entity.OrderStatusDelivered
		}
		addOrder(t, orders, storetest.NewOrder("0550000000", status, 100, now.Add(-time.Duration(i)*time.Hour),
			storetest.Item(string(rune('a'+i)), "Product", 10, i+1),
		))
	}
	a := newTestAggregator(t, orders)
	ctx := context.Background()

	st, err := a.Compute(ctx)
	require.NoError(t, err)
	assert.Len(t, st.RecentOrders, 5)
	assert.True(t, st.RecentOrders[0].CreatedAt.Equal(now))
	require.Len(t, st.TopSellingProducts, 4)
	assert.Equal(t, "g", st.TopSellingProducts[0].ProductId)
	storetest.AssertDecimal(t, "400", st.TotalSales)

	notCancelled, err := entity.StatusFilterByPolicy(entity.StatusPolicyNotCancelled)
	require.NoError(t, err)
	st, err = a.Compute(ctx, WithStatusFilter(notCancelled), WithTopLimit(3), WithRecentLimit(2))
	require.NoError(t, err)
	storetest.AssertDecimal(t, "800", st.TotalSales)
	require.Len(t, st.TopSellingProducts, 3)
	assert.Equal(t, "h", st.TopSellingProducts[0].ProductId)
	assert.Len(t, st.RecentOrders, 2)
}

func TestComputeIdempotent(t *testing.T) {
	orders := newTestOrders(t)
	addOrder(t, orders, storetest.NewOrder("1", entity.OrderStatusDelivered, 300, now.Add(-50*time.Hour),
		storetest.Item("p1", "Shirt", 100, 3),
		storetest.Item("p2", "Hat", 50, 3),
	))
	a := newTestAggregator(t, orders)

	first, err := a.Compute(context.Background())
	require.NoError(t, err)
	second, err := a.Compute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeStoreUnavailable(t *testing.T) {
	orders := mocks.NewOrders(t)
	orders.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused"))
	a := newTestAggregator(t, orders)

	st, err := a.Compute(context.Background(), WithWindowDays(30))
	require.Error(t, err)
	assert.ErrorIs(t, err, gerr.ErrStoreUnavailable)
	require.NotNil(t, st)
	assert.True(t, st.TotalSales.IsZero())
	assert.Equal(t, 0, st.TotalOrders)
	assert.Empty(t, st.TopSellingProducts)
	assert.Empty(t, st.RecentOrders)
	assert.Len(t, st.SalesByDate, 30)
}

func TestComputeMetricFailures(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("query failed")

	t.Run("AllFail", func(t *testing.T) {
		orders := mocks.NewOrders(t)
		orders.EXPECT().Ping(mock.Anything).Return(nil)
		orders.EXPECT().CountOrders(mock.Anything).Return(0, dbErr)
		orders.EXPECT().TotalSales(mock.Anything, mock.Anything).Return(decimal.Zero, dbErr)
		orders.EXPECT().CountCustomers(mock.Anything).Return(0, dbErr)
		orders.EXPECT().TopSellingProducts(mock.Anything, mock.Anything, 5).Return(nil, dbErr)
		orders.EXPECT().RecentOrders(mock.Anything, 5).Return(nil, dbErr)
		orders.EXPECT().SalesByDay(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, dbErr)
		a := newTestAggregator(t, orders)

		st, err := a.Compute(ctx)
		require.NoError(t, err)
		assert.True(t, st.TotalSales.IsZero())
		assert.NotNil(t, st.TopSellingProducts)
		assert.NotNil(t, st.RecentOrders)
		require.Len(t, st.SalesByDate, 7)
		for _, s := range st.SalesByDate {
			assert.True(t, s.Amount.IsZero())
		}
	})

	t.Run("OneFails", func(t *testing.T) {
		orders := mocks.NewOrders(t)
		orders.EXPECT().Ping(mock.Anything).Return(nil)
		orders.EXPECT().CountOrders(mock.Anything).Return(3, nil)
		orders.EXPECT().TotalSales(mock.Anything, mock.Anything).Return(decimal.NewFromInt(750), nil)
		orders.EXPECT().CountCustomers(mock.Anything).Return(2, nil)
		orders.EXPECT().TopSellingProducts(mock.Anything, mock.Anything, 5).Return(nil, dbErr)
		orders.EXPECT().RecentOrders(mock.Anything, 5).Return([]entity.Order{{Id: "o1"}}, nil)
		orders.EXPECT().SalesByDay(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]entity.SalesByDate{{Date: "2024-03-08", Amount: decimal.NewFromInt(750)}}, nil)
		a := newTestAggregator(t, orders)

		st, err := a.Compute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, st.TotalOrders)
		assert.Equal(t, 2, st.TotalCustomers)
		storetest.AssertDecimal(t, "750", st.TotalSales)
		assert.Empty(t, st.TopSellingProducts)
		require.Len(t, st.RecentOrders, 1)
		storetest.AssertDecimal(t, "750", salesOn(st, "2024-03-08"))
	})

	t.Run("Panic", func(t *testing.T) {
		orders := mocks.NewOrders(t)
		orders.EXPECT().Ping(mock.Anything).Return(nil)
		orders.EXPECT().CountOrders(mock.Anything).RunAndReturn(func(context.Context) (int, error) {
			panic("boom")
		})
		orders.EXPECT().TotalSales(mock.Anything, mock.Anything).Return(decimal.NewFromInt(10), nil)
		orders.EXPECT().CountCustomers(mock.Anything).Return(1, nil)
		orders.EXPECT().TopSellingProducts(mock.Anything, mock.Anything, 5).Return([]entity.TopSellingProduct{}, nil)
		orders.EXPECT().RecentOrders(mock.Anything, 5).Return([]entity.Order{}, nil)
		orders.EXPECT().SalesByDay(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
		a := newTestAggregator(t, orders)

		st, err := a.Compute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, st.TotalOrders)
		storetest.AssertDecimal(t, "10", st.TotalSales)
	})
}

func TestComputeWindowPassedToStore(t *testing.T) {
	orders := mocks.NewOrders(t)
	orders.EXPECT().Ping(mock.Anything).Return(nil)
	orders.EXPECT().CountOrders(mock.Anything).Return(0, nil)
	orders.EXPECT().TotalSales(mock.Anything, mock.Anything).Return(decimal.Zero, nil)
	orders.EXPECT().CountCustomers(mock.Anything).Return(0, nil)
	orders.EXPECT().TopSellingProducts(mock.Anything, mock.Anything, 5).Return(nil, nil)
	orders.EXPECT().RecentOrders(mock.Anything, 5).Return(nil, nil)
	orders.EXPECT().SalesByDay(mock.Anything, mock.Anything,
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		now,
		time.UTC,
	).Return(nil, nil)
	a := newTestAggregator(t, orders)

	st, err := a.Compute(context.Background(), WithWindowDays(10))
	require.NoError(t, err)
	assert.Len(t, st.SalesByDate, 10)
}

func TestNormalizeTopSelling(t *testing.T) {
	top := normalizeTopSelling([]entity.TopSellingProduct{
		{ProductId: "b", ProductName: "B", UnitsSold: 2},
		{ProductId: "", ProductName: "", UnitsSold: 4},
		{ProductId: "a", ProductName: "A", UnitsSold: 2},
		{ProductId: "c", ProductName: "C", UnitsSold: 1},
	}, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "unknown", top[0].ProductId)
	assert.Equal(t, "Unknown Product", top[0].ProductName)
	assert.Equal(t, "a", top[1].ProductId)
	assert.Equal(t, "b", top[2].ProductId)
}

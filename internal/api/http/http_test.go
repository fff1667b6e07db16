package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency/mocks"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/jekabolt/grbpwr-dashboard/internal/statistics"
	"github.com/jekabolt/grbpwr-dashboard/internal/store/bunt"
	"github.com/jekabolt/grbpwr-dashboard/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type statisticsBody struct {
	Statistics struct {
		TotalSales         float64 `json:"totalSales"`
		TotalOrders        int     `json:"totalOrders"`
		TotalCustomers     int     `json:"totalCustomers"`
		TopSellingProducts []struct {
			ProductId    string  `json:"productId"`
			UnitsSold    int     `json:"unitsSold"`
			TotalRevenue float64 `json:"totalRevenue"`
		} `json:"topSellingProducts"`
		RecentOrders []struct {
			Id       string `json:"id"`
			Products []struct {
				ProductId string `json:"productId"`
			} `json:"products"`
		} `json:"recentOrders"`
		SalesByDate []struct {
			Date   string  `json:"date"`
			Amount float64 `json:"amount"`
		} `json:"salesByDate"`
	} `json:"statistics"`
	Error string `json:"error"`
}

func newTestServer(t *testing.T) (*Server, *bunt.Store) {
	s, err := bunt.New(bunt.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(s.Close)

	agg, err := statistics.New(nil, s.Orders())
	require.NoError(t, err)

	c := DefaultConfig()
	c.RateLimit = 0
	return New(&c, agg, s), s
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestGetStatistics(t *testing.T) {
	srv, s := newTestServer(t)
	_, err := s.Orders().AddOrder(context.Background(), storetest.NewOrder("0550000000", entity.OrderStatusDelivered, 1000, time.Now().UTC(),
		storetest.Item("p1", "Shirt", 500, 2),
	))
	require.NoError(t, err)
	h := srv.Handler()

	rr := get(t, h, "/api/statistics")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var body statisticsBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Empty(t, body.Error)
	assert.Equal(t, 1000.0, body.Statistics.TotalSales)
	assert.Equal(t, 1, body.Statistics.TotalOrders)
	assert.Equal(t, 1, body.Statistics.TotalCustomers)
	require.Len(t, body.Statistics.TopSellingProducts, 1)
	assert.Equal(t, 2, body.Statistics.TopSellingProducts[0].UnitsSold)
	assert.Equal(t, 1000.0, body.Statistics.TopSellingProducts[0].TotalRevenue)
	require.Len(t, body.Statistics.RecentOrders, 1)
	require.Len(t, body.Statistics.RecentOrders[0].Products, 1)
	require.Len(t, body.Statistics.SalesByDate, 7)
	assert.Equal(t, 1000.0, body.Statistics.SalesByDate[6].Amount)

	rr = get(t, h, "/api/statistics?days=30")
	require.Equal(t, http.StatusOK, rr.Code)
	body = statisticsBody{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Len(t, body.Statistics.SalesByDate, 30)
}

func TestGetStatisticsInvalidDays(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	for _, days := range []string{"0", "-1", "367", "abc", "1.5"} {
		rr := get(t, h, "/api/statistics?days="+days)
		assert.Equal(t, http.StatusBadRequest, rr.Code, days)
	}
	rr := get(t, h, "/api/statistics?days=366")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetStatisticsStoreUnavailable(t *testing.T) {
	orders := mocks.NewOrders(t)
	orders.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused"))
	agg, err := statistics.New(nil, orders)
	require.NoError(t, err)

	c := DefaultConfig()
	h := New(&c, agg, orders).Handler()

	rr := get(t, h, "/api/statistics")
	require.Equal(t, http.StatusOK, rr.Code)
	var body statisticsBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, errFetchStatistics, body.Error)
	assert.Zero(t, body.Statistics.TotalSales)
	assert.NotNil(t, body.Statistics.TopSellingProducts)
	assert.NotNil(t, body.Statistics.RecentOrders)
	assert.Len(t, body.Statistics.SalesByDate, 7)

	rr = get(t, h, "/api/health")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	rr := get(t, srv.Handler(), "/api/health")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestCORS(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.c.AllowedOrigins = []string{"https://admin.example.com"}
	h := srv.Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "https://admin.example.com", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))

	assert.True(t, isOriginAllowed("http://localhost:3000", nil))
}

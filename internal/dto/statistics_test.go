package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertEntityStatisticsNil(t *testing.T) {
	st := ConvertEntityStatistics(nil)
	bs, err := json.Marshal(st)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"totalSales": 0,
		"totalOrders": 0,
		"totalCustomers": 0,
		"topSellingProducts": [],
		"recentOrders": [],
		"salesByDate": []
	}`, string(bs))
}

func TestConvertEntityStatistics(t *testing.T) {
	at := time.Date(2024, time.March, 9, 13, 30, 0, 0, time.UTC)
	st := ConvertEntityStatistics(&entity.Statistics{
		TotalSales:     decimal.RequireFromString("1000.50"),
		TotalOrders:    2,
		TotalCustomers: 1,
		TopSellingProducts: []entity.TopSellingProduct{
			{ProductId: "p1", ProductName: "Shirt", UnitsSold: 2, TotalRevenue: decimal.NewFromInt(1000)},
		},
		RecentOrders: []entity.Order{{
			Id:              "o1",
			CustomerName:    "Amine",
			CustomerPhone:   "0550000000",
			CustomerAddress: "1 Main street",
			Wilaya:          "Alger",
			TotalAmount:     decimal.NewFromInt(1000),
			ShippingCost:    decimal.NewFromInt(400),
			Status:          entity.OrderStatusDelivered,
			CreatedAt:       at,
			UpdatedAt:       at,
			Items: []entity.OrderItem{
				{ProductId: "p1", ProductName: "Shirt", Price: decimal.NewFromInt(500), Quantity: 2, Size: "M"},
			},
		}},
		SalesByDate: []entity.SalesByDate{
			{Date: "2024-03-09", Amount: decimal.RequireFromString("1000.50")},
		},
	})

	bs, err := json.Marshal(st)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"totalSales": 1000.5,
		"totalOrders": 2,
		"totalCustomers": 1,
		"topSellingProducts": [
			{"productId": "p1", "productName": "Shirt", "unitsSold": 2, "totalRevenue": 1000}
		],
		"recentOrders": [{
			"id": "o1",
			"customerName": "Amine",
			"customerPhone": "0550000000",
			"customerAddress": "1 Main street",
			"wilaya": "Alger",
			"products": [
				{"productId": "p1", "productName": "Shirt", "price": 500, "quantity": 2, "size": "M"}
			],
			"totalAmount": 1000,
			"shippingCost": 400,
			"status": "delivered",
			"createdAt": "2024-03-09T13:30:00Z",
			"updatedAt": "2024-03-09T13:30:00Z"
		}],
		"salesByDate": [{"date": "2024-03-09", "amount": 1000.5}]
	}`, string(bs))
}

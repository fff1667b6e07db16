package dto

import (
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

// Statistics is the JSON shape of the dashboard snapshot. Amounts are
// plain JSON numbers.
type Statistics struct {
	TotalSales         float64             `json:"totalSales"`
	TotalOrders        int                 `json:"totalOrders"`
	TotalCustomers     int                 `json:"totalCustomers"`
	TopSellingProducts []TopSellingProduct `json:"topSellingProducts"`
	RecentOrders       []Order             `json:"recentOrders"`
	SalesByDate        []SalesByDate       `json:"salesByDate"`
}

type TopSellingProduct struct {
	ProductId    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	UnitsSold    int     `json:"unitsSold"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type SalesByDate struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type Order struct {
	Id              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress string      `json:"customerAddress"`
	Wilaya          string      `json:"wilaya"`
	Products        []OrderItem `json:"products"`
	TotalAmount     float64     `json:"totalAmount"`
	ShippingCost    float64     `json:"shippingCost"`
	Status          string      `json:"status"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type OrderItem struct {
	ProductId   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Size        string  `json:"size,omitempty"`
	Color       string  `json:"color,omitempty"`
}

func amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// ConvertEntityStatistics converts the snapshot to its JSON shape. Nil
// input yields the empty snapshot, never nil slices.
func ConvertEntityStatistics(st *entity.Statistics) *Statistics {
	if st == nil {
		st = entity.EmptyStatistics(nil)
	}
	res := &Statistics{
		TotalSales:         amount(st.TotalSales),
		TotalOrders:        st.TotalOrders,
		TotalCustomers:     st.TotalCustomers,
		TopSellingProducts: make([]TopSellingProduct, 0, len(st.TopSellingProducts)),
		RecentOrders:       make([]Order, 0, len(st.RecentOrders)),
		SalesByDate:        make([]SalesByDate, 0, len(st.SalesByDate)),
	}
	for _, p := range st.TopSellingProducts {
		res.TopSellingProducts = append(res.TopSellingProducts, TopSellingProduct{
			ProductId:    p.ProductId,
			ProductName:  p.ProductName,
			UnitsSold:    p.UnitsSold,
			TotalRevenue: amount(p.TotalRevenue),
		})
	}
	for i := range st.RecentOrders {
		res.RecentOrders = append(res.RecentOrders, ConvertEntityOrder(&st.RecentOrders[i]))
	}
	for _, s := range st.SalesByDate {
		res.SalesByDate = append(res.SalesByDate, SalesByDate{
			Date:   s.Date,
			Amount: amount(s.Amount),
		})
	}
	return res
}

func ConvertEntityOrder(o *entity.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductId:   it.ProductId,
			ProductName: it.ProductName,
			Price:       amount(it.Price),
			Quantity:    it.Quantity,
			Size:        it.Size,
			Color:       it.Color,
		})
	}
	return Order{
		Id:              o.Id,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		Wilaya:          o.Wilaya,
		Products:        items,
		TotalAmount:     amount(o.TotalAmount),
		ShippingCost:    amount(o.ShippingCost),
		Status:          string(o.Status),
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

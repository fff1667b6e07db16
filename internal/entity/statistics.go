package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SalesDateLayout is the calendar day key used by the sales series.
const SalesDateLayout = "2006-01-02"

// Statistics is the dashboard snapshot computed from the orders collection.
type Statistics struct {
	TotalSales         decimal.Decimal
	TotalOrders        int
	TotalCustomers     int
	TopSellingProducts []TopSellingProduct
	RecentOrders       []Order
	SalesByDate        []SalesByDate
}

// TopSellingProduct aggregates line items of qualifying orders by product.
type TopSellingProduct struct {
	ProductId    string          `db:"product_id"`
	ProductName  string          `db:"product_name"`
	UnitsSold    int             `db:"units_sold"`
	TotalRevenue decimal.Decimal `db:"total_revenue"`
}

// SalesByDate is the revenue of qualifying orders created on one calendar day.
type SalesByDate struct {
	Date   string          `db:"day"`
	Amount decimal.Decimal `db:"amount"`
}

// EmptyStatistics returns the all-default snapshot. The sales series is
// still gap filled over the given days so charts stay renderable.
func EmptyStatistics(salesByDate []SalesByDate) *Statistics {
	if salesByDate == nil {
		salesByDate = []SalesByDate{}
	}
	return &Statistics{
		TotalSales:         decimal.Zero,
		TopSellingProducts: []TopSellingProduct{},
		RecentOrders:       []Order{},
		SalesByDate:        salesByDate,
	}
}

// StatusFilter selects the orders that count toward revenue metrics.
// With Exclude set it matches every status not listed.
type StatusFilter struct {
	Statuses []OrderStatus
	Exclude  bool
}

// StatusPolicy names a predefined StatusFilter.
type StatusPolicy string

const (
	// StatusPolicyCompleted counts delivered and completed orders only.
	StatusPolicyCompleted StatusPolicy = "completed"
	// StatusPolicyNotCancelled counts every order that is not cancelled.
	StatusPolicyNotCancelled StatusPolicy = "not_cancelled"
)

// StatusFilterByPolicy resolves a policy name. Empty resolves to completed.
func StatusFilterByPolicy(p StatusPolicy) (StatusFilter, error) {
	switch p {
	case "", StatusPolicyCompleted:
		return StatusFilter{
			Statuses: []OrderStatus{OrderStatusDelivered, OrderStatusCompleted},
		}, nil
	case StatusPolicyNotCancelled:
		return StatusFilter{
			Statuses: []OrderStatus{OrderStatusCancelled},
			Exclude:  true,
		}, nil
	default:
		return StatusFilter{}, fmt.Errorf("unknown status policy %q", p)
	}
}

// Matches reports whether an order with status s qualifies.
func (sf StatusFilter) Matches(s OrderStatus) bool {
	listed := false
	for _, st := range sf.Statuses {
		if st == s {
			listed = true
			break
		}
	}
	return listed != sf.Exclude
}

// MatchesNone is true for an inclusive filter without statuses.
func (sf StatusFilter) MatchesNone() bool {
	return !sf.Exclude && len(sf.Statuses) == 0
}

// MatchesAll is true for an exclusive filter without statuses.
func (sf StatusFilter) MatchesAll() bool {
	return sf.Exclude && len(sf.Statuses) == 0
}

// StatusStrings returns the listed statuses as plain strings for query parameters.
func (sf StatusFilter) StatusStrings() []string {
	ss := make([]string, 0, len(sf.Statuses))
	for _, s := range sf.Statuses {
		ss = append(ss, string(s))
	}
	return ss
}

// TimeRange is a closed interval of instants.
type TimeRange struct {
	From time.Time
	To   time.Time
}

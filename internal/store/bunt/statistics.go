package bunt

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

func (os *orderStore) CountOrders(ctx context.Context) (int, error) {
	n := 0
	err := os.scan(func(*entity.Order) {
		n++
	})
	if err != nil {
		return 0, fmt.Errorf("can't count orders: %w", err)
	}
	return n, nil
}

func (os *orderStore) TotalSales(ctx context.Context, sf entity.StatusFilter) (decimal.Decimal, error) {
	total := decimal.Zero
	err := os.scan(func(o *entity.Order) {
		if sf.Matches(o.Status) {
			total = total.Add(o.TotalAmount)
		}
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("can't sum total sales: %w", err)
	}
	return total, nil
}

func (os *orderStore) CountCustomers(ctx context.Context) (int, error) {
	phones := map[string]struct{}{}
	err := os.scan(func(o *entity.Order) {
		if o.CustomerPhone != "" {
			phones[o.CustomerPhone] = struct{}{}
		}
	})
	if err != nil {
		return 0, fmt.Errorf("can't count customers: %w", err)
	}
	return len(phones), nil
}

func (os *orderStore) TopSellingProducts(ctx context.Context, sf entity.StatusFilter, limit int) ([]entity.TopSellingProduct, error) {
	byId := map[string]*entity.TopSellingProduct{}
	err := os.scan(func(o *entity.Order) {
		if !sf.Matches(o.Status) {
			return
		}
		for i := range o.Items {
			it := &o.Items[i]
			p, ok := byId[it.ProductId]
			if !ok {
				p = &entity.TopSellingProduct{
					ProductId:    it.ProductId,
					ProductName:  it.ProductName,
					TotalRevenue: decimal.Zero,
				}
				byId[it.ProductId] = p
			}
			p.UnitsSold += it.Quantity
			p.TotalRevenue = p.TotalRevenue.Add(it.Subtotal())
		}
	})
	if err != nil {
		return nil, fmt.Errorf("can't get top selling products: %w", err)
	}

	top := make([]entity.TopSellingProduct, 0, len(byId))
	for _, p := range byId {
		top = append(top, *p)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].UnitsSold != top[j].UnitsSold {
			return top[i].UnitsSold > top[j].UnitsSold
		}
		return top[i].ProductId < top[j].ProductId
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

func (os *orderStore) SalesByDay(ctx context.Context, sf entity.StatusFilter, from, to time.Time, loc *time.Location) ([]entity.SalesByDate, error) {
	if loc == nil {
		loc = time.UTC
	}
	byDay := map[string]decimal.Decimal{}
	err := os.scan(func(o *entity.Order) {
		if o.CreatedAt.Before(from) || o.CreatedAt.After(to) || !sf.Matches(o.Status) {
			return
		}
		day := o.CreatedAt.In(loc).Format(entity.SalesDateLayout)
		byDay[day] = byDay[day].Add(o.TotalAmount)
	})
	if err != nil {
		return nil, fmt.Errorf("can't get sales by day: %w", err)
	}

	sales := make([]entity.SalesByDate, 0, len(byDay))
	for day, amount := range byDay {
		sales = append(sales, entity.SalesByDate{Date: day, Amount: amount})
	}
	sort.Slice(sales, func(i, j int) bool {
		return sales[i].Date < sales[j].Date
	})
	return sales, nil
}

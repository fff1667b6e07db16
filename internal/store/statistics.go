package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

// statusCondition returns the WHERE fragment for the filter and puts its
// parameters into params.
func statusCondition(sf entity.StatusFilter, col string, params map[string]any) string {
	switch {
	case sf.MatchesAll():
		return "1 = 1"
	case sf.MatchesNone():
		return "1 = 0"
	case sf.Exclude:
		params["statuses"] = sf.StatusStrings()
		return col + " NOT IN (:statuses)"
	default:
		params["statuses"] = sf.StatusStrings()
		return col + " IN (:statuses)"
	}
}

func (ms *orderStore) CountOrders(ctx context.Context) (int, error) {
	n, err := QueryCountNamed(ctx, ms.DB(), `SELECT COUNT(*) FROM customer_order`, map[string]any{})
	if err != nil {
		return 0, fmt.Errorf("can't count orders: %w", err)
	}
	return int(n), nil
}

func (ms *orderStore) TotalSales(ctx context.Context, sf entity.StatusFilter) (decimal.Decimal, error) {
	params := map[string]any{}
	query := `
		SELECT COALESCE(SUM(co.total_amount), 0) AS total
		FROM customer_order co
		WHERE ` + statusCondition(sf, "co.status", params)
	r, err := QueryNamedOne[struct {
		Total decimal.Decimal `db:"total"`
	}](ctx, ms.DB(), query, params)
	if err != nil {
		return decimal.Zero, fmt.Errorf("can't sum total sales: %w", err)
	}
	return r.Total, nil
}

func (ms *orderStore) CountCustomers(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(DISTINCT customer_phone)
		FROM customer_order
		WHERE customer_phone <> ''`
	n, err := QueryCountNamed(ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return 0, fmt.Errorf("can't count customers: %w", err)
	}
	return int(n), nil
}

func (ms *orderStore) TopSellingProducts(ctx context.Context, sf entity.StatusFilter, limit int) ([]entity.TopSellingProduct, error) {
	params := map[string]any{"limit": limit}
	// product_name is the name of the earliest line item of the product
	query := `
		SELECT oi.product_id,
			SUBSTRING_INDEX(
				GROUP_CONCAT(oi.product_name ORDER BY co.created_at, co.id, oi.position SEPARATOR '\n'),
				'\n', 1) AS product_name,
			SUM(oi.quantity) AS units_sold,
			COALESCE(SUM(oi.price * oi.quantity), 0) AS total_revenue
		FROM order_item oi
		JOIN customer_order co ON oi.order_id = co.id
		WHERE ` + statusCondition(sf, "co.status", params) + `
		GROUP BY oi.product_id
		ORDER BY units_sold DESC, oi.product_id ASC
		LIMIT :limit`
	rows, err := QueryListNamed[entity.TopSellingProduct](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get top selling products: %w", err)
	}
	return rows, nil
}

func (ms *orderStore) SalesByDay(ctx context.Context, sf entity.StatusFilter, from, to time.Time, loc *time.Location) ([]entity.SalesByDate, error) {
	params := map[string]any{
		"from":   from.UTC(),
		"to":     to.UTC(),
		"utc":    "+00:00",
		"offset": utcOffset(to, loc),
	}
	query := `
		SELECT DATE_FORMAT(CONVERT_TZ(co.created_at, :utc, :offset), '%Y-%m-%d') AS day,
			COALESCE(SUM(co.total_amount), 0) AS amount
		FROM customer_order co
		WHERE co.created_at >= :from AND co.created_at <= :to
		AND ` + statusCondition(sf, "co.status", params) + `
		GROUP BY day
		ORDER BY day`
	rows, err := QueryListNamed[entity.SalesByDate](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get sales by day: %w", err)
	}
	return rows, nil
}

// utcOffset formats the offset of loc at t as +hh:mm. Days of the whole
// window are bucketed with the offset at its end.
func utcOffset(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	_, off := t.In(loc).Zone()
	sign := '+'
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("%c%02d:%02d", sign, off/3600, (off%3600)/60)
}

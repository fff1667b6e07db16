package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
)

// statusMatch returns the $match condition of the filter. An empty $in
// matches nothing and an empty $nin matches everything.
func statusMatch(sf entity.StatusFilter) bson.M {
	op := "$in"
	if sf.Exclude {
		op = "$nin"
	}
	return bson.M{"status": bson.M{op: sf.StatusStrings()}}
}

// aggregate runs the pipeline and decodes every result into T.
func aggregate[T any](ctx context.Context, os *orderStore, pipeline []bson.M) ([]T, error) {
	cursor, err := os.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	defer cursor.Close(ctx)

	result := []T{}
	for cursor.Next(ctx) {
		var t T
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		result = append(result, t)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}
	return result, nil
}

func (os *orderStore) CountOrders(ctx context.Context) (int, error) {
	n, err := os.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("can't count orders: %w", err)
	}
	return int(n), nil
}

func (os *orderStore) TotalSales(ctx context.Context, sf entity.StatusFilter) (decimal.Decimal, error) {
	rows, err := aggregate[struct {
		Total float64 `bson:"total"`
	}](ctx, os, []bson.M{
		{"$match": statusMatch(sf)},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$totalAmount"},
		}},
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("can't sum total sales: %w", err)
	}
	if len(rows) == 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromFloat(rows[0].Total), nil
}

func (os *orderStore) CountCustomers(ctx context.Context) (int, error) {
	phones, err := os.coll.Distinct(ctx, "customerPhone", bson.M{
		"customerPhone": bson.M{"$nin": bson.A{"", nil}},
	})
	if err != nil {
		return 0, fmt.Errorf("can't count customers: %w", err)
	}
	return len(phones), nil
}

func (os *orderStore) TopSellingProducts(ctx context.Context, sf entity.StatusFilter, limit int) ([]entity.TopSellingProduct, error) {
	rows, err := aggregate[struct {
		ProductId    string  `bson:"_id"`
		ProductName  string  `bson:"productName"`
		UnitsSold    int     `bson:"unitsSold"`
		TotalRevenue float64 `bson:"totalRevenue"`
	}](ctx, os, []bson.M{
		{"$match": statusMatch(sf)},
		// $first below takes the name of the earliest line item
		{"$sort": bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}},
		{"$unwind": "$products"},
		{"$group": bson.M{
			"_id":         bson.M{"$ifNull": bson.A{"$products.productId", ""}},
			"productName": bson.M{"$first": bson.M{"$ifNull": bson.A{"$products.productName", ""}}},
			"unitsSold":   bson.M{"$sum": "$products.quantity"},
			"totalRevenue": bson.M{"$sum": bson.M{
				"$multiply": bson.A{"$products.price", "$products.quantity"},
			}},
		}},
		{"$sort": bson.D{{Key: "unitsSold", Value: -1}, {Key: "_id", Value: 1}}},
		{"$limit": limit},
	})
	if err != nil {
		return nil, fmt.Errorf("can't get top selling products: %w", err)
	}

	top := make([]entity.TopSellingProduct, 0, len(rows))
	for _, r := range rows {
		top = append(top, entity.TopSellingProduct{
			ProductId:    r.ProductId,
			ProductName:  r.ProductName,
			UnitsSold:    r.UnitsSold,
			TotalRevenue: decimal.NewFromFloat(r.TotalRevenue),
		})
	}
	return top, nil
}

func (os *orderStore) SalesByDay(ctx context.Context, sf entity.StatusFilter, from, to time.Time, loc *time.Location) ([]entity.SalesByDate, error) {
	match := statusMatch(sf)
	match["createdAt"] = bson.M{"$gte": from, "$lte": to}
	rows, err := aggregate[struct {
		Day    string  `bson:"_id"`
		Amount float64 `bson:"amount"`
	}](ctx, os, []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format":   "%Y-%m-%d",
				"date":     "$createdAt",
				"timezone": timezone(loc, to),
			}},
			"amount": bson.M{"$sum": "$totalAmount"},
		}},
		{"$sort": bson.M{"_id": 1}},
	})
	if err != nil {
		return nil, fmt.Errorf("can't get sales by day: %w", err)
	}

	sales := make([]entity.SalesByDate, 0, len(rows))
	for _, r := range rows {
		sales = append(sales, entity.SalesByDate{
			Date:   r.Day,
			Amount: decimal.NewFromFloat(r.Amount),
		})
	}
	return sales, nil
}

// timezone returns an identifier $dateToString understands: the IANA name
// of loc when it has one, otherwise its offset at t.
func timezone(loc *time.Location, t time.Time) string {
	if loc == nil || loc == time.UTC {
		return "UTC"
	}
	if name := loc.String(); name != "Local" {
		if l, err := time.LoadLocation(name); err == nil && sameOffsets(l, loc, t) {
			return name
		}
	}
	_, off := t.In(loc).Zone()
	sign := '+'
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("%c%02d:%02d", sign, off/3600, (off%3600)/60)
}

func sameOffsets(a, b *time.Location, t time.Time) bool {
	_, oa := t.In(a).Zone()
	_, ob := t.In(b).Zone()
	return oa == ob
}

package app

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

type sampleProduct struct {
	id    string
	name  string
	price int64
	size  string
	color string
}

var sampleProducts = []sampleProduct{
	{id: "classic-blue-shirt", name: "قميص كلاسيكي أزرق", price: 2500, size: "M", color: "أزرق"},
	{id: "elegant-dress", name: "فستان أنيق", price: 4500, size: "S", color: "أحمر"},
	{id: "handbag", name: "حقيبة يد نسائية", price: 3500, size: "واحد", color: "بني"},
}

type sampleCustomer struct {
	name    string
	phone   string
	address string
	wilaya  string
}

var sampleCustomers = []sampleCustomer{
	{name: "Amine Benali", phone: "0550123456", address: "12 rue Didouche Mourad", wilaya: "Alger"},
	{name: "Sara Haddad", phone: "0661234567", address: "5 boulevard de l'ALN", wilaya: "Oran"},
	{name: "Yacine Boudiaf", phone: "0772345678", address: "3 cité 1000 logements", wilaya: "Constantine"},
}

var sampleStatuses = []entity.OrderStatus{
	entity.OrderStatusDelivered,
	entity.OrderStatusPending,
	entity.OrderStatusShipped,
	entity.OrderStatusDelivered,
	entity.OrderStatusCancelled,
	entity.OrderStatusProcessing,
}

const sampleShippingCost = 400

// SampleOrders returns deterministic demo orders spread over the days
// before now.
func SampleOrders(now time.Time, n int) []*entity.OrderNew {
	orders := make([]*entity.OrderNew, 0, n)
	for i := 0; i < n; i++ {
		c := sampleCustomers[i%len(sampleCustomers)]
		items := []entity.OrderItem{}
		for j := 0; j <= i%2; j++ {
			p := sampleProducts[(i+j)%len(sampleProducts)]
			items = append(items, entity.OrderItem{
				ProductId:   p.id,
				ProductName: p.name,
				Price:       decimal.NewFromInt(p.price),
				Quantity:    1 + (i+j)%3,
				Size:        p.size,
				Color:       p.color,
			})
		}
		total := decimal.NewFromInt(sampleShippingCost)
		for k := range items {
			total = total.Add(items[k].Subtotal())
		}
		orders = append(orders, &entity.OrderNew{
			CustomerName:    c.name,
			CustomerPhone:   c.phone,
			CustomerAddress: c.address,
			Wilaya:          c.wilaya,
			Items:           items,
			TotalAmount:     total,
			ShippingCost:    decimal.NewFromInt(sampleShippingCost),
			Status:          sampleStatuses[i%len(sampleStatuses)],
			CreatedAt:       now.Add(-time.Duration(i) * 17 * time.Hour),
		})
	}
	return orders
}

// Seed inserts n sample orders unless the store already has orders. It
// returns the number of inserted orders.
func Seed(ctx context.Context, orders dependency.Orders, now time.Time, n int) (int, error) {
	existing, err := orders.CountOrders(ctx)
	if err != nil {
		return 0, fmt.Errorf("can't count orders: %w", err)
	}
	if existing > 0 {
		slog.Default().InfoContext(ctx, "data already initialized",
			slog.Int("orders", existing),
		)
		return 0, nil
	}
	inserted := 0
	for _, on := range SampleOrders(now, n) {
		if _, err := orders.AddOrder(ctx, on); err != nil {
			return inserted, fmt.Errorf("can't add sample order: %w", err)
		}
		inserted++
	}
	slog.Default().InfoContext(ctx, "sample orders inserted",
		slog.Int("count", inserted),
	)
	return inserted, nil
}

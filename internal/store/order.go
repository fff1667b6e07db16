package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
)

type orderStore struct {
	*MYSQLStore
}

// Orders returns an object implementing the orders interface
func (ms *MYSQLStore) Orders() dependency.Orders {
	return &orderStore{
		MYSQLStore: ms,
	}
}

type orderItemRow struct {
	OrderId string `db:"order_id"`
	entity.OrderItem
}

const orderColumns = `id, customer_name, customer_phone, customer_address, wilaya,
	total_amount, shipping_cost, status, notes, created_at, updated_at`

func (ms *orderStore) AddOrder(ctx context.Context, on *entity.OrderNew) (*entity.Order, error) {
	if on == nil {
		return nil, fmt.Errorf("%w: order is nil", gerr.ErrInvalidOrder)
	}
	if err := on.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", gerr.ErrInvalidOrder, err)
	}

	now := ms.Now()
	createdAt := on.CreatedAt.UTC()
	if on.CreatedAt.IsZero() {
		createdAt = now
	}
	order := &entity.Order{
		Id:              uuid.New().String(),
		CustomerName:    on.CustomerName,
		CustomerPhone:   on.CustomerPhone,
		CustomerAddress: on.CustomerAddress,
		Wilaya:          on.Wilaya,
		TotalAmount:     on.TotalAmount,
		ShippingCost:    on.ShippingCost,
		Status:          on.Status,
		Notes:           on.Notes,
		CreatedAt:       createdAt,
		UpdatedAt:       now,
		Items:           on.Items,
	}

	err := ms.Tx(ctx, func(ctx context.Context, rep *MYSQLStore) error {
		query := `
		INSERT INTO customer_order (` + orderColumns + `)
		VALUES (:id, :customerName, :customerPhone, :customerAddress, :wilaya,
			:totalAmount, :shippingCost, :status, :notes, :createdAt, :updatedAt)`
		_, err := ExecNamed(ctx, rep.DB(), query, map[string]any{
			"id":              order.Id,
			"customerName":    order.CustomerName,
			"customerPhone":   order.CustomerPhone,
			"customerAddress": order.CustomerAddress,
			"wilaya":          order.Wilaya,
			"totalAmount":     order.TotalAmount,
			"shippingCost":    order.ShippingCost,
			"status":          string(order.Status),
			"notes":           order.Notes,
			"createdAt":       order.CreatedAt,
			"updatedAt":       order.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("can't insert order: %w", err)
		}

		rows := make([]map[string]any, 0, len(order.Items))
		for i, it := range order.Items {
			rows = append(rows, map[string]any{
				"order_id":     order.Id,
				"position":     i,
				"product_id":   it.ProductId,
				"product_name": it.ProductName,
				"price":        it.Price,
				"quantity":     it.Quantity,
				"size":         it.Size,
				"color":        it.Color,
			})
		}
		if err := BulkInsert(ctx, rep.DB(), "order_item", rows); err != nil {
			return fmt.Errorf("can't insert order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (ms *orderStore) GetOrderById(ctx context.Context, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM customer_order WHERE id = :id`
	order, err := QueryNamedOne[entity.Order](ctx, ms.DB(), query, map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gerr.ErrOrderNotFound
		}
		return nil, fmt.Errorf("can't get order by id: %w", err)
	}
	orders := []entity.Order{order}
	if err := ms.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (ms *orderStore) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", gerr.ErrInvalidOrder, status)
	}
	query := `UPDATE customer_order SET status = :status, updated_at = :updatedAt WHERE id = :id`
	n, err := ExecNamed(ctx, ms.DB(), query, map[string]any{
		"id":        id,
		"status":    string(status),
		"updatedAt": ms.Now(),
	})
	if err != nil {
		return fmt.Errorf("can't update order status: %w", err)
	}
	if n == 0 {
		return gerr.ErrOrderNotFound
	}
	return nil
}

func (ms *orderStore) DeleteOrderById(ctx context.Context, id string) error {
	n, err := ExecNamed(ctx, ms.DB(), `DELETE FROM customer_order WHERE id = :id`, map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("can't delete order: %w", err)
	}
	if n == 0 {
		return gerr.ErrOrderNotFound
	}
	return nil
}

func (ms *orderStore) RecentOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM customer_order ORDER BY created_at DESC, id DESC LIMIT :limit`
	orders, err := QueryListNamed[entity.Order](ctx, ms.DB(), query, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("can't get recent orders: %w", err)
	}
	if err := ms.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems loads the line items of the given orders in one query.
func (ms *orderStore) attachItems(ctx context.Context, orders []entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.Id)
	}
	query := `
	SELECT order_id, product_id, product_name, price, quantity, size, color
	FROM order_item
	WHERE order_id IN (:ids)
	ORDER BY order_id, position`
	rows, err := QueryListNamed[orderItemRow](ctx, ms.DB(), query, map[string]any{"ids": ids})
	if err != nil {
		return fmt.Errorf("can't get order items: %w", err)
	}
	byOrder := make(map[string][]entity.OrderItem, len(orders))
	for _, r := range rows {
		byOrder[r.OrderId] = append(byOrder[r.OrderId], r.OrderItem)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].Id]
		if orders[i].Items == nil {
			orders[i].Items = []entity.OrderItem{}
		}
	}
	return nil
}

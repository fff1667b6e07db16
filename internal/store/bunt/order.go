package bunt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/tidwall/buntdb"
)

type orderStore struct {
	db *buntdb.DB
}

type itemRecord struct {
	ProductId   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Size        string          `json:"size,omitempty"`
	Color       string          `json:"color,omitempty"`
}

// orderRecord is the stored document. Created duplicates CreatedAt as unix
// microseconds so that the created index orders numerically.
type orderRecord struct {
	Id              string          `json:"id"`
	CustomerName    string          `json:"customerName"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerAddress string          `json:"customerAddress"`
	Wilaya          string          `json:"wilaya"`
	Products        []itemRecord    `json:"products"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ShippingCost    decimal.Decimal `json:"shippingCost"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	Created         int64           `json:"created"`
}

func orderKey(id string) string {
	return orderKeyPrefix + id
}

func toRecord(o *entity.Order) orderRecord {
	items := make([]itemRecord, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, itemRecord{
			ProductId:   it.ProductId,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Size:        it.Size,
			Color:       it.Color,
		})
	}
	return orderRecord{
		Id:              o.Id,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		Wilaya:          o.Wilaya,
		Products:        items,
		TotalAmount:     o.TotalAmount,
		ShippingCost:    o.ShippingCost,
		Status:          string(o.Status),
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Created:         o.CreatedAt.UnixMicro(),
	}
}

func (r *orderRecord) entity() entity.Order {
	items := make([]entity.OrderItem, 0, len(r.Products))
	for _, it := range r.Products {
		items = append(items, entity.OrderItem{
			ProductId:   it.ProductId,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Size:        it.Size,
			Color:       it.Color,
		})
	}
	return entity.Order{
		Id:              r.Id,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		Wilaya:          r.Wilaya,
		TotalAmount:     r.TotalAmount,
		ShippingCost:    r.ShippingCost,
		Status:          entity.OrderStatus(r.Status),
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		Items:           items,
	}
}

func decodeOrder(val string) (entity.Order, error) {
	var r orderRecord
	if err := json.Unmarshal([]byte(val), &r); err != nil {
		return entity.Order{}, fmt.Errorf("can't decode order: %w", err)
	}
	return r.entity(), nil
}

func encodeOrder(o *entity.Order) (string, error) {
	bs, err := json.Marshal(toRecord(o))
	if err != nil {
		return "", fmt.Errorf("can't encode order: %w", err)
	}
	return string(bs), nil
}

func (os *orderStore) Ping(ctx context.Context) error {
	return ping(os.db)
}

func (os *orderStore) AddOrder(ctx context.Context, on *entity.OrderNew) (*entity.Order, error) {
	if on == nil {
		return nil, fmt.Errorf("%w: order is nil", gerr.ErrInvalidOrder)
	}
	if err := on.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", gerr.ErrInvalidOrder, err)
	}

	now := time.Now().UTC()
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
	val, err := encodeOrder(order)
	if err != nil {
		return nil, err
	}
	err = os.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(orderKey(order.Id), val, nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("can't insert order: %w", err)
	}
	return order, nil
}

func (os *orderStore) GetOrderById(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := os.db.View(func(tx *buntdb.Tx) error {
		val, err := tx.Get(orderKey(id))
		if err != nil {
			return err
		}
		order, err = decodeOrder(val)
		return err
	})
	if err != nil {
		if errors.Is(err, buntdb.ErrNotFound) {
			return nil, gerr.ErrOrderNotFound
		}
		return nil, fmt.Errorf("can't get order by id: %w", err)
	}
	return &order, nil
}

func (os *orderStore) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", gerr.ErrInvalidOrder, status)
	}
	err := os.db.Update(func(tx *buntdb.Tx) error {
		val, err := tx.Get(orderKey(id))
		if err != nil {
			return err
		}
		order, err := decodeOrder(val)
		if err != nil {
			return err
		}
		order.Status = status
		order.UpdatedAt = time.Now().UTC()
		val, err = encodeOrder(&order)
		if err != nil {
			return err
		}
		_, _, err = tx.Set(orderKey(id), val, nil)
		return err
	})
	if err != nil {
		if errors.Is(err, buntdb.ErrNotFound) {
			return gerr.ErrOrderNotFound
		}
		return fmt.Errorf("can't update order status: %w", err)
	}
	return nil
}

func (os *orderStore) DeleteOrderById(ctx context.Context, id string) error {
	err := os.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(orderKey(id))
		return err
	})
	if err != nil {
		if errors.Is(err, buntdb.ErrNotFound) {
			return gerr.ErrOrderNotFound
		}
		return fmt.Errorf("can't delete order: %w", err)
	}
	return nil
}

func (os *orderStore) RecentOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	orders := []entity.Order{}
	err := os.db.View(func(tx *buntdb.Tx) error {
		var derr error
		err := tx.Descend(createdIndex, func(_, val string) bool {
			if len(orders) >= limit {
				return false
			}
			o, err := decodeOrder(val)
			if err != nil {
				derr = err
				return false
			}
			orders = append(orders, o)
			return true
		})
		if err != nil {
			return err
		}
		return derr
	})
	if err != nil {
		return nil, fmt.Errorf("can't get recent orders: %w", err)
	}
	return orders, nil
}

// scan calls f for every order, oldest first. Orders created at the same
// instant come in key order.
func (os *orderStore) scan(f func(o *entity.Order)) error {
	return os.db.View(func(tx *buntdb.Tx) error {
		var derr error
		err := tx.Ascend(createdIndex, func(_, val string) bool {
			o, err := decodeOrder(val)
			if err != nil {
				derr = err
				return false
			}
			f(&o)
			return true
		})
		if err != nil {
			return err
		}
		return derr
	})
}

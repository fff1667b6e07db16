package entity

import (
	"fmt"
	"time"

	v "github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	// OrderStatusCompleted is not produced by the order screens but legacy
	// documents still carry it, so it is readable and counts as a sale.
	OrderStatusCompleted OrderStatus = "completed"
)

var knownStatuses = map[OrderStatus]bool{
	OrderStatusPending:    true,
	OrderStatusProcessing: true,
	OrderStatusShipped:    true,
	OrderStatusDelivered:  true,
	OrderStatusCancelled:  true,
	OrderStatusCompleted:  true,
}

func (os OrderStatus) Valid() bool {
	return knownStatuses[os]
}

// Order is a placed storefront order with its line items.
type Order struct {
	Id              string          `db:"id"`
	CustomerName    string          `db:"customer_name"`
	CustomerPhone   string          `db:"customer_phone"`
	CustomerAddress string          `db:"customer_address"`
	Wilaya          string          `db:"wilaya"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	ShippingCost    decimal.Decimal `db:"shipping_cost"`
	Status          OrderStatus     `db:"status"`
	Notes           string          `db:"notes"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
	Items           []OrderItem     `db:"-"`
}

// OrderItem is a product line of an order. Product name and price are
// copied from the product when the order is created.
type OrderItem struct {
	ProductId   string          `db:"product_id" valid:"required"`
	ProductName string          `db:"product_name" valid:"required"`
	Price       decimal.Decimal `db:"price"`
	Quantity    int             `db:"quantity"`
	Size        string          `db:"size"`
	Color       string          `db:"color"`
}

// Subtotal returns price * quantity.
func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

type OrderNew struct {
	CustomerName    string          `valid:"required"`
	CustomerPhone   string          `valid:"required"`
	CustomerAddress string          `valid:"required"`
	Wilaya          string          `valid:"required"`
	Items           []OrderItem     `valid:"required"`
	TotalAmount     decimal.Decimal `valid:"-"`
	ShippingCost    decimal.Decimal `valid:"-"`
	Status          OrderStatus     `valid:"-"`
	Notes           string          `valid:"-"`
	// CreatedAt is set by the store when zero.
	CreatedAt time.Time `valid:"-"`
}

// Validate checks presence and range constraints of a new order and
// defaults an empty status to pending.
func (on *OrderNew) Validate() error {
	if _, err := v.ValidateStruct(on); err != nil {
		return err
	}
	if len(on.Items) == 0 {
		return fmt.Errorf("order must contain at least one product")
	}
	for i, it := range on.Items {
		if it.Price.IsNegative() {
			return fmt.Errorf("item %d: price must be greater than or equal to 0", i)
		}
		if it.Quantity < 1 {
			return fmt.Errorf("item %d: quantity must be greater than 0", i)
		}
	}
	if on.TotalAmount.IsNegative() {
		return fmt.Errorf("total amount must be greater than or equal to 0")
	}
	if on.ShippingCost.IsNegative() {
		return fmt.Errorf("shipping cost must be greater than or equal to 0")
	}
	if on.Status == "" {
		on.Status = OrderStatusPending
	}
	if !on.Status.Valid() {
		return fmt.Errorf("unknown order status %q", on.Status)
	}
	return nil
}

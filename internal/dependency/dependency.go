package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	Orders interface {
		// Ping checks that the orders collection is reachable.
		Ping(ctx context.Context) error
		// CountOrders counts every order regardless of status.
		CountOrders(ctx context.Context) (int, error)
		// TotalSales sums total amount of orders matching the filter.
		TotalSales(ctx context.Context, sf entity.StatusFilter) (decimal.Decimal, error)
		// CountCustomers counts distinct non-empty customer phones over all orders.
		CountCustomers(ctx context.Context) (int, error)
		// TopSellingProducts groups line items of matching orders by product,
		// ordered by units sold descending and product id ascending.
		TopSellingProducts(ctx context.Context, sf entity.StatusFilter, limit int) ([]entity.TopSellingProduct, error)
		// RecentOrders returns the newest orders with their items.
		RecentOrders(ctx context.Context, limit int) ([]entity.Order, error)
		// SalesByDay sums total amount of matching orders created in [from, to]
		// per calendar day in loc. Days without sales are absent.
		SalesByDay(ctx context.Context, sf entity.StatusFilter, from, to time.Time, loc *time.Location) ([]entity.SalesByDate, error)

		AddOrder(ctx context.Context, on *entity.OrderNew) (*entity.Order, error)
		GetOrderById(ctx context.Context, id string) (*entity.Order, error)
		UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error
		DeleteOrderById(ctx context.Context, id string) error
	}

	Repository interface {
		Orders() Orders
		Ping(ctx context.Context) error
		Close()
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)

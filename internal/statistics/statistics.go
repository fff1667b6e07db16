// Package statistics computes the dashboard snapshot of the orders collection.
package statistics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"log/slog"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultWindowDays  = 7
	MaxWindowDays      = 366
	DefaultTopLimit    = 5
	DefaultRecentLimit = 5

	unknownProductId   = "unknown"
	unknownProductName = "Unknown Product"
)

// Config holds the aggregation policy.
type Config struct {
	WindowDays   int    `mapstructure:"window_days"`
	StatusPolicy string `mapstructure:"status_policy"`
	Timezone     string `mapstructure:"timezone"`
	TopLimit     int    `mapstructure:"top_limit"`
	RecentLimit  int    `mapstructure:"recent_limit"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WindowDays:   DefaultWindowDays,
		StatusPolicy: string(entity.StatusPolicyCompleted),
		Timezone:     "UTC",
		TopLimit:     DefaultTopLimit,
		RecentLimit:  DefaultRecentLimit,
	}
}

// Aggregator computes Statistics from an orders store. It holds no state
// between calls.
type Aggregator struct {
	orders dependency.Orders
	c      Config
	sf     entity.StatusFilter
	loc    *time.Location
	now    func() time.Time
}

// New creates an aggregator over the given store.
func New(c *Config, orders dependency.Orders) (*Aggregator, error) {
	cfg := DefaultConfig()
	if c != nil {
		cfg = *c
	}
	if cfg.WindowDays < 1 || cfg.WindowDays > MaxWindowDays {
		cfg.WindowDays = DefaultWindowDays
	}
	if cfg.TopLimit < 1 {
		cfg.TopLimit = DefaultTopLimit
	}
	if cfg.RecentLimit < 1 {
		cfg.RecentLimit = DefaultRecentLimit
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}

	sf, err := entity.StatusFilterByPolicy(entity.StatusPolicy(cfg.StatusPolicy))
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("can't load timezone %q: %w", cfg.Timezone, err)
	}

	return &Aggregator{
		orders: orders,
		c:      cfg,
		sf:     sf,
		loc:    loc,
		now:    time.Now,
	}, nil
}

type options struct {
	windowDays  int
	sf          entity.StatusFilter
	now         time.Time
	topLimit    int
	recentLimit int
}

// Option overrides the configured policy for a single Compute call.
type Option func(*options)

// WithWindowDays sets the sales series length. Values outside
// [1, MaxWindowDays] are ignored.
func WithWindowDays(days int) Option {
	return func(o *options) {
		if days >= 1 && days <= MaxWindowDays {
			o.windowDays = days
		}
	}
}

// WithStatusFilter replaces the qualifying status filter.
func WithStatusFilter(sf entity.StatusFilter) Option {
	return func(o *options) {
		o.sf = sf
	}
}

// WithNow pins the end of the sales window.
func WithNow(now time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithTopLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.topLimit = n
		}
	}
}

func WithRecentLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.recentLimit = n
		}
	}
}

// WindowDays returns the configured default series length.
func (a *Aggregator) WindowDays() int {
	return a.c.WindowDays
}

// Compute returns the statistics snapshot. Failures of single metrics are
// logged and replaced by their zero value. Only an unreachable store is
// reported as an error, and even then the returned snapshot is complete.
func (a *Aggregator) Compute(ctx context.Context, opts ...Option) (*entity.Statistics, error) {
	o := options{
		windowDays:  a.c.WindowDays,
		sf:          a.sf,
		now:         a.now(),
		topLimit:    a.c.TopLimit,
		recentLimit: a.c.RecentLimit,
	}
	for _, opt := range opts {
		opt(&o)
	}
	window := Window(o.now, o.windowDays, a.loc)

	if err := a.orders.Ping(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "orders store is unreachable",
			slog.String("err", err.Error()),
		)
		return entity.EmptyStatistics(FillSalesGaps(nil, window, a.loc)), fmt.Errorf("%w: %v", gerr.ErrStoreUnavailable, err)
	}

	st := entity.EmptyStatistics(nil)

	// Every goroutine owns one field of st and never returns an error so
	// that a failing metric does not cancel the others.
	var g errgroup.Group

	g.Go(a.metric(ctx, "total orders", func() error {
		n, err := a.orders.CountOrders(ctx)
		if err != nil {
			return err
		}
		st.TotalOrders = n
		return nil
	}))

	g.Go(a.metric(ctx, "total sales", func() error {
		total, err := a.orders.TotalSales(ctx, o.sf)
		if err != nil {
			return err
		}
		st.TotalSales = total
		return nil
	}))

	g.Go(a.metric(ctx, "total customers", func() error {
		n, err := a.orders.CountCustomers(ctx)
		if err != nil {
			return err
		}
		st.TotalCustomers = n
		return nil
	}))

	g.Go(a.metric(ctx, "top selling products", func() error {
		top, err := a.orders.TopSellingProducts(ctx, o.sf, o.topLimit)
		if err != nil {
			return err
		}
		st.TopSellingProducts = normalizeTopSelling(top, o.topLimit)
		return nil
	}))

	g.Go(a.metric(ctx, "recent orders", func() error {
		recent, err := a.orders.RecentOrders(ctx, o.recentLimit)
		if err != nil {
			return err
		}
		if len(recent) > o.recentLimit {
			recent = recent[:o.recentLimit]
		}
		if recent != nil {
			st.RecentOrders = recent
		}
		return nil
	}))

	st.SalesByDate = FillSalesGaps(nil, window, a.loc)
	g.Go(a.metric(ctx, "sales by date", func() error {
		points, err := a.orders.SalesByDay(ctx, o.sf, window.From, window.To, a.loc)
		if err != nil {
			return err
		}
		st.SalesByDate = FillSalesGaps(points, window, a.loc)
		return nil
	}))

	_ = g.Wait()
	return st, nil
}

// metric wraps a sub-computation so that its error or panic is logged
// and swallowed.
func (a *Aggregator) metric(ctx context.Context, name string, f func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
			if err != nil {
				slog.Default().ErrorContext(ctx, "can't compute "+name,
					slog.String("err", err.Error()),
				)
			}
			err = nil
		}()
		return f()
	}
}

func normalizeTopSelling(top []entity.TopSellingProduct, limit int) []entity.TopSellingProduct {
	result := make([]entity.TopSellingProduct, 0, len(top))
	for _, p := range top {
		if p.ProductId == "" {
			p.ProductId = unknownProductId
		}
		if p.ProductName == "" {
			p.ProductName = unknownProductName
		}
		result = append(result, p)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].UnitsSold != result[j].UnitsSold {
			return result[i].UnitsSold > result[j].UnitsSold
		}
		return result[i].ProductId < result[j].ProductId
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

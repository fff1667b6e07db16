package app

import (
	"context"
	"fmt"
	"sync"

	"log/slog"

	"github.com/jekabolt/grbpwr-dashboard/config"
	httpapi "github.com/jekabolt/grbpwr-dashboard/internal/api/http"
	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/statistics"
	"github.com/jekabolt/grbpwr-dashboard/internal/store"
	"github.com/jekabolt/grbpwr-dashboard/internal/store/bunt"
	"github.com/jekabolt/grbpwr-dashboard/internal/store/mongo"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
	once sync.Once
}

// New returns a new instance of App. A nil repository is opened from the
// config on Start.
func New(c *config.Config, rep dependency.Repository) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
		db:   rep,
	}
}

// OpenRepository connects to the orders backend selected by store.type.
func OpenRepository(ctx context.Context, c *config.Config) (dependency.Repository, error) {
	var (
		rep dependency.Repository
		err error
	)
	switch c.Store.Type {
	case config.StoreMySQL:
		var s *store.MYSQLStore
		if s, err = store.New(ctx, c.DB); err == nil {
			rep = s
		}
	case config.StoreMongo:
		var s *mongo.Store
		if s, err = mongo.New(ctx, c.Mongo); err == nil {
			rep = s
		}
	case config.StoreBunt, "":
		var s *bunt.Store
		if s, err = bunt.New(c.Bunt); err == nil {
			rep = s
		}
	default:
		err = fmt.Errorf("unknown store type %q", c.Store.Type)
	}
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting dashboard",
		slog.String("store", a.c.Store.Type),
	)

	if a.db == nil {
		a.db, err = OpenRepository(ctx, a.c)
		if err != nil {
			slog.Default().ErrorContext(ctx, "couldn't connect to the orders store",
				slog.String("err", err.Error()),
			)
			return err
		}
	}

	agg, err := statistics.New(&a.c.Statistics, a.db.Orders())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed to create statistics aggregator",
			slog.String("err", err.Error()),
		)
		return err
	}

	// start API server
	a.hs = httpapi.New(&a.c.HTTP, agg, a.db)
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	go func() {
		select {
		case <-a.hs.Done():
			a.closeDone()
		case <-a.done:
		}
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	a.closeDone()
}

func (a *App) closeDone() {
	a.once.Do(func() {
		close(a.done)
	})
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}

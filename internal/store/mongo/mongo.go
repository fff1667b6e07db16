// Package mongo keeps orders in a MongoDB collection and computes the
// dashboard metrics with aggregation pipelines.
package mongo

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config defines configurations to connect MongoDB.
type Config struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	Collection     string        `mapstructure:"collection"`
	MaxPoolSize    uint64        `mapstructure:"max_pool_size"`
	MinPoolSize    uint64        `mapstructure:"min_pool_size"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		URI:            "mongodb://localhost:27017",
		Database:       "dashboard",
		Collection:     "orders",
		MaxPoolSize:    50,
		MinPoolSize:    5,
		ConnectTimeout: 5 * time.Second,
	}
}

// Store implements dependency.Repository on top of MongoDB.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// New connects to MongoDB, checks the connection and ensures indexes.
func New(ctx context.Context, c Config) (*Store, error) {
	if c.URI == "" {
		return nil, fmt.Errorf("mongo connection uri is empty")
	}
	d := DefaultConfig()
	if c.Database == "" {
		c.Database = d.Database
	}
	if c.Collection == "" {
		c.Collection = d.Collection
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = d.ConnectTimeout
	}

	opts := options.Client().ApplyURI(c.URI).
		SetConnectTimeout(c.ConnectTimeout)
	if c.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(c.MaxPoolSize)
	}
	if c.MinPoolSize > 0 {
		opts.SetMinPoolSize(c.MinPoolSize)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	s := &Store{
		client: client,
		coll:   client.Database(c.Database).Collection(c.Collection),
	}
	if err := s.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	slog.Default().InfoContext(ctx, "connected to mongo",
		slog.String("database", c.Database),
		slog.String("collection", c.Collection),
	)
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "customerPhone", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("can't create order indexes: %w", err)
	}
	return nil
}

// Orders returns an object implementing the orders interface
func (s *Store) Orders() dependency.Orders {
	return &orderStore{coll: s.coll}
}

func (s *Store) Ping(ctx context.Context) error {
	return ping(ctx, s.coll)
}

// Close disconnects the client.
func (s *Store) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil {
		slog.Default().Error("can't disconnect mongo client",
			slog.String("err", err.Error()),
		)
	}
}

// Drop removes the orders collection.
func (s *Store) Drop(ctx context.Context) error {
	return s.coll.Drop(ctx)
}

func ping(ctx context.Context, coll *mongo.Collection) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := coll.Database().Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

// Package bunt keeps orders in a buntdb file or in memory.
package bunt

import (
	"context"
	"fmt"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/tidwall/buntdb"
)

const (
	orderKeyPrefix = "order:"
	createdIndex   = "order_created"
)

// Config defines where the database lives. ":memory:" keeps it in memory.
type Config struct {
	Path string `mapstructure:"path"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Path: ":memory:",
	}
}

// Store implements dependency.Repository on top of buntdb.
type Store struct {
	db *buntdb.DB
}

// New opens the database and creates its indexes.
func New(c Config) (*Store, error) {
	if c.Path == "" {
		c.Path = DefaultConfig().Path
	}
	db, err := buntdb.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("can't open bunt db %s: %w", c.Path, err)
	}
	err = db.ReplaceIndex(createdIndex, orderKeyPrefix+"*", buntdb.IndexJSON("created"))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("can't create index %s: %w", createdIndex, err)
	}
	return &Store{db: db}, nil
}

// Orders returns an object implementing the orders interface
func (s *Store) Orders() dependency.Orders {
	return &orderStore{db: s.db}
}

func (s *Store) Ping(ctx context.Context) error {
	return ping(s.db)
}

func (s *Store) Close() {
	_ = s.db.Close()
}

func ping(db *buntdb.DB) error {
	err := db.View(func(tx *buntdb.Tx) error {
		return nil
	})
	if err != nil {
		return fmt.Errorf("bunt db ping failed: %w", err)
	}
	return nil
}

package mongo

import (
	"context"
	"os"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/jekabolt/grbpwr-dashboard/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to MONGO_URI with a throwaway collection. Tests
// are skipped when no server is configured.
func newTestStore(t *testing.T) *Store {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI is not set")
	}
	c := DefaultConfig()
	c.URI = uri
	c.Database = "dashboard_test"
	c.Collection = "orders_" + uuid.NewString()

	s, err := New(context.Background(), c)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Drop(context.Background())
		s.Close()
	})
	return s
}

func TestOrders(t *testing.T) {
	storetest.Run(t, func(t *testing.T) dependency.Orders {
		return newTestStore(t).Orders()
	})
}

func TestMalformedId(t *testing.T) {
	ctx := context.Background()
	os := newTestStore(t).Orders()

	_, err := os.GetOrderById(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, gerr.ErrOrderNotFound)
	assert.ErrorIs(t, os.DeleteOrderById(ctx, "not-an-object-id"), gerr.ErrOrderNotFound)
}

func TestTimezone(t *testing.T) {
	at := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "UTC", timezone(nil, at))
	assert.Equal(t, "UTC", timezone(time.UTC, at))
	assert.Equal(t, "+05:45", timezone(time.FixedZone("custom", 5*3600+45*60), at))
	assert.Equal(t, "-03:00", timezone(time.FixedZone("", -3*3600), at))

	algiers, err := time.LoadLocation("Africa/Algiers")
	require.NoError(t, err)
	assert.Equal(t, "Africa/Algiers", timezone(algiers, at))
}

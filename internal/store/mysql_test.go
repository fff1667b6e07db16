package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestDB connects to MYSQL_DSN and empties the order tables. Tests are
// skipped when no database is configured.
func newTestDB(t *testing.T) *MYSQLStore {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		t.Skip("MYSQL_DSN is not set")
	}
	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.db.ExecContext(context.Background(), "DELETE FROM order_item")
	require.NoError(t, err)
	_, err = db.db.ExecContext(context.Background(), "DELETE FROM customer_order")
	require.NoError(t, err)

	return db
}

// Package postgreswrapper opens a postgresstore.Store on a real PostgreSQL database for
// integration tests. The adapter is chosen with ADAPTER_TYPE (pgx, sql or sqlx, default pgx).
// Tests using it are skipped unless LIBMGMT_TEST_DSN is set.
package postgreswrapper

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Chalhotra/LibMgmt/library/shell/config"
	"github.com/Chalhotra/LibMgmt/store/migrations"
	"github.com/Chalhotra/LibMgmt/store/postgresstore"
)

const (
	envDSN         = "LIBMGMT_TEST_DSN"
	envAdapterType = "ADAPTER_TYPE"
)

// Wrapper owns the pool behind the store it hands out.
type Wrapper struct {
	Store   postgresstore.Store
	Adapter string
	close   func()
}

// Close releases the pool.
func (w *Wrapper) Close() {
	w.close()
}

// CreateWrapperWithTestConfig migrates the test database to the latest schema, empties it, and
// opens a store with the adapter from ADAPTER_TYPE. The wrapper is closed when the test ends.
func CreateWrapperWithTestConfig(t testing.TB, options ...postgresstore.Option) *Wrapper {
	t.Helper()

	dsn := os.Getenv(envDSN)
	if dsn == "" {
		t.Skipf("%s is not set", envDSN)
	}

	adapter := strings.ToLower(os.Getenv(envAdapterType))
	if adapter == "" {
		adapter = config.AdapterPGX
	}

	ctx := context.Background()
	migrate(t, ctx, dsn)

	settings := config.Settings{DatabaseURL: dsn, DBAdapter: adapter}

	libraryStore, closeStore, err := config.OpenStore(ctx, settings, options...)
	require.NoError(t, err, "opening the %s store", adapter)

	w := &Wrapper{Store: libraryStore, Adapter: adapter, close: closeStore}
	CleanUp(t, dsn)
	t.Cleanup(w.Close)

	return w
}

func migrate(t testing.TB, ctx context.Context, dsn string) {
	t.Helper()

	db, err := config.NewSQLDB(ctx, dsn)
	require.NoError(t, err, "connecting for migrations")

	m, err := migrations.New(db)
	require.NoError(t, err)
	defer func() { _ = m.Close() }()

	require.NoError(t, m.Up(), "migrating the test database")
}

// CleanUp removes every row the library tables hold.
func CleanUp(t testing.TB, dsn string) {
	t.Helper()

	db, err := config.NewSQLDB(context.Background(), dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = db.Exec(fmt.Sprintf("TRUNCATE TABLE %s", strings.Join(tables, ", ")))
	require.NoError(t, err, "cleaning up the library tables")
}

var tables = []string{"checkouts", "books", "users", "library_events"}

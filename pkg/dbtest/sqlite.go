package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"deal_service/migrations"
	"deal_service/pkg/application/connectors"
)

// NewSQLite opens a throwaway sqlite database in the test's temp dir with the
// embedded schema applied.
func NewSQLite(t testing.TB) *sqlx.DB {
	t.Helper()

	rq := require.New(t)

	db, err := sqlx.Connect(migrations.DriverSQLite, connectors.SQLiteDSN(filepath.Join(t.TempDir(), "test.db")))
	rq.NoError(err)

	t.Cleanup(func() {
		db.Close()
	})

	rq.NoError(migrations.Apply(context.Background(), db, migrations.DriverSQLite))

	return db
}

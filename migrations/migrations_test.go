package migrations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"deal_service/migrations"
	"deal_service/pkg/dbtest"
)

func TestApplySQLite(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	db := dbtest.NewSQLite(t)

	// повторный запуск ничего не ломает
	rq.NoError(migrations.Apply(ctx, db, migrations.DriverSQLite))

	var tables []string
	rq.NoError(db.SelectContext(ctx, &tables,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`))
	rq.Equal([]string{"companies", "deal_tags", "deals", "distributors", "tags"}, tables)
}

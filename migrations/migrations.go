// Package migrations embeds the schema for every supported database driver.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/jmoiron/sqlx"
)

//go:embed *.sql sqlite/*.sql
var files embed.FS

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Apply runs every schema file for the given driver in lexical order. All
// statements are idempotent, so Apply is safe to run on every start.
func Apply(ctx context.Context, db *sqlx.DB, driver string) error {
	dir := "."
	if driver == DriverSQLite {
		dir = "sqlite"
	}

	names, err := fs.Glob(files, path.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("fs.Glob: %w", err)
	}

	sort.Strings(names)

	for _, name := range names {
		body, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("files.ReadFile(%s): %w", name, err)
		}

		if _, err = db.ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("db.ExecContext(%s): %w", name, err)
		}
	}

	return nil
}

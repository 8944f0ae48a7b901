package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrationFS embed.FS

var gooseDialects = map[string]goose.Dialect{
	MySQL:  goose.DialectMySQL,
	SQLite: goose.DialectSQLite3,
}

// Migrate applies every embedded migration for dialect that goose has not
// yet recorded in goose_db_version, in version order.  It returns the names
// of the migrations that were applied.
func Migrate(ctx context.Context, db *sql.DB, dialect string) ([]string, error) {
	d, ok := gooseDialects[dialect]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q", dialect)
	}
	fsys, err := fs.Sub(migrationFS, path.Join("migrations", dialect))
	if err != nil {
		return nil, err
	}
	p, err := goose.NewProvider(d, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	results, err := p.Up(ctx)
	applied := make([]string, 0, len(results))
	for _, r := range results {
		if r.Error == nil {
			applied = append(applied, strings.TrimSuffix(path.Base(r.Source.Path), ".sql"))
		}
	}
	if err != nil {
		return applied, fmt.Errorf("migrate: %w", err)
	}
	return applied, nil
}

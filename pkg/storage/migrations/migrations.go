// Package migrations embeds the SQL schema of every supported database.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Up applies all pending migrations for dialect ("postgres" or "sqlite").
func Up(ctx context.Context, db *sql.DB, dialect string) ([]string, error) {
	var d goose.Dialect
	switch dialect {
	case "postgres":
		d = goose.DialectPostgres
	case "sqlite":
		d = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("unknown migration dialect %q", dialect)
	}
	fsys, err := fs.Sub(files, dialect)
	if err != nil {
		return nil, err
	}
	provider, err := goose.NewProvider(d, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("init migrations: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	applied := make([]string, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Path)
	}
	return applied, nil
}

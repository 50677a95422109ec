package checkers

import (
	"context"
	"database/sql"
)

// SQLChecker pings a database/sql handle (SQLite store).
type SQLChecker struct {
	name string
	db   *sql.DB
}

func NewSQLChecker(name string, db *sql.DB) *SQLChecker {
	return &SQLChecker{name: name, db: db}
}

func (c *SQLChecker) Name() string { return c.name }

func (c *SQLChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.db.PingContext(ctx)
}

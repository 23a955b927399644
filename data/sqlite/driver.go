// Package sqlite provides a SQLite driver for sqlpage/data.
//
// This driver uses mattn/go-sqlite3 (github.com/mattn/go-sqlite3) as the underlying
// database/sql driver with CGO. It registers itself automatically when imported:
//
//	import _ "github.com/ncobase/sqlpage/data/sqlite"
//
// Example connection strings:
//
//	"file:events.db?cache=shared&mode=ro"  // URI format with options
//	"events.db"                            // Simple file path
//	":memory:"                             // In-memory database
package sqlite

import (
	"context"

	"entgo.io/ent/dialect"
	"github.com/ncobase/sqlpage/data"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// driver implements data.DatabaseDriver for SQLite.
type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "sqlite"
}

// Dialect returns the SQL dialect used for statement building.
func (d *driver) Dialect() string {
	return dialect.SQLite
}

// Connect opens a SQLite pool. SQLite works best with a single open
// connection, which is the default when max_open_conn is unset.
func (d *driver) Connect(ctx context.Context, cfg any) (any, error) {
	return data.OpenSQL(ctx, "sqlite", "sqlite3", cfg, data.PoolDefaults{MaxIdleConn: 2, MaxOpenConn: 1})
}

// Close terminates the SQLite connection and releases resources.
func (d *driver) Close(conn any) error {
	return data.CloseSQL("sqlite", conn)
}

// Ping verifies the SQLite connection is alive and functional.
func (d *driver) Ping(ctx context.Context, conn any) error {
	return data.PingSQL(ctx, "sqlite", conn)
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}

// Package mysql provides a MySQL driver for sqlpage/data.
//
// This driver uses the official MySQL driver (github.com/go-sql-driver/mysql)
// as the underlying database/sql driver. It registers itself automatically when imported:
//
//	import _ "github.com/ncobase/sqlpage/data/mysql"
//
// Example DSN format:
//
//	user:pass@tcp(localhost:3306)/dbname?parseTime=true
package mysql

import (
	"context"

	"entgo.io/ent/dialect"
	"github.com/ncobase/sqlpage/data"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// driver implements data.DatabaseDriver for MySQL.
type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "mysql"
}

// Dialect returns the SQL dialect used for statement building.
func (d *driver) Dialect() string {
	return dialect.MySQL
}

// Connect opens a MySQL pool.
func (d *driver) Connect(ctx context.Context, cfg any) (any, error) {
	return data.OpenSQL(ctx, "mysql", "mysql", cfg, data.PoolDefaults{})
}

// Close terminates the MySQL connection and releases resources.
func (d *driver) Close(conn any) error {
	return data.CloseSQL("mysql", conn)
}

// Ping verifies the MySQL connection is alive and functional.
func (d *driver) Ping(ctx context.Context, conn any) error {
	return data.PingSQL(ctx, "mysql", conn)
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}

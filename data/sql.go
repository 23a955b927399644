package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ncobase/sqlpage/data/config"
)

// PoolDefaults are the pool settings applied when the configuration leaves
// them at zero.
type PoolDefaults struct {
	MaxIdleConn int
	MaxOpenConn int
}

// OpenSQL opens a database/sql pool for a registered SQL driver, applies
// the pool configuration and verifies the connection with a ping.
func OpenSQL(ctx context.Context, name, sqlDriver string, cfg any, defaults PoolDefaults) (*sql.DB, error) {
	dbCfg, ok := cfg.(*config.Database)
	if !ok || dbCfg == nil {
		return nil, fmt.Errorf("%s: invalid configuration type, expected *config.Database", name)
	}

	if dbCfg.Source == "" {
		return nil, fmt.Errorf("%s: connection source is empty", name)
	}

	db, err := sql.Open(sqlDriver, dbCfg.Source)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open connection: %w", name, err)
	}

	switch {
	case dbCfg.MaxIdleConn > 0:
		db.SetMaxIdleConns(dbCfg.MaxIdleConn)
	case defaults.MaxIdleConn > 0:
		db.SetMaxIdleConns(defaults.MaxIdleConn)
	}

	switch {
	case dbCfg.MaxOpenConn > 0:
		db.SetMaxOpenConns(dbCfg.MaxOpenConn)
	case defaults.MaxOpenConn > 0:
		db.SetMaxOpenConns(defaults.MaxOpenConn)
	}

	if dbCfg.ConnMaxLifeTime > 0 {
		db.SetConnMaxLifetime(dbCfg.ConnMaxLifeTime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", name, err)
	}

	return db, nil
}

// CloseSQL closes a pool opened by OpenSQL.
func CloseSQL(name string, conn any) error {
	db, ok := conn.(*sql.DB)
	if !ok {
		return fmt.Errorf("%s: invalid connection type, expected *sql.DB", name)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("%s: failed to close connection: %w", name, err)
	}
	return nil
}

// PingSQL pings a pool opened by OpenSQL.
func PingSQL(ctx context.Context, name string, conn any) error {
	db, ok := conn.(*sql.DB)
	if !ok {
		return fmt.Errorf("%s: invalid connection type, expected *sql.DB", name)
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: ping failed: %w", name, err)
	}
	return nil
}

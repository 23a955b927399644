package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/meilisearch/meilisearch-go"
	"github.com/ncobase/sqlpage/data/config"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Dialecter is implemented by SQL drivers to report the SQL dialect used
// for statement building.
type Dialecter interface {
	Dialect() string
}

// pinger is the health check shared by database and cache drivers.
type pinger interface {
	Ping(ctx context.Context, conn any) error
}

type closer interface {
	Close(conn any) error
}

// handle is an open connection and the driver that owns it.
type handle struct {
	kind string
	name string
	conn any
	drv  closer
}

// Data holds the connections opened for the configured backends. Fields
// for unconfigured backends are nil.
type Data struct {
	DB            *sql.DB
	Dialect       string
	Mongo         *mongo.Client
	MongoDatabase string
	Redis         *redis.Client
	Elasticsearch *elasticsearch.Client
	Meilisearch   meilisearch.ServiceManager

	handles []handle
}

// New opens a connection for every configured backend through the driver
// registry. On failure the connections opened so far are closed.
func New(ctx context.Context, cfg *config.Config) (*Data, func(), error) {
	d := &Data{}
	if cfg == nil {
		return d, func() {}, nil
	}

	if err := d.open(ctx, cfg); err != nil {
		_ = d.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := d.Close(); err != nil {
			fmt.Printf("cleanup errors: %v\n", err)
		}
	}
	return d, cleanup, nil
}

func (d *Data) open(ctx context.Context, cfg *config.Config) error {
	if cfg.Database != nil {
		drv, err := GetDatabaseDriver(cfg.Database.Driver)
		if err != nil {
			return err
		}
		conn, err := drv.Connect(ctx, cfg.Database)
		if err != nil {
			return err
		}
		d.track("database", drv.Name(), conn, drv)
		db, ok := conn.(*sql.DB)
		if !ok {
			return fmt.Errorf("data: database driver %s returned %T, expected *sql.DB", drv.Name(), conn)
		}
		d.DB = db
		if dl, ok := drv.(Dialecter); ok {
			d.Dialect = dl.Dialect()
		}
	}

	if cfg.MongoDB != nil {
		drv, err := GetDatabaseDriver("mongodb")
		if err != nil {
			return err
		}
		conn, err := drv.Connect(ctx, cfg.MongoDB)
		if err != nil {
			return err
		}
		d.track("database", drv.Name(), conn, drv)
		client, ok := conn.(*mongo.Client)
		if !ok {
			return fmt.Errorf("data: mongodb driver returned %T, expected *mongo.Client", conn)
		}
		d.Mongo = client
		d.MongoDatabase = cfg.MongoDB.Database
	}

	if cfg.Redis != nil {
		drv, err := GetCacheDriver("redis")
		if err != nil {
			return err
		}
		conn, err := drv.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		d.track("cache", drv.Name(), conn, drv)
		client, ok := conn.(*redis.Client)
		if !ok {
			return fmt.Errorf("data: redis driver returned %T, expected *redis.Client", conn)
		}
		d.Redis = client
	}

	if cfg.Elasticsearch != nil {
		drv, err := GetSearchDriver("elasticsearch")
		if err != nil {
			return err
		}
		conn, err := drv.Connect(ctx, cfg.Elasticsearch)
		if err != nil {
			return err
		}
		d.track("search", drv.Name(), conn, drv)
		client, ok := conn.(*elasticsearch.Client)
		if !ok {
			return fmt.Errorf("data: elasticsearch driver returned %T, expected *elasticsearch.Client", conn)
		}
		d.Elasticsearch = client
	}

	if cfg.Meilisearch != nil {
		drv, err := GetSearchDriver("meilisearch")
		if err != nil {
			return err
		}
		conn, err := drv.Connect(ctx, cfg.Meilisearch)
		if err != nil {
			return err
		}
		d.track("search", drv.Name(), conn, drv)
		client, ok := conn.(meilisearch.ServiceManager)
		if !ok {
			return fmt.Errorf("data: meilisearch driver returned %T, expected meilisearch.ServiceManager", conn)
		}
		d.Meilisearch = client
	}

	return nil
}

func (d *Data) track(kind, name string, conn any, drv closer) {
	d.handles = append(d.handles, handle{kind: kind, name: name, conn: conn, drv: drv})
}

// Ping checks every open connection whose driver supports it.
func (d *Data) Ping(ctx context.Context) error {
	var errs []error
	for _, h := range d.handles {
		p, ok := h.drv.(pinger)
		if !ok {
			continue
		}
		if err := p.Ping(ctx, h.conn); err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", h.kind, h.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes all open connections in reverse order of opening.
func (d *Data) Close() error {
	var errs []error
	for i := len(d.handles) - 1; i >= 0; i-- {
		h := d.handles[i]
		if err := h.drv.Close(h.conn); err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", h.kind, h.name, err))
		}
	}
	d.handles = nil
	return errors.Join(errs...)
}

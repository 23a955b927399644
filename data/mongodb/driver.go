// Package mongodb provides a MongoDB driver for sqlpage/data.
//
// This driver uses mongo-driver (go.mongodb.org/mongo-driver) as the underlying client.
// It registers itself automatically when imported:
//
//	import _ "github.com/ncobase/sqlpage/data/mongodb"
//
// The connection is a *mongo.Client:
//
//	driver, _ := data.GetDatabaseDriver("mongodb")
//	conn, err := driver.Connect(ctx, &config.MongoDB{URI: "mongodb://localhost:27017"})
//	client := conn.(*mongo.Client)
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ncobase/sqlpage/data"
	"github.com/ncobase/sqlpage/data/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// driver implements data.DatabaseDriver for MongoDB.
type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "mongodb"
}

// Connect establishes a MongoDB connection and verifies it against the
// primary. Pagination only reads, so secondaries are preferred for queries.
func (d *driver) Connect(ctx context.Context, cfg any) (any, error) {
	mongoCfg, ok := cfg.(*config.MongoDB)
	if !ok || mongoCfg == nil {
		return nil, fmt.Errorf("mongodb: invalid configuration type, expected *config.MongoDB")
	}

	if mongoCfg.URI == "" {
		return nil, errors.New("mongodb: URI is empty")
	}

	opts := options.Client().
		ApplyURI(mongoCfg.URI).
		SetConnectTimeout(connectTimeout).
		SetReadPreference(readpref.SecondaryPreferred())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: failed to connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: failed to ping: %w", err)
	}

	return client, nil
}

// Close disconnects the client.
func (d *driver) Close(conn any) error {
	client, ok := conn.(*mongo.Client)
	if !ok {
		return fmt.Errorf("mongodb: invalid connection type, expected *mongo.Client")
	}

	if err := client.Disconnect(context.Background()); err != nil {
		return fmt.Errorf("mongodb: failed to disconnect: %w", err)
	}

	return nil
}

// Ping verifies the MongoDB connection is alive and functional.
func (d *driver) Ping(ctx context.Context, conn any) error {
	client, ok := conn.(*mongo.Client)
	if !ok {
		return fmt.Errorf("mongodb: invalid connection type, expected *mongo.Client")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: ping failed: %w", err)
	}

	return nil
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}

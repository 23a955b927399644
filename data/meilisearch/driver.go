// Package meilisearch provides a Meilisearch driver for sqlpage/data.
//
//	import _ "github.com/ncobase/sqlpage/data/meilisearch"
//
// The connection is a meilisearch.ServiceManager from
// github.com/meilisearch/meilisearch-go.
package meilisearch

import (
	"context"
	"fmt"

	"github.com/meilisearch/meilisearch-go"
	"github.com/ncobase/sqlpage/data"
	"github.com/ncobase/sqlpage/data/config"
)

// driver implements data.SearchDriver for Meilisearch.
type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "meilisearch"
}

// Connect creates a Meilisearch client and verifies the server with a
// health check.
func (d *driver) Connect(ctx context.Context, cfg any) (any, error) {
	msCfg, ok := cfg.(*config.Meilisearch)
	if !ok || msCfg == nil {
		return nil, fmt.Errorf("meilisearch: invalid configuration type, expected *config.Meilisearch")
	}

	if msCfg.Host == "" {
		return nil, fmt.Errorf("meilisearch: host is empty")
	}

	client := meilisearch.New(msCfg.Host, meilisearch.WithAPIKey(msCfg.APIKey))

	if _, err := client.HealthWithContext(ctx); err != nil {
		return nil, fmt.Errorf("meilisearch: health check failed: %w", err)
	}

	return client, nil
}

// Close is a no-op; the meilisearch-go client holds no connection state
// beyond its HTTP transport.
func (d *driver) Close(conn any) error {
	if _, ok := conn.(meilisearch.ServiceManager); !ok {
		return fmt.Errorf("meilisearch: invalid connection type, expected meilisearch.ServiceManager")
	}
	return nil
}

func init() {
	data.RegisterSearchDriver(&driver{})
}

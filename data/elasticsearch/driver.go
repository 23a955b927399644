// Package elasticsearch provides an Elasticsearch driver for sqlpage/data.
//
// This driver uses go-elasticsearch/v8 (github.com/elastic/go-elasticsearch/v8) as
// the underlying client. It registers itself automatically when imported:
//
//	import _ "github.com/ncobase/sqlpage/data/elasticsearch"
//
// Example usage:
//
//	driver, err := data.GetSearchDriver("elasticsearch")
//	cfg := &config.Elasticsearch{
//	    Addresses: []string{"http://localhost:9200"},
//	}
//	conn, err := driver.Connect(ctx, cfg)
//	client := conn.(*elasticsearch.Client)
package elasticsearch

import (
	"context"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/ncobase/sqlpage/data"
	"github.com/ncobase/sqlpage/data/config"
)

// driver implements data.SearchDriver for Elasticsearch.
type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "elasticsearch"
}

// Connect creates an Elasticsearch client. The client connects lazily, so
// no request is made here.
func (d *driver) Connect(ctx context.Context, cfg any) (any, error) {
	esCfg, ok := cfg.(*config.Elasticsearch)
	if !ok || esCfg == nil {
		return nil, fmt.Errorf("elasticsearch: invalid configuration type, expected *config.Elasticsearch")
	}

	if len(esCfg.Addresses) == 0 {
		return nil, fmt.Errorf("elasticsearch: addresses are empty")
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: esCfg.Addresses,
		Username:  esCfg.Username,
		Password:  esCfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch: failed to create client: %w", err)
	}

	return client, nil
}

// Close releases the client. The HTTP transport needs no explicit cleanup.
func (d *driver) Close(conn any) error {
	if _, ok := conn.(*elasticsearch.Client); !ok {
		return fmt.Errorf("elasticsearch: invalid connection type, expected *elasticsearch.Client")
	}
	return nil
}

func init() {
	data.RegisterSearchDriver(&driver{})
}

package elasticsearch_test

import (
	"context"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/ncobase/sqlpage/data"
	"github.com/ncobase/sqlpage/data/config"
	_ "github.com/ncobase/sqlpage/data/elasticsearch"
)

func TestDriverConnect(t *testing.T) {
	driver, err := data.GetSearchDriver("elasticsearch")
	if err != nil {
		t.Fatalf("Failed to get elasticsearch driver: %v", err)
	}

	t.Run("EmptyAddresses", func(t *testing.T) {
		if _, err := driver.Connect(context.Background(), &config.Elasticsearch{}); err == nil {
			t.Error("Expected error for empty addresses, got nil")
		}
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		if _, err := driver.Connect(context.Background(), "invalid"); err == nil {
			t.Error("Expected error for invalid config type, got nil")
		}
	})

	t.Run("LazyClient", func(t *testing.T) {
		conn, err := driver.Connect(context.Background(), &config.Elasticsearch{Addresses: []string{"http://127.0.0.1:1"}})
		if err != nil {
			t.Fatalf("Connect() error = %v", err)
		}
		if _, ok := conn.(*elasticsearch.Client); !ok {
			t.Fatalf("expected *elasticsearch.Client, got %T", conn)
		}
		if err := driver.Close(conn); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
}

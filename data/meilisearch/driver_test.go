package meilisearch_test

import (
	"context"
	"testing"

	"github.com/ncobase/sqlpage/data"
	"github.com/ncobase/sqlpage/data/config"
	_ "github.com/ncobase/sqlpage/data/meilisearch" // Register driver
)

func TestDriverRegistration(t *testing.T) {
	driver, err := data.GetSearchDriver("meilisearch")
	if err != nil {
		t.Fatalf("Failed to get meilisearch driver: %v", err)
	}

	if driver.Name() != "meilisearch" {
		t.Errorf("Expected driver name 'meilisearch', got '%s'", driver.Name())
	}
}

func TestDriverConnect(t *testing.T) {
	driver, err := data.GetSearchDriver("meilisearch")
	if err != nil {
		t.Fatalf("Failed to get meilisearch driver: %v", err)
	}

	t.Run("EmptyHost", func(t *testing.T) {
		if _, err := driver.Connect(context.Background(), &config.Meilisearch{}); err == nil {
			t.Error("Expected error for empty host, got nil")
		}
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		if _, err := driver.Connect(context.Background(), "invalid"); err == nil {
			t.Error("Expected error for invalid config type, got nil")
		}
	})

	t.Run("InvalidConnection", func(t *testing.T) {
		if err := driver.Close("invalid"); err == nil {
			t.Error("Expected error for invalid connection type, got nil")
		}
	})
}

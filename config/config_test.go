package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sample = `
app_name: events
run_mode: debug
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 3s
paging:
  default_page_size: 25
  max_page_size: 200
logger:
  level: 5
  format: text
source:
  kind: sql
  table: events
  columns: [id, kind]
  sort: ["id:desc"]
data:
  database:
    driver: sqlite
    source: ":memory:"
observes:
  tracer:
    endpoint: localhost:4317
    sampling_rate: 0.5
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sample))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.AppName != "events" || cfg.RunMode != "debug" {
		t.Errorf("app = %q/%q", cfg.AppName, cfg.RunMode)
	}
	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 3*time.Second || cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("timeouts = %v/%v", cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	}
	if cfg.Paging.DefaultPageSize != 25 || cfg.Paging.MaxPageSize != 200 {
		t.Errorf("paging = %+v", cfg.Paging)
	}
	if cfg.Logger == nil || cfg.Logger.Level != 5 || cfg.Logger.Name != "events-debug" {
		t.Errorf("logger = %+v", cfg.Logger)
	}
	if cfg.Source.Kind != "sql" || cfg.Source.Table != "events" || len(cfg.Source.Columns) != 2 {
		t.Errorf("source = %+v", cfg.Source)
	}
	if err := cfg.Source.Validate(); err != nil {
		t.Errorf("source.Validate() error = %v", err)
	}
	if cfg.Data.Database == nil || cfg.Data.Database.Driver != "sqlite" {
		t.Errorf("data = %+v", cfg.Data)
	}
	if cfg.Observes.Tracer == nil || cfg.Observes.Tracer.SamplingRate != 0.5 {
		t.Errorf("tracer = %+v", cfg.Observes.Tracer)
	}
	if cfg.Observes.Sentry != nil {
		t.Errorf("sentry should be disabled, got %+v", cfg.Observes.Sentry)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "source:\n  kind: memory\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.AppName != "sqlpage" || cfg.Server.Port != 8080 {
		t.Errorf("defaults = %q %d", cfg.AppName, cfg.Server.Port)
	}
	if cfg.Paging.DefaultPageSize != 10 || cfg.Paging.MaxPageSize != 1000 {
		t.Errorf("paging = %+v", cfg.Paging)
	}
	if cfg.Logger != nil {
		t.Errorf("logger should be nil, got %+v", cfg.Logger)
	}
	if cfg.Observes.Tracer != nil {
		t.Errorf("tracer should be nil, got %+v", cfg.Observes.Tracer)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SQLPAGE_SERVER_PORT", "7070")
	t.Setenv("SQLPAGE_SOURCE_TABLE", "audit")

	cfg, err := LoadConfig(writeConfig(t, sample))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Source.Table != "audit" {
		t.Errorf("table = %q, want audit", cfg.Source.Table)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestProviders(t *testing.T) {
	if ProvideServerConfig(nil) != nil || ProvideSourceConfig(nil) != nil {
		t.Error("providers should tolerate a nil config")
	}
	cfg, err := LoadConfig(writeConfig(t, sample))
	if err != nil {
		t.Fatal(err)
	}
	if ProvidePagingConfig(cfg) != cfg.Paging || ProvideDataConfig(cfg) != cfg.Data {
		t.Error("providers should return the config sections")
	}
}

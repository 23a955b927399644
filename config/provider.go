package config

import (
	dc "github.com/ncobase/sqlpage/data/config"
	lc "github.com/ncobase/sqlpage/logging/logger/config"
	"github.com/ncobase/sqlpage/observes"
	"github.com/ncobase/sqlpage/source"

	"github.com/google/wire"
)

// ProviderSet is the wire provider set for the config package.
// It provides the main *Config and extracts the sections other packages
// are built from.
var ProviderSet = wire.NewSet(
	GetConfig,
	ProvideServerConfig,
	ProvidePagingConfig,
	ProvideLoggerConfig,
	ProvideDataConfig,
	ProvideSourceConfig,
	ProvideObservesConfig,
)

// ProvideServerConfig provides the HTTP server configuration.
func ProvideServerConfig(cfg *Config) *Server {
	if cfg == nil {
		return nil
	}
	return cfg.Server
}

// ProvidePagingConfig provides the paginator defaults.
func ProvidePagingConfig(cfg *Config) *Paging {
	if cfg == nil {
		return nil
	}
	return cfg.Paging
}

// ProvideLoggerConfig provides the logger configuration.
func ProvideLoggerConfig(cfg *Config) *lc.Config {
	if cfg == nil {
		return nil
	}
	return cfg.Logger
}

// ProvideDataConfig provides the data layer configuration.
func ProvideDataConfig(cfg *Config) *dc.Config {
	if cfg == nil {
		return nil
	}
	return cfg.Data
}

// ProvideSourceConfig provides the source selection.
func ProvideSourceConfig(cfg *Config) *source.Config {
	if cfg == nil {
		return nil
	}
	return cfg.Source
}

// ProvideObservesConfig provides tracing and error reporting settings.
func ProvideObservesConfig(cfg *Config) *observes.Config {
	if cfg == nil {
		return nil
	}
	return cfg.Observes
}

package commands

import (
	"context"
	"fmt"

	"github.com/ncobase/sqlpage/config"
	"github.com/ncobase/sqlpage/data"
	dc "github.com/ncobase/sqlpage/data/config"
	"github.com/ncobase/sqlpage/logging/logger"
	lc "github.com/ncobase/sqlpage/logging/logger/config"
	"github.com/ncobase/sqlpage/observes"
	"github.com/ncobase/sqlpage/paging"
	"github.com/ncobase/sqlpage/source"
	"github.com/ncobase/sqlpage/version"

	_ "github.com/ncobase/sqlpage/data/all"
)

// app bundles the pieces every data command needs.
type app struct {
	config    *config.Config
	logger    *logger.Logger
	data      *data.Data
	paginator *paging.Paginator[any]
}

func newApp(cfg *config.Config, log *logger.Logger, d *data.Data, p *paging.Paginator[any]) *app {
	return &app{config: cfg, logger: log, data: d, paginator: p}
}

func provideLogger(cfg *lc.Config) (*logger.Logger, func(), error) {
	log := logger.StdLogger()
	log.SetVersion(version.GetVersionInfo().Version)
	cleanup, err := log.Init(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return log, cleanup, nil
}

// provideData opens the configured backends. A config without a data
// section yields an empty Data, which is enough for the memory source.
func provideData(ctx context.Context, cfg *dc.Config, _ *logger.Logger) (*data.Data, func(), error) {
	if cfg == nil {
		return &data.Data{}, func() {}, nil
	}
	return data.New(ctx, cfg)
}

// provideTracing starts the exporters named in the observes section.
func provideTracing(ctx context.Context, cfg *observes.Config, log *logger.Logger) (tracing, func(), error) {
	if cfg == nil {
		return tracing{}, func() {}, nil
	}
	flush, err := observes.NewSentry(cfg.Sentry)
	if err != nil {
		return tracing{}, nil, fmt.Errorf("init sentry: %w", err)
	}
	if cfg.Tracer == nil {
		return tracing{}, flush, nil
	}
	shutdown, err := observes.NewTracer(ctx, cfg.Tracer)
	if err != nil {
		flush()
		return tracing{}, nil, fmt.Errorf("init tracer: %w", err)
	}
	return tracing{enabled: true}, func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error(context.Background(), "tracer shutdown failed", "error", err)
		}
		flush()
	}, nil
}

// tracing records whether source calls should be wrapped in spans.
type tracing struct {
	enabled bool
}

func provideSource(cfg *source.Config, d *data.Data, t tracing) (paging.Source[any], error) {
	src, err := source.Open(cfg, d)
	if err != nil {
		return nil, err
	}
	if t.enabled {
		src = observes.Traced(src, "source."+cfg.Kind)
	}
	return src, nil
}

func providePaginator(src paging.Source[any], cfg *config.Paging, log *logger.Logger) *paging.Paginator[any] {
	opts := []paging.Option{paging.WithLogger(log)}
	if cfg != nil {
		opts = append(opts,
			paging.WithDefaultPageSize(cfg.DefaultPageSize),
			paging.WithMaxPageSize(cfg.MaxPageSize),
		)
	}
	return paging.NewPaginator(src, opts...)
}

//go:build wireinject

package commands

import (
	"context"

	"github.com/google/wire"
	"github.com/ncobase/sqlpage/config"
)

func initApp(ctx context.Context, cfg *config.Config) (*app, func(), error) {
	panic(wire.Build(
		config.ProvideLoggerConfig,
		config.ProvideDataConfig,
		config.ProvideSourceConfig,
		config.ProvidePagingConfig,
		config.ProvideObservesConfig,
		provideLogger,
		provideData,
		provideTracing,
		provideSource,
		providePaginator,
		newApp,
	))
}

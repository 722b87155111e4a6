//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"ymc/internal"
	"ymc/internal/controllers"
	"ymc/internal/providers"
	"ymc/internal/services"
	"ymc/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		services.NewYouTubeClient,
		services.NewChannelResolver,
		services.NewVideoHistoryFetcher,
		services.NewMonetizationService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

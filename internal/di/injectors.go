//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"github.com/DamienOReilly/reddit-stats/internal"
	"github.com/DamienOReilly/reddit-stats/internal/controllers"
	"github.com/DamienOReilly/reddit-stats/internal/providers"
	"github.com/DamienOReilly/reddit-stats/internal/services"
	"github.com/DamienOReilly/reddit-stats/internal/statistic"
	"github.com/DamienOReilly/reddit-stats/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		statistic.NewZlibCompressor,
		statistic.NewSnapshotCodec,
		statistic.NewPushShiftClient,
		services.NewStatisticService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/weather-outfit/internal/bootstrap"
	"github.com/yanqian/weather-outfit/internal/domain/outfit"
	"github.com/yanqian/weather-outfit/internal/domain/wardrobe"
	"github.com/yanqian/weather-outfit/internal/domain/weather"
	"github.com/yanqian/weather-outfit/internal/infra/config"
	httpiface "github.com/yanqian/weather-outfit/internal/interface/http"
	"github.com/yanqian/weather-outfit/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideEngineConfig,
		provideWeatherConfig,
		provideWeatherClient,
		provideWeatherStore,
		provideWardrobeRepository,
		outfit.NewEngine,
		weather.NewService,
		wardrobe.NewService,
		outfit.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

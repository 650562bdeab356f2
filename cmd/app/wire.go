//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/jardinvision/jardin-proxy/internal/bootstrap"
	"github.com/jardinvision/jardin-proxy/internal/domain/analyze"
	"github.com/jardinvision/jardin-proxy/internal/domain/forecast"
	"github.com/jardinvision/jardin-proxy/internal/domain/garden"
	"github.com/jardinvision/jardin-proxy/internal/infra/config"
	"github.com/jardinvision/jardin-proxy/internal/infra/llm/openai"
	"github.com/jardinvision/jardin-proxy/internal/infra/meteo/openmeteo"
	httpiface "github.com/jardinvision/jardin-proxy/internal/interface/http"
	"github.com/jardinvision/jardin-proxy/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideOpenAIClient,
		provideMeteoClient,
		provideAnalyzeConfig,
		provideGardenConfig,
		analyze.NewService,
		forecast.NewService,
		garden.NewService,
		wire.Bind(new(analyze.ChatClient), new(*openai.Client)),
		wire.Bind(new(garden.ChatClient), new(*openai.Client)),
		wire.Bind(new(forecast.MeteoClient), new(*openmeteo.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

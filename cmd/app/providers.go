package main

import (
	"github.com/jardinvision/jardin-proxy/internal/domain/analyze"
	"github.com/jardinvision/jardin-proxy/internal/domain/garden"
	"github.com/jardinvision/jardin-proxy/internal/infra/config"
	"github.com/jardinvision/jardin-proxy/internal/infra/llm/openai"
	"github.com/jardinvision/jardin-proxy/internal/infra/meteo/openmeteo"
)

func provideOpenAIClient(cfg *config.Config) *openai.Client {
	return openai.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func provideMeteoClient(cfg *config.Config) *openmeteo.Client {
	return openmeteo.NewClient(cfg.Meteo.BaseURL, cfg.Meteo.Timeout)
}

func provideAnalyzeConfig(cfg *config.Config) analyze.Config {
	return analyze.Config{
		TextModel:   cfg.LLM.TextModel,
		VisionModel: cfg.LLM.VisionModel,
		Temperature: cfg.LLM.Temperature,
	}
}

func provideGardenConfig(cfg *config.Config) garden.Config {
	return garden.Config{
		Model:        cfg.LLM.VisionModel,
		Temperature:  cfg.LLM.Temperature,
		SystemPrompt: cfg.Garden.SystemPrompt,
		MaxListItems: cfg.Garden.MaxListItems,
		RawSnippet:   cfg.Garden.RawSnippet,
	}
}

package forecast

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/jardinvision/jardin-proxy/pkg/errors"
)

const (
	frostAdvisory    = "Risque de gel sur 7 jours : protégez les semis et cultures sensibles (voile d'hivernage, serre)."
	wateringAdvisory = "Pas de gel annoncé : ajustez l'arrosage en fonction des précipitations prévues."
)

// Service reduces a multi-day forecast into a compact gardening advisory.
type Service interface {
	Summarize(ctx context.Context, region string) (Summary, error)
}

// MeteoClient fetches the 7-day daily forecast for a coordinate.
type MeteoClient interface {
	FetchDaily(ctx context.Context, coords Coordinates) (DailySeries, error)
}

type service struct {
	client MeteoClient
	logger *slog.Logger
}

// NewService wires up the forecast domain.
func NewService(client MeteoClient, logger *slog.Logger) Service {
	return &service{client: client, logger: logger.With("component", "forecast.service")}
}

func (s *service) Summarize(ctx context.Context, region string) (Summary, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		region = "France"
	}

	coords := Locate(region)
	series, err := s.client.FetchDaily(ctx, coords)
	if err != nil {
		return Summary{}, apperrors.Wrap("meteo_error", "forecast fetch failed", err)
	}

	summary := Reduce(region, series)
	if !summary.OK {
		s.logger.Warn("forecast lacks usable daily arrays", "region", region)
	}
	return summary, nil
}

// Reduce folds the daily arrays into the 7-day summary. A response missing
// both temperature arrays yields OK=false with only the region populated;
// that is a degraded result, not an error.
func Reduce(region string, series DailySeries) Summary {
	if len(series.TempMin) == 0 && len(series.TempMax) == 0 {
		return Summary{Region: region}
	}

	summary := Summary{
		OK:            true,
		Region:        region,
		MinTemp7d:     minOf(series.TempMin),
		MaxTemp7d:     maxOf(series.TempMax),
		TotalPrecip7d: sumOf(series.Precipitation),
		MaxWind7d:     maxOf(series.WindMax),
	}
	summary.FrostRisk = summary.MinTemp7d != nil && *summary.MinTemp7d <= 0.0
	if summary.FrostRisk {
		summary.Advisory = frostAdvisory
	} else {
		summary.Advisory = wateringAdvisory
	}
	return summary
}

func minOf(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return &m
}

func maxOf(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return &m
}

func sumOf(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

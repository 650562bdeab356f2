package forecast

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/jardinvision/jardin-proxy/pkg/errors"
)

func TestSummarizeFrostRisk(t *testing.T) {
	client := &stubMeteoClient{series: DailySeries{
		TempMin:       []float64{-2, 1, 3},
		TempMax:       []float64{5, 6, 7},
		Precipitation: []float64{1.5, 0, 2.5},
		WindMax:       []float64{30, 45, 20},
	}}
	svc := newForecastUnderTest(client)

	summary, err := svc.Summarize(context.Background(), "Montagne")
	require.NoError(t, err)

	require.True(t, summary.OK)
	require.Equal(t, "Montagne", summary.Region)
	require.NotNil(t, summary.MinTemp7d)
	require.Equal(t, -2.0, *summary.MinTemp7d)
	require.NotNil(t, summary.MaxTemp7d)
	require.Equal(t, 7.0, *summary.MaxTemp7d)
	require.Equal(t, 4.0, summary.TotalPrecip7d)
	require.NotNil(t, summary.MaxWind7d)
	require.Equal(t, 45.0, *summary.MaxWind7d)
	require.True(t, summary.FrostRisk)
	require.Equal(t, frostAdvisory, summary.Advisory)
}

func TestSummarizeNoFrost(t *testing.T) {
	client := &stubMeteoClient{series: DailySeries{
		TempMin: []float64{0.5, 4},
		TempMax: []float64{10, 12},
	}}
	svc := newForecastUnderTest(client)

	summary, err := svc.Summarize(context.Background(), "Sud-Est")
	require.NoError(t, err)
	require.False(t, summary.FrostRisk)
	require.Equal(t, wateringAdvisory, summary.Advisory)
}

func TestSummarizeFrostBoundary(t *testing.T) {
	// Exactly zero counts as frost risk.
	summary := Reduce("Nord", DailySeries{TempMin: []float64{0}, TempMax: []float64{5}})
	require.True(t, summary.FrostRisk)
}

func TestSummarizeMissingTemperatureArrays(t *testing.T) {
	client := &stubMeteoClient{series: DailySeries{Precipitation: []float64{1, 2}}}
	svc := newForecastUnderTest(client)

	summary, err := svc.Summarize(context.Background(), "Ouest")
	require.NoError(t, err)
	require.False(t, summary.OK)
	require.Equal(t, "Ouest", summary.Region)
	require.Nil(t, summary.MinTemp7d)
	require.Nil(t, summary.MaxTemp7d)
	require.Zero(t, summary.TotalPrecip7d)
	require.Empty(t, summary.Advisory)
}

func TestSummarizeSingleTemperatureArrayStillUsable(t *testing.T) {
	summary := Reduce("Est", DailySeries{TempMax: []float64{8, 9}})
	require.True(t, summary.OK)
	require.Nil(t, summary.MinTemp7d)
	require.False(t, summary.FrostRisk)
}

func TestSummarizeTransportFailurePropagates(t *testing.T) {
	client := &stubMeteoClient{err: errors.New("connection refused")}
	svc := newForecastUnderTest(client)

	_, err := svc.Summarize(context.Background(), "Nord")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "meteo_error"))
}

func TestSummarizeBlankRegionDefaults(t *testing.T) {
	client := &stubMeteoClient{series: DailySeries{TempMin: []float64{5}, TempMax: []float64{10}}}
	svc := newForecastUnderTest(client)

	summary, err := svc.Summarize(context.Background(), "  ")
	require.NoError(t, err)
	require.Equal(t, "France", summary.Region)
	require.Equal(t, Locate("France"), client.lastCoords)
}

func newForecastUnderTest(client MeteoClient) Service {
	return NewService(client, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type stubMeteoClient struct {
	series     DailySeries
	err        error
	lastCoords Coordinates
}

func (s *stubMeteoClient) FetchDaily(_ context.Context, coords Coordinates) (DailySeries, error) {
	s.lastCoords = coords
	if s.err != nil {
		return DailySeries{}, s.err
	}
	return s.series, nil
}

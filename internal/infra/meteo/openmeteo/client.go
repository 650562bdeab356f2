package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jardinvision/jardin-proxy/internal/domain/forecast"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	forecastDays   = 7
	dailyFields    = "temperature_2m_min,temperature_2m_max,precipitation_sum,windspeed_10m_max"
)

// Client fetches daily forecasts from the Open-Meteo API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client. The timeout bounds the whole fetch so a
// slow upstream degrades the forecast step instead of stalling the request.
func NewClient(baseURL string, timeout time.Duration) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchDaily retrieves the 7-day daily series for a coordinate, in the
// location's local time zone.
func (c *Client) FetchDaily(ctx context.Context, coords forecast.Coordinates) (forecast.DailySeries, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%.4f", coords.Latitude))
	values.Set("longitude", fmt.Sprintf("%.4f", coords.Longitude))
	values.Set("daily", dailyFields)
	values.Set("timezone", "auto")
	values.Set("forecast_days", fmt.Sprintf("%d", forecastDays))

	endpoint := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return forecast.DailySeries{}, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return forecast.DailySeries{}, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return forecast.DailySeries{}, fmt.Errorf("forecast request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return forecast.DailySeries{}, fmt.Errorf("decode forecast response: %w", err)
	}

	return forecast.DailySeries{
		Latitude:      raw.Latitude,
		Longitude:     raw.Longitude,
		TempMin:       raw.Daily.TemperatureMin,
		TempMax:       raw.Daily.TemperatureMax,
		Precipitation: raw.Daily.PrecipitationSum,
		WindMax:       raw.Daily.WindSpeedMax,
	}, nil
}

type apiResponse struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Daily     apiDaily `json:"daily"`
}

type apiDaily struct {
	TemperatureMin   []float64 `json:"temperature_2m_min"`
	TemperatureMax   []float64 `json:"temperature_2m_max"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
	WindSpeedMax     []float64 `json:"windspeed_10m_max"`
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jardinvision/jardin-proxy/internal/domain/forecast"
	"github.com/jardinvision/jardin-proxy/internal/domain/garden"
	"github.com/jardinvision/jardin-proxy/internal/infra/config"
	apperrors "github.com/jardinvision/jardin-proxy/pkg/errors"
)

func TestRouter_Health(t *testing.T) {
	recorder := performGet("/health", newRouterUnderTest(t, stubs{}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, true, body["ok"])
	require.Equal(t, "jardin-proxy", body["service"])
}

func TestRouter_HomePage(t *testing.T) {
	recorder := performGet("/", newRouterUnderTest(t, stubs{}))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Header().Get("Content-Type"), "text/html")
	require.Contains(t, recorder.Body.String(), "Jardin Proxy")
}

func TestRouter_AnalyzeEmptyPrompt(t *testing.T) {
	server := newRouterUnderTest(t, stubs{
		text: func(ctx context.Context, prompt string) (string, error) {
			return "", apperrors.Wrap("invalid_input", "No prompt provided", nil)
		},
	})

	recorder := performPost("/analyze", `{}`, server)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, map[string]string{"error": "No prompt provided"}, body)
}

func TestRouter_AnalyzeSuccess(t *testing.T) {
	server := newRouterUnderTest(t, stubs{
		text: func(ctx context.Context, prompt string) (string, error) {
			require.Equal(t, "Feuilles jaunes ?", prompt)
			return "Arrosez moins.", nil
		},
	})

	recorder := performPost("/analyze", `{"prompt":"Feuilles jaunes ?"}`, server)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, "Arrosez moins.", body["result"])
}

func TestRouter_AnalyzeMissingCredential(t *testing.T) {
	server := newRouterUnderTest(t, stubs{
		text: func(ctx context.Context, prompt string) (string, error) {
			return "", apperrors.Wrap("config_error", "completion service is not configured", nil)
		},
	})

	recorder := performPost("/analyze", `{"prompt":"hello"}`, server)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, "completion service is not configured", body["error"])
}

func TestRouter_AnalyzeImageInvalidBase64(t *testing.T) {
	server := newRouterUnderTest(t, stubs{
		image: func(ctx context.Context, img, prompt string) (string, error) {
			return "", apperrors.Wrap("invalid_input", "image_base64 is not valid base64", nil)
		},
	})

	recorder := performPost("/analyze-image", `{"image_base64":"!!!","prompt":"p"}`, server)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, "image_base64 is not valid base64", body["error"])
}

func TestRouter_PotagerPassesRawBody(t *testing.T) {
	var gotBody []byte
	result := garden.CalendarResult{
		Region:        "Nord",
		Month:         "Mars",
		PhaseReceived: garden.PhaseWaxing,
		Sow:           []string{"carottes"},
		Plant:         []string{},
		Avoid:         []string{},
		Lune:          garden.LunarAdvice{Phase: "croissante", Tip: ""},
		Meteo:         forecast.Summary{OK: true, Region: "Nord"},
	}
	server := newRouterUnderTest(t, stubs{
		calendar: func(ctx context.Context, body []byte) (garden.CalendarResult, error) {
			gotBody = body
			return result, nil
		},
	})

	payload := `{"region":"Nord","mois":"Mars"}`
	recorder := performPost("/potager", payload, server)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, payload, string(gotBody))

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, "Mars", body["mois"])
	require.Equal(t, "croissante", body["phase_lune_recue"])
	require.NotContains(t, body, "raw")
}

func TestRouter_PotagerMalformedBodyStillReachesDomain(t *testing.T) {
	server := newRouterUnderTest(t, stubs{
		calendar: func(ctx context.Context, body []byte) (garden.CalendarResult, error) {
			require.Equal(t, "not json", string(body))
			return garden.CalendarResult{Region: "France", Month: "Décembre"}, nil
		},
	})

	recorder := performPost("/potager", "not json", server)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_Meteo(t *testing.T) {
	minTemp := -1.0
	server := newRouterUnderTest(t, stubs{
		summarize: func(ctx context.Context, region string) (forecast.Summary, error) {
			require.Equal(t, "Nord", region)
			return forecast.Summary{OK: true, Region: region, MinTemp7d: &minTemp, FrostRisk: true, Advisory: "gel"}, nil
		},
	})

	recorder := performPost("/meteo", `{"region":"Nord"}`, server)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, true, body["ok"])
	require.Equal(t, true, body["risque_gel"])
	require.Equal(t, -1.0, body["temp_min_7j"])
}

func TestRouter_MeteoUpstreamFailure(t *testing.T) {
	server := newRouterUnderTest(t, stubs{
		summarize: func(ctx context.Context, region string) (forecast.Summary, error) {
			return forecast.Summary{}, apperrors.Wrap("meteo_error", "forecast fetch failed", nil)
		},
	})

	recorder := performPost("/meteo", `{}`, server)
	require.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	recorder := performGet("/health", newRouterUnderTest(t, stubs{}))
	require.NotEmpty(t, recorder.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	rec := httptest.NewRecorder()
	newRouterUnderTest(t, stubs{}).Handler.ServeHTTP(rec, req)
	require.Equal(t, "fixed-id", rec.Header().Get("X-Request-Id"))
}

func performPost(path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func performGet(path string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, strings.NewReader(""))
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, s stubs) *http.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(&stubAnalyze{s: s}, &stubGarden{s: s}, &stubForecast{s: s}, logger)
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	return NewRouter(cfg, handler)
}

type stubs struct {
	text      func(ctx context.Context, prompt string) (string, error)
	image     func(ctx context.Context, imageB64, prompt string) (string, error)
	calendar  func(ctx context.Context, body []byte) (garden.CalendarResult, error)
	summarize func(ctx context.Context, region string) (forecast.Summary, error)
}

type stubAnalyze struct{ s stubs }

func (a *stubAnalyze) Text(ctx context.Context, prompt string) (string, error) {
	if a.s.text != nil {
		return a.s.text(ctx, prompt)
	}
	return "", nil
}

func (a *stubAnalyze) Image(ctx context.Context, imageB64, prompt string) (string, error) {
	if a.s.image != nil {
		return a.s.image(ctx, imageB64, prompt)
	}
	return "", nil
}

type stubGarden struct{ s stubs }

func (g *stubGarden) Calendar(ctx context.Context, body []byte) (garden.CalendarResult, error) {
	if g.s.calendar != nil {
		return g.s.calendar(ctx, body)
	}
	return garden.CalendarResult{}, nil
}

type stubForecast struct{ s stubs }

func (f *stubForecast) Summarize(ctx context.Context, region string) (forecast.Summary, error) {
	if f.s.summarize != nil {
		return f.s.summarize(ctx, region)
	}
	return forecast.Summary{}, nil
}

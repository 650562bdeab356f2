package garden

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jardinvision/jardin-proxy/internal/domain/forecast"
	"github.com/jardinvision/jardin-proxy/internal/infra/llm/openai"
	apperrors "github.com/jardinvision/jardin-proxy/pkg/errors"
)

// Service generates the monthly garden calendar.
type Service interface {
	Calendar(ctx context.Context, body []byte) (CalendarResult, error)
}

type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type service struct {
	cfg        Config
	client     ChatClient
	forecaster forecast.Service
	logger     *slog.Logger
	now        func() time.Time
}

// NewService wires up the garden calendar domain.
func NewService(cfg Config, client ChatClient, forecaster forecast.Service, logger *slog.Logger) Service {
	return &service{
		cfg:        cfg,
		client:     client,
		forecaster: forecaster,
		logger:     logger.With("component", "garden.service"),
		now:        time.Now,
	}
}

// Calendar runs the full pipeline: normalize the payload, fetch the forecast
// summary (a failed fetch degrades to an ok=false summary, never aborts),
// auto-fill the moon phase when the caller omitted it, call the completion
// service once and reconcile its output. Exactly one outbound call to each
// upstream, no retry, no cache.
func (s *service) Calendar(ctx context.Context, body []byte) (CalendarResult, error) {
	req := Normalize(body)

	meteo, err := s.forecaster.Summarize(ctx, req.Region)
	if err != nil {
		s.logger.Warn("forecast step skipped", "region", req.Region, "error", err)
		meteo = forecast.Summary{Region: req.Region}
	}

	phase := req.Phase
	if req.PhaseRaw == "" {
		phase = PhaseAt(s.now().UTC())
	}

	completion, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []openai.Message{
			openai.TextMessage("system", s.cfg.SystemPrompt),
			openai.TextMessage("user", ComposePrompt(req, phase, meteo)),
		},
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		if errors.Is(err, openai.ErrMissingAPIKey) {
			return CalendarResult{}, apperrors.Wrap("config_error", "completion service is not configured", err)
		}
		return CalendarResult{}, apperrors.Wrap("llm_error", "completion request failed", err)
	}

	rec := Reconcile(completion.OutputText(), phase, s.cfg.MaxListItems, s.cfg.RawSnippet)
	if rec.Raw != "" {
		s.logger.Warn("model output reconciliation failed", "region", req.Region, "month", req.Month)
	}

	return CalendarResult{
		Region:        req.Region,
		Month:         req.Month,
		PhaseReceived: phase,
		Sow:           rec.Sow,
		Plant:         rec.Plant,
		Avoid:         rec.Avoid,
		Lune:          rec.Lune,
		Meteo:         meteo,
		Raw:           rec.Raw,
	}, nil
}

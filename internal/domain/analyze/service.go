package analyze

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"

	"github.com/jardinvision/jardin-proxy/internal/infra/llm/openai"
	apperrors "github.com/jardinvision/jardin-proxy/pkg/errors"
)

// Service proxies free text and image analysis queries straight to the
// completion service.
type Service interface {
	Text(ctx context.Context, prompt string) (string, error)
	Image(ctx context.Context, imageB64, prompt string) (string, error)
}

type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config wires runtime settings for the analysis pass-throughs.
type Config struct {
	TextModel   string
	VisionModel string
	Temperature float32
}

type service struct {
	cfg    Config
	client ChatClient
	logger *slog.Logger
}

// NewService wires up the analysis domain.
func NewService(cfg Config, client ChatClient, logger *slog.Logger) Service {
	return &service{cfg: cfg, client: client, logger: logger.With("component", "analyze.service")}
}

func (s *service) Text(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", apperrors.Wrap("invalid_input", "No prompt provided", nil)
	}

	return s.complete(ctx, s.cfg.TextModel, openai.TextMessage("user", prompt))
}

func (s *service) Image(ctx context.Context, imageB64, prompt string) (string, error) {
	imageB64 = strings.TrimSpace(imageB64)
	prompt = strings.TrimSpace(prompt)
	if imageB64 == "" || prompt == "" {
		return "", apperrors.Wrap("invalid_input", "Missing image_base64 or prompt", nil)
	}

	// Bare base64 and full data URLs are both accepted.
	dataURL := imageB64
	if !strings.HasPrefix(imageB64, "data:image") {
		if _, err := base64.StdEncoding.Strict().DecodeString(imageB64); err != nil {
			return "", apperrors.Wrap("invalid_input", "image_base64 is not valid base64", err)
		}
		dataURL = "data:image/jpeg;base64," + imageB64
	}

	return s.complete(ctx, s.cfg.VisionModel, openai.ImageMessage(prompt, dataURL))
}

func (s *service) complete(ctx context.Context, model string, msg openai.Message) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    []openai.Message{msg},
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		if errors.Is(err, openai.ErrMissingAPIKey) {
			return "", apperrors.Wrap("config_error", "completion service is not configured", err)
		}
		return "", apperrors.Wrap("llm_error", "completion request failed", err)
	}
	return resp.OutputText(), nil
}

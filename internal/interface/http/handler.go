package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jardinvision/jardin-proxy/internal/domain/analyze"
	"github.com/jardinvision/jardin-proxy/internal/domain/forecast"
	"github.com/jardinvision/jardin-proxy/internal/domain/garden"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	analyzeSvc  analyze.Service
	gardenSvc   garden.Service
	forecastSvc forecast.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(analyzeSvc analyze.Service, gardenSvc garden.Service, forecastSvc forecast.Service, logger *slog.Logger) *Handler {
	return &Handler{
		analyzeSvc:  analyzeSvc,
		gardenSvc:   gardenSvc,
		forecastSvc: forecastSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// Home serves the informational landing page.
func (h *Handler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homeHTML))
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": "jardin-proxy"})
}

// Analyze proxies a free text gardening query to the completion service.
// A malformed body behaves like an empty one and fails the prompt check.
func (h *Handler) Analyze(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	_ = c.ShouldBindJSON(&req)

	result, err := h.analyzeSvc.Text(c.Request.Context(), req.Prompt)
	if err != nil {
		abortWithError(c, domainHTTPError(err, "analyze_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// AnalyzeImage proxies an image analysis query to the completion service.
func (h *Handler) AnalyzeImage(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64"`
		Prompt      string `json:"prompt"`
	}
	_ = c.ShouldBindJSON(&req)

	result, err := h.analyzeSvc.Image(c.Request.Context(), req.ImageBase64, req.Prompt)
	if err != nil {
		abortWithError(c, domainHTTPError(err, "analyze_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Potager generates the monthly garden calendar. The raw body is handed to
// the domain untouched: normalization there tolerates any malformed payload.
func (h *Handler) Potager(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		body = nil
	}

	result, err := h.gardenSvc.Calendar(c.Request.Context(), body)
	if err != nil {
		abortWithError(c, domainHTTPError(err, "potager_failed"))
		return
	}
	c.JSON(http.StatusOK, result)
}

// Meteo returns the 7-day forecast summary for a region.
func (h *Handler) Meteo(c *gin.Context) {
	var req forecast.Request
	_ = c.ShouldBindJSON(&req)

	summary, err := h.forecastSvc.Summarize(c.Request.Context(), req.Region)
	if err != nil {
		abortWithError(c, domainHTTPError(err, "meteo_failed"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

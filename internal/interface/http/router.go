package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jardinvision/jardin-proxy/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/", handler.Home)
	router.GET("/health", handler.Health)
	router.POST("/analyze", handler.Analyze)
	router.POST("/analyze-image", handler.AnalyzeImage)
	router.POST("/potager", handler.Potager)
	router.POST("/meteo", handler.Meteo)

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

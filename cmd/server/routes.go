package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/catalog"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/config"
	webhandler "github.com/aKrishnan0817/uchicago-ai-advisor/internal/web"
	"github.com/aKrishnan0817/uchicago-ai-advisor/web"
)

// setupRoutes configures all HTTP routes
func setupRoutes(router *gin.Engine, handler *webhandler.Handler, store *catalog.Store, cfg *config.Config, registry *prometheus.Registry) {
	// Health check endpoints
	// Liveness Probe - checks if the application is alive (minimal check)
	// This should NEVER check dependencies - only that the process is running
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness Probe - checks if the application is ready to serve traffic.
	// The server stays up without catalog data or an API key, but readiness
	// reports both so orchestrators can see a degraded deployment.
	readyHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ready",
			"catalog": gin.H{
				"programs": store.ProgramCount(),
				"courses":  store.CourseCount(),
			},
			"llm_configured": cfg.HasLLMKey(),
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// Advisor API endpoints
	router.GET("/status", handler.Status)
	router.POST("/chat", handler.Chat)
	router.POST("/upload-transcript", handler.UploadTranscript)

	// Prometheus metrics endpoint, optionally behind basic auth
	metricsHandler := gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if cfg.MetricsPassword != "" {
		router.GET("/metrics", gin.BasicAuth(gin.Accounts{
			cfg.MetricsUsername: cfg.MetricsPassword,
		}), metricsHandler)
	} else {
		router.GET("/metrics", metricsHandler)
	}

	// Browser chat frontend
	router.NoRoute(gin.WrapH(web.Handler()))
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/advisor"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/buildinfo"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/catalog"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/config"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/llm"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/logger"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/metrics"
	"github.com/aKrishnan0817/uchicago-ai-advisor/internal/sentry"
	webhandler "github.com/aKrishnan0817/uchicago-ai-advisor/internal/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	log.WithField("release", buildinfo.Release()).Info("Starting UChicago Academic Advisor Server")

	// Initialize Sentry error tracking (disabled when no token is configured)
	if err := sentry.Initialize(sentry.Config{
		Token:       cfg.SentryToken,
		Host:        cfg.SentryHost,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Release(),
		SampleRate:  cfg.SentrySampleRate,
		Debug:       cfg.LogLevel == "debug",
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize Sentry, error tracking disabled")
	} else if sentry.IsEnabled() {
		log.Info("Sentry error tracking enabled")
	}
	defer sentry.Flush(2 * time.Second)

	// Load scraped catalog data. The server starts without it so the
	// frontend can explain that the scraper needs to run first.
	store, err := catalog.Load(cfg.ProgramsPath(), cfg.CoursesPath())
	if err != nil {
		log.WithError(err).WithField("data_dir", cfg.DataDir).
			Warn("Failed to load catalog data, starting with an empty catalog")
		store = catalog.New(nil, nil)
	}
	log.WithField("programs", store.ProgramCount()).
		WithField("courses", store.CourseCount()).
		Info("Catalog loaded")

	// Build the keyword index used for program relevance ranking
	index := catalog.BuildKeywordIndex(store)

	// Create Prometheus registry
	registry := prometheus.NewRegistry()

	// Register Go and process collectors
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())

	// Create metrics
	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Create the LLM client for the configured provider
	if !cfg.HasLLMKey() {
		log.WithField("provider", cfg.LLMProvider).
			Warn("No API key configured, chat requests will fail until one is provided")
	}
	client, err := llm.NewFromConfig(context.Background(), cfg)
	if err != nil {
		log.WithError(err).Error("Failed to create LLM client")
		os.Exit(1)
	}
	log.WithField("provider", cfg.LLMProvider).Info("LLM client created")

	// Wire the advisor pipeline: ranker -> context builder -> advisor
	ranker := advisor.NewRanker(index, cfg.MaxContextPrograms)
	builder := advisor.NewBuilder(store, ranker)
	adv := advisor.New(store, builder, client, log, m)

	// Create HTTP handler
	handler := webhandler.NewHandler(adv, store, log, m, cfg.MaxUploadBytes)

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	if sentry.IsEnabled() {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	// Setup routes
	setupRoutes(router, handler, store, cfg, registry)

	// Create HTTP server. The write timeout covers the slowest expected
	// LLM completion, see internal/config for the constants.
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  config.HTTPReadTimeout,
		WriteTimeout: config.HTTPWriteTimeout,
		IdleTimeout:  config.HTTPIdleTimeout,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.WithError(err).Error("Failed to start server")
		os.Exit(1)
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Shutting down server...")
	}

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	// Shutdown server gracefully
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	log.Info("Server stopped")
}

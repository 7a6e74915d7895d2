// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/slidecraft-ai/presentation-platform/internal/config"
	"github.com/slidecraft-ai/presentation-platform/internal/handler"
	"github.com/slidecraft-ai/presentation-platform/internal/llm"
	"github.com/slidecraft-ai/presentation-platform/internal/middleware"
	natsclient "github.com/slidecraft-ai/presentation-platform/internal/nats"
	"github.com/slidecraft-ai/presentation-platform/internal/service"
	"github.com/slidecraft-ai/presentation-platform/internal/store"
	"github.com/slidecraft-ai/presentation-platform/pkg/logger"
	"github.com/slidecraft-ai/presentation-platform/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// A missing model credential is a configuration error, caught here
	// rather than on the first request.
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "presentation-platform", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Initialize LLM client
	var llmClient llm.Client
	if cfg.OpenAIAPIKey != "" {
		llmClient, err = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	} else {
		llmClient, err = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	}
	if err != nil {
		log.Error("failed to create LLM client", zap.Error(err))
		os.Exit(1)
	}
	log.Info("LLM client ready", zap.String("provider", llmClient.Name()))

	// Initialize deck store
	var deckStore store.DeckStore
	switch cfg.StoreBackend {
	case config.StoreNATS:
		nc, err := natsclient.Connect(natsclient.Config{
			URL:      cfg.NATSURL,
			CAFile:   cfg.NATSCAFile,
			CertFile: cfg.NATSCertFile,
			KeyFile:  cfg.NATSKeyFile,
			Token:    cfg.NATSToken,
		}, log)
		if err != nil {
			log.Error("failed to connect to NATS", zap.Error(err))
			os.Exit(1)
		}
		defer nc.Close()

		deckStore, err = store.NewNATSStore(ctx, nc, cfg.DeckTTL)
		if err != nil {
			log.Error("failed to create NATS deck store", zap.Error(err))
			os.Exit(1)
		}
	default:
		deckStore = store.NewMemoryStore(cfg.DeckTTL)
	}
	defer deckStore.Close()

	// Initialize services
	generator := service.NewGenerator(llmClient, deckStore, log, service.GeneratorOptions{
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		Strict:    cfg.StrictValidation,
		Timeout:   cfg.GenerationTimeout,
	})
	decks := service.NewDecks(deckStore, log)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(deckStore)
	generateHandler := handler.NewGenerateHandler(generator, log)
	deckHandler := handler.NewDeckHandler(decks, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Disposition", "X-Correlation-ID"},
		MaxAge:         300,
	}))

	// Health endpoints (no auth required)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.JWTSecret != "" {
			r.Use(middleware.Auth(cfg.JWTSecret))
		}
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		r.Route("/decks", func(r chi.Router) {
			r.Post("/generate", generateHandler.Generate)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", deckHandler.Get)
				r.Put("/slides/{index}", deckHandler.UpdateSlide)
				r.Get("/export", deckHandler.Export)
			})
		})
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	appLogger "github.com/FACorreiaa/go-tour-guide/app/logger"
	"github.com/FACorreiaa/go-tour-guide/app/observability/metrics"
	"github.com/FACorreiaa/go-tour-guide/app/tracer"
	"github.com/FACorreiaa/go-tour-guide/config"
	"github.com/FACorreiaa/go-tour-guide/internal/api/auth"
	"github.com/FACorreiaa/go-tour-guide/internal/api/classifier"
	"github.com/FACorreiaa/go-tour-guide/internal/api/dialogue"
	"github.com/FACorreiaa/go-tour-guide/internal/api/gazetteer"
	generativeAI "github.com/FACorreiaa/go-tour-guide/internal/api/generative_ai"
	"github.com/FACorreiaa/go-tour-guide/internal/api/guide"
	"github.com/FACorreiaa/go-tour-guide/internal/api/itinerary"
	"github.com/FACorreiaa/go-tour-guide/internal/api/resolver"
	"github.com/FACorreiaa/go-tour-guide/internal/api/safety"
	"github.com/FACorreiaa/go-tour-guide/internal/api/travelapi"
	"github.com/FACorreiaa/go-tour-guide/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails.
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tracer.InitTracingAndMetrics(cfg.Handlers.Prometheus.Port)
	metrics.InitAppMetrics()

	// --- Domain wiring ---
	gaz, err := gazetteer.NewEmbeddedRepository(logger)
	if err != nil {
		logger.Error("Failed to load gazetteer", slog.Any("error", err))
		os.Exit(1)
	}

	threshold := cfg.Guide.FuzzyThreshold
	if threshold <= 0 {
		threshold = resolver.DefaultFuzzyThreshold
	}
	resolverService := resolver.NewService(gaz, threshold, logger)
	classifierService := classifier.NewService(resolverService, logger)
	dialogueService := dialogue.NewService(logger)
	safetyService := safety.NewService(logger)
	plannerService := itinerary.NewService(gaz, logger)

	weatherClient := travelapi.NewOpenWeatherClient(cfg.Collaborators.OpenWeatherAPIKey, logger)
	geocoder := travelapi.NewGoogleGeocoder(cfg.Collaborators.GoogleAPIKey, logger)
	wikiClient := travelapi.NewWikipediaClient(logger)
	aiClient, err := generativeAI.NewAIClient(ctx, cfg.Collaborators.GeminiAPIKey, logger)
	if err != nil {
		logger.Error("Failed to initialize generative client", slog.Any("error", err))
		os.Exit(1)
	}

	sessionStore := guide.NewCacheSessionStore(logger)
	guideService, err := guide.NewService(
		sessionStore,
		safetyService,
		resolverService,
		classifierService,
		dialogueService,
		plannerService,
		gaz,
		weatherClient,
		geocoder,
		wikiClient,
		aiClient,
		logger,
	)
	if err != nil {
		logger.Error("Failed to wire guide service", slog.Any("error", err))
		os.Exit(1)
	}

	authService := auth.NewService(cfg, logger)
	authHandler := auth.NewAuthHandler(authService, logger)
	guideHandler := guide.NewGuideHandler(guideService, logger)

	// --- Router setup ---
	mainRouter := router.SetupRouter(&router.Config{
		AuthHandler:            authHandler,
		GuideHandler:           guideHandler,
		AuthenticateMiddleware: auth.Authenticate(logger, cfg.JWT),
	})

	mux := chi.NewMux()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(appLogger.RequestLogger(logger))
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(middleware.Timeout(60 * time.Second))
	mux.Use(middleware.Compress(5, "application/json"))
	mux.Mount("/", mainRouter)

	// --- HTTP server ---
	srv := &http.Server{
		Addr:         cfg.Server.HTTPPort,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutdown signal received, starting graceful shutdown...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" {
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}

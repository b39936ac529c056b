package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"quickcal/internal/config"
	"quickcal/internal/database"
	"quickcal/internal/database/migration"
	handlers "quickcal/internal/http/handler"
	"quickcal/internal/http/middleware"
	"quickcal/internal/llm"
	"quickcal/internal/logging"
	"quickcal/internal/otel"
	"quickcal/internal/repository"
	"quickcal/internal/repository/postgres"
	"quickcal/internal/service"
	"quickcal/internal/storage"
)

// @title QuickCal API
// @version 1.0
// @description Turns selected text into calendar events.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	logger := logging.New(cfg.Log, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize tracing")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.WithError(err).Warn("tracing shutdown failed")
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gen, err := llm.NewGemini(ctx, cfg.Gemini, llm.WithRegisterer(reg))
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize gemini client")
	}
	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; extraction requests will fail")
	}

	// Request history is optional; without a database records are discarded.
	var (
		history repository.RequestRepository = repository.NopRequestRepository{}
		pinger  database.Pinger
	)
	if cfg.Database.Enabled() {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to database")
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			logger.WithError(err).Fatal("failed to migrate database")
		}
		history = postgres.NewRequestPostgres(db)
		pinger = db
	} else {
		logger.Info("request history disabled: DB_HOST is not set")
	}

	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			logger.WithError(err).Fatal("failed to initialize object storage")
		}
	} else {
		logger.Info("hosted calendar files disabled: MINIO_ENDPOINT is not set")
	}

	eventSvc := service.NewEventService(gen, history, service.Options{
		Store:         objStore,
		PresignExpiry: cfg.MinIO.PresignExpiry(),
		Location:      loc,
		Logger:        logger,
	})

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.WithError(err).Fatal("failed to register http metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())
	app.Use(middleware.Logger(logger))

	handlers.RegisterRoutes(app, pinger, eventSvc, handlers.RouteOptions{
		HistoryAPI: cfg.HistoryAPIEnabled,
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handlers.RegisterSwagger(app, cfg.AppHost)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.WithError(err).Warn("server shutdown failed")
		}
	}()

	addr := ":" + cfg.Port
	logger.WithFields(logrus.Fields{
		"addr":     addr,
		"model":    cfg.Gemini.Model,
		"timezone": loc.String(),
	}).Info("server starting")

	if err := app.Listen(addr); err != nil {
		logger.WithError(err).Fatal("failed to start server")
	}
}

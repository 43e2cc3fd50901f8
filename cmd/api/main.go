package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"ledger-categorizer/internal/config"
	"ledger-categorizer/internal/database"
	"ledger-categorizer/internal/handlers"
	"ledger-categorizer/internal/middleware"
	"ledger-categorizer/internal/repositories"
	"ledger-categorizer/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))

	if err := run(cfg); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}

	format := cfg.Log.Format
	if format == "" {
		format = "text"
		if cfg.IsProduction() {
			format = "json"
		}
	}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(cfg *config.Config) error {
	repo, db, closeStore, err := openCategoryRepository(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	metrics := services.NewPrometheusMetrics()

	store := services.NewCategoryStore(repo, metrics)
	if err := services.LoadCategoryStore(store); err != nil {
		return err
	}

	columns := services.IngestColumns{
		Date:        cfg.Ingest.DateColumn,
		Amount:      cfg.Ingest.AmountColumn,
		Description: cfg.Ingest.DescriptionColumn,
	}

	session := services.NewLedgerSession(
		store,
		services.NewIngestService(columns),
		services.NewCategorizer(),
		services.NewAggregator(),
		services.NewSampleLedgerGenerator(0),
		metrics,
	)

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst)
	e := newServer(cfg, session, db, limiter)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return limiter.Run(gctx)
	})

	g.Go(func() error {
		address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		slog.Info("starting ledger categorizer", "address", address, "store", repo.Source(), "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}

// openCategoryRepository selects the category store backend. db is nil for
// the file backend.
func openCategoryRepository(cfg *config.Config) (repositories.CategoryRepositoryInterface, *gorm.DB, func(), error) {
	if cfg.Store.Backend == config.StoreBackendFile {
		return repositories.NewCategoryFileRepository(cfg.Store.CategoryFile), nil, func() {}, nil
	}

	db, err := database.Initialize(&cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}
	return repositories.NewCategoryDBRepository(db.DB), db.DB, closeDB, nil
}

func newServer(cfg *config.Config, session services.LedgerSessionInterface, db *gorm.DB, limiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			slog.Info("request",
				"trace_id", middleware.GetTraceID(c),
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))

	backend := cfg.Store.Backend
	e.GET("/health", handlers.NewHealthCheckHandler(db, backend).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1",
		middleware.SecurityHeaders(),
		limiter.Middleware(),
		echomiddleware.BodyLimit(strconv.FormatInt(cfg.Server.MaxUploadBytes+multipartOverhead, 10)),
	)

	categoryHandler := handlers.NewCategoryHandler(session)
	api.GET("/categories", categoryHandler.ListCategories)
	api.POST("/categories", categoryHandler.CreateCategory)
	api.POST("/categories/:name/keywords", categoryHandler.AddKeyword)

	transactionHandler := handlers.NewTransactionHandler(session, cfg.Server.MaxUploadBytes)
	api.POST("/transactions/upload", transactionHandler.UploadLedger)
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.PATCH("/transactions/:row/category", transactionHandler.OverrideCategory)
	api.POST("/transactions/recategorize", transactionHandler.Recategorize)

	summaryHandler := handlers.NewSummaryHandler(session)
	api.GET("/summary", summaryHandler.GetSummary)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(session)
		api.POST("/dev/sample", devHandler.LoadSampleLedger)
	}

	return e
}

// multipartOverhead leaves room for multipart boundaries and headers around
// an upload of exactly MaxUploadBytes
const multipartOverhead = 64 << 10

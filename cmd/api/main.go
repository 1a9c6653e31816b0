package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"meprofiled/backend/internal/config"
	"meprofiled/backend/internal/handlers"
	"meprofiled/backend/internal/middleware"
	"meprofiled/backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize embedding model
	model, err := services.NewEmbeddingModel(
		services.GeminiLoader(cfg.Gemini.APIKey, cfg.Gemini.EmbedModel),
		cfg.Model.CacheSize,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize embedding model: %v", err)
	}

	if !cfg.IsDevelopment() {
		loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := model.Load(loadCtx); err != nil {
			log.Printf("⚠️  Embedding model not loaded at startup, will retry on first request: %v", err)
		}
		cancel()
	}

	// Initialize services
	analyzer, err := services.NewAnalyzerFromConfig(cfg, model, services.NewAnalysisMetrics(prometheus.DefaultRegisterer))
	if err != nil {
		log.Fatalf("❌ Failed to initialize analyzer: %v", err)
	}
	uploads := services.NewUploadService(cfg.Upload.Extensions, cfg.Upload.MaxFileSize)
	log.Println("✅ Services initialized successfully")

	app := newApp(cfg, analyzer, uploads, model, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s (env: %s)\n", addr, cfg.Server.Env)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func newApp(
	cfg *config.Config,
	analyzer services.AnalyzerService,
	uploads services.UploadService,
	model handlers.ModelHandle,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
) *fiber.App {
	// Initialize Handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzer,
		uploads,
		cfg.Validation.ExperienceLevels,
		cfg.Server.WriteTimeout,
		cfg.IsDevelopment(),
	)
	healthHandler := handlers.NewHealthHandler(model)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "MeProfiled Resume Analyzer API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: handlers.NewErrorHandler(cfg.Upload.MaxFileSize, cfg.IsDevelopment()),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Server.AllowedOrigins, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       cfg.Server.CORSMaxAge,
	}))
	app.Use(middleware.NewMetricsBuilder(reg).Build())

	// Routes
	app.Get("/", handlers.HandleRoot)
	app.Get("/health", healthHandler.HandleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	app.Post("/analyze", analyzeHandler.HandleAnalyze)

	return app
}

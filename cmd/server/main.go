package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Viamapa-Trip-Planner/service-routes/internal/application"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/assistant"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/config"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/domain/route"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/geocode"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/handler"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/health"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/kafka"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/logger"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/middleware"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/ors"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/places"
	"github.com/Viamapa-Trip-Planner/service-routes/internal/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-routes")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-routes",
		zap.String("port", cfg.Port),
		zap.String("history_backend", cfg.HistoryBackend),
	)

	// Initialize route history storage
	var db *gorm.DB
	var historyRepo route.HistoryRepository
	switch cfg.HistoryBackend {
	case "memory":
		historyRepo = repository.NewMemoryHistoryRepository()
		log.Info("using in-memory route history")
	default:
		db, err = gorm.Open(postgres.Open(cfg.DBConfig.DSN()), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
			TranslateError: true,
		})
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(&repository.RouteModel{}); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		historyRepo = repository.NewGormHistoryRepository(db)
	}

	// Initialize Kafka producer
	var publisher application.EventPublisher
	if cfg.KafkaConfig.Enabled {
		producer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
		defer func() { _ = producer.Close() }()
		publisher = producer
	}

	// Initialize external clients
	geocoder := geocode.NewClient(cfg.GeocodeConfig.BaseURL, cfg.GeocodeConfig.UserAgent, log)
	orsClient := ors.NewClient(cfg.ORSConfig.BaseURL, cfg.ORSConfig.APIKey, log)
	placesClient := places.NewClient(
		cfg.PlacesConfig.BaseURL,
		cfg.PlacesConfig.APIKey,
		cfg.PlacesConfig.APIVersion,
		cfg.PlacesConfig.Limit,
		log,
	)
	predicate := places.NewLLMPredicate(cfg.LLMConfig.APIKey, cfg.LLMConfig.Model)
	routeAssistant := assistant.NewClient(cfg.LLMConfig.APIKey, cfg.LLMConfig.Model)

	// Initialize application services
	plannerService := application.NewPlannerService(geocoder, orsClient, orsClient, publisher, log)
	discoveryService := application.NewDiscoveryService(geocoder, placesClient, predicate, log)
	historyService := application.NewHistoryService(historyRepo, publisher, log)
	chatService := application.NewChatService(historyService, routeAssistant, log)

	// Initialize HTTP handlers
	routeHandler := handler.NewRouteHandler(plannerService, historyService)
	placeHandler := handler.NewPlaceHandler(discoveryService)
	chatHandler := handler.NewChatHandler(chatService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(db, "service-routes")
	healthHandler.RegisterRoutes(router)

	// Register routes
	routeHandler.RegisterRoutes(&router.RouterGroup)
	placeHandler.RegisterRoutes(&router.RouterGroup)
	chatHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-routes...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-routes stopped")
}

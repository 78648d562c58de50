package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pesqueriaOutfitters/app/echo-server/router"
	"pesqueriaOutfitters/business/analytics"
	"pesqueriaOutfitters/business/category"
	"pesqueriaOutfitters/business/product"
	"pesqueriaOutfitters/business/recommendation"
	"pesqueriaOutfitters/internal/middleware"
	psqlRepo "pesqueriaOutfitters/internal/repository/postgres"
	redisRepo "pesqueriaOutfitters/internal/repository/redis"
	"pesqueriaOutfitters/internal/rest"
	"pesqueriaOutfitters/pkg/config"
	"pesqueriaOutfitters/pkg/database"
	redisdb "pesqueriaOutfitters/pkg/database/redis"
	"pesqueriaOutfitters/pkg/logger"
	"pesqueriaOutfitters/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Pesqueria Outfitters", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Recommendation caching degrades gracefully: without redis every request
	// recomputes.
	var recoCache recommendation.ResultCache
	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, recommendation caching disabled", "error", err)
	} else {
		recoCache = redisRepo.NewRecommendationCache(redisClient)
		defer redisdb.CloseRedisClient(redisClient)
	}

	// Init repo
	productsRepo := psqlRepo.NewProductRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)
	eventsRepo := psqlRepo.NewAnalyticsEventRepository(db)

	// Init service
	productService := product.NewProductService(productsRepo)
	categoryService := category.NewCategoryService(categoryRepo)
	trackerService := analytics.NewTrackerService(eventsRepo)
	signalService := analytics.NewSignalService(eventsRepo, analytics.SignalConfig{
		BrowsingWindowHours:   cfg.Analytics.BrowsingWindowHours,
		BrowsingMaxEvents:     cfg.Analytics.BrowsingMaxEvents,
		MinViewsForConversion: cfg.Analytics.MinViewsForConversion,
	})
	recService := recommendation.NewRecommendationService(
		productsRepo,
		ordersRepo,
		recoCache,
		recommendationConfig(cfg),
		time.Duration(cfg.Recommendation.CacheTTLSeconds)*time.Second,
	)

	// Init handler
	productHandler := rest.NewProductHandler(productService)
	categoryHandler := rest.NewCategoryHandler(categoryService)
	analyticsHandler := rest.NewAnalyticsHandler(trackerService)
	insightsHandler := rest.NewInsightsHandler(signalService)
	recHandler := rest.NewRecommendationHandler(recService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupCategoryRoutes(api, categoryHandler, authRequired, adminOnly)
	router.SetRecommendationRoutes(api, recHandler)
	router.SetAnalyticsRoutes(api, analyticsHandler)
	router.SetInsightsRoutes(api, insightsHandler, authRequired, adminOnly)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

func recommendationConfig(cfg *config.Config) recommendation.Config {
	return recommendation.Config{
		Weights: recommendation.Weights{
			Category:     cfg.Recommendation.WeightCategory,
			Price:        cfg.Recommendation.WeightPrice,
			Attributes:   cfg.Recommendation.WeightAttributes,
			Conservation: cfg.Recommendation.WeightConservation,
			Popularity:   cfg.Recommendation.WeightPopularity,
		},
		PriceCutoff:         cfg.Recommendation.PriceCutoff,
		SimilarityThreshold: cfg.Recommendation.SimilarityThreshold,
		MaxRecommendations:  cfg.Recommendation.MaxRecommendations,
		MultiSourceBoost:    cfg.Recommendation.MultiSourceBoost,
		TrendingWindowDays:  cfg.Recommendation.TrendingWindowDays,
		CoOccurrenceWindow:  cfg.Recommendation.CoOccurrenceWindow,
		RecentOrderLookback: cfg.Recommendation.RecentOrderLookback,
		SourceProducts:      cfg.Recommendation.SourceProducts,
	}
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"converter-service/internal/config"
	"converter-service/internal/converter"
	"converter-service/internal/handlers"
	"converter-service/internal/middleware"
)

// @title Marketplace Listing Converter API
// @version 1.0.0
// @description Converts seller inventory spreadsheets between marketplace bulk-upload formats (Ecokart, eBay, Google Merchant, Facebook Marketplace)

// @contact.name Converter API Support
// @contact.email support@ecokartuk.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8093
// @BasePath /api/v1

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Initialize conversion service with the server-side template assets
	templates := converter.NewDirTemplateProvider(cfg.TemplateDir)
	service := converter.NewService(templates, converter.GeneratorOptions{
		Currency:          cfg.DefaultCurrency,
		StorefrontBaseURL: cfg.StorefrontBaseURL,
		Ebay: converter.EbayDefaults{
			Location:        cfg.EbayLocation,
			DispatchTime:    cfg.EbayDispatchTime,
			ShippingService: cfg.EbayShippingService,
			ShippingCost:    cfg.EbayShippingCost,
			PaymentProfile:  cfg.EbayPaymentProfile,
			ReturnProfile:   cfg.EbayReturnProfile,
			ShippingProfile: cfg.EbayShippingProfile,
		},
	}, logger)

	// Initialize handlers
	convertHandler := handlers.NewConvertHandler(service, cfg, logger)
	templateHandler := handlers.NewTemplateHandler()
	healthHandler := handlers.NewHealthHandler()

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("ecokart", "converter_service")
	log.Println("✓ Prometheus metrics initialized")

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(metrics.Middleware())
	router.Use(middleware.CORS())

	// Health check endpoints (no auth required)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/metrics", middleware.Handler())

	// API routes
	api := router.Group("/api/v1")
	{
		convert := api.Group("/convert")
		{
			convert.POST("", convertHandler.Convert)
			convert.GET("/template", templateHandler.GetSourceTemplate)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Converter service starting on port %s", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-quit
	log.Println("Shutting down converter-service...")
	log.Println("Converter service stopped")
}

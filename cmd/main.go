package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/girishsunnykumar006-arch/bitesaver/internal/catalog"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/checkout"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/events"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/handler"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/repository"
	"github.com/girishsunnykumar006-arch/bitesaver/internal/service"
	"github.com/girishsunnykumar006-arch/bitesaver/pkg/config"
	"github.com/girishsunnykumar006-arch/bitesaver/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Info("Service configuration",
		zap.String("port", cfg.Port),
		zap.String("kafka_brokers", cfg.KafkaBrokers),
		zap.String("delivery_charge", cfg.DeliveryCharge),
		zap.String("tax_rate", cfg.TaxRate),
		zap.Duration("processing_delay", cfg.ProcessingDelay))

	deliveryCharge, err := decimal.NewFromString(cfg.DeliveryCharge)
	if err != nil {
		logger.Fatal("Invalid DELIVERY_CHARGE", zap.Error(err))
	}
	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		logger.Fatal("Invalid TAX_RATE", zap.Error(err))
	}

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	producer := events.NewProducer(cfg.KafkaBrokers, logger)
	defer producer.Close()

	sessions := repository.NewSessionRepository()
	orders := repository.NewOrderRepository()
	storefront := service.NewStorefrontService(
		cat,
		orders,
		checkout.NewCalculator(deliveryCharge, taxRate),
		checkout.NewProcessor(cfg.ProcessingDelay, logger),
		producer,
		logger,
	)
	storefrontHandler := handler.NewStorefrontHandler(storefront, cat, sessions, logger)

	// Setup Gin Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.RequestID())

	v1 := router.Group("/api/v1")
	storefrontHandler.Register(v1)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":   "healthy",
			"service":  "bitesaver-storefront",
			"port":     cfg.Port,
			"sessions": sessions.Count(),
			"events":   producer.Enabled(),
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}

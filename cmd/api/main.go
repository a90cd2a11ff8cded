package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/paododia/paododia-admin-service/config"
	"github.com/paododia/paododia-admin-service/internal/logger"
	"github.com/paododia/paododia-admin-service/internal/middleware"
	"github.com/paododia/paododia-admin-service/internal/seed"

	custH "github.com/paododia/paododia-admin-service/internal/customer/handler"
	custRepoPkg "github.com/paododia/paododia-admin-service/internal/customer/repository"
	custUCPkg "github.com/paododia/paododia-admin-service/internal/customer/usecase"

	orderH "github.com/paododia/paododia-admin-service/internal/order/handler"
	orderRepoPkg "github.com/paododia/paododia-admin-service/internal/order/repository"
	orderUCPkg "github.com/paododia/paododia-admin-service/internal/order/usecase"

	planH "github.com/paododia/paododia-admin-service/internal/plan/handler"
	planRepoPkg "github.com/paododia/paododia-admin-service/internal/plan/repository"
	planUCPkg "github.com/paododia/paododia-admin-service/internal/plan/usecase"

	prodH "github.com/paododia/paododia-admin-service/internal/product/handler"
	prodRepoPkg "github.com/paododia/paododia-admin-service/internal/product/repository"
	prodUCPkg "github.com/paododia/paododia-admin-service/internal/product/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger, err := logger.New(&cfg.Logger, cfg.Server.AppEnv)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. Resolve the delivery timezone (anchors the "today" window)
	loc, err := time.LoadLocation(cfg.Orders.Timezone)
	if err != nil {
		appLogger.Fatal("invalid orders timezone", zap.String("timezone", cfg.Orders.Timezone), zap.Error(err))
	}

	// 4. Initialize Repositories with the canonical seed data
	now := time.Now().In(loc)
	prodRepo := prodRepoPkg.NewMemoryRepository(seed.Products(now))
	planRepo := planRepoPkg.NewMemoryRepository(seed.Plans(now))
	custRepo := custRepoPkg.NewMemoryRepository(seed.Customers(now))
	orderRepo := orderRepoPkg.NewMemoryRepository(seed.Orders(now))
	appLogger.Info("in-memory store seeded", zap.String("timezone", cfg.Orders.Timezone))

	// 5. Initialize UseCases
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)
	planUC := planUCPkg.NewPlanUseCase(planRepo, appLogger)
	custUC := custUCPkg.NewCustomerUseCase(custRepo, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, loc, cfg.Orders.HistoryPageSize, appLogger)

	// 6. Initialize Handlers
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	planHandler := planH.NewPlanHandler(planUC, appLogger)
	custHandler := custH.NewCustomerHandler(custUC, appLogger)
	orderHandler := orderH.NewOrderHandler(orderUC, appLogger)

	// 7. Router
	if cfg.Server.AppEnv != "dev" && cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(appLogger), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.GET("/daily-orders", orderHandler.ListDaily)
	api.GET("/daily-orders/by-condominium", orderHandler.ListDailyByCondominium)
	api.GET("/orders/history", orderHandler.History)
	api.POST("/orders", orderHandler.Create)
	api.POST("/orders/:id/confirm", orderHandler.ConfirmDelivery)
	api.POST("/orders/:id/cancel", orderHandler.Cancel)

	api.GET("/products", prodHandler.List)
	api.POST("/products", prodHandler.Create)
	api.PUT("/products/:id", prodHandler.Update)

	api.GET("/plans", planHandler.List)
	api.POST("/plans", planHandler.Create)
	api.PUT("/plans/:id", planHandler.Update)

	api.GET("/customers", custHandler.List)
	api.GET("/customers/by-condominium", custHandler.ListByCondominium)

	api.GET("/reports/production", orderHandler.ProductionReport)

	// 8. Start HTTP server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	appLogger.Info("starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("server stopped")
}

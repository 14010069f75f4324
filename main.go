// File: labassist/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labassist/config"
	"labassist/database"
	bookingRepo "labassist/database/repository/booking"
	equipmentRepo "labassist/database/repository/equipment"
	orderRepo "labassist/database/repository/order"
	"labassist/handlers"
	"labassist/middleware"
	"labassist/routes"
	"labassist/services/booking"
	"labassist/services/dispatch"
	"labassist/services/knowledge"
	"labassist/services/order"
	"labassist/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitLockClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo()
	odRepo := orderRepo.NewMongoOrderRepo()
	eqRepo := equipmentRepo.NewMongoEquipmentRepo()

	setupCtx, cancelSetup := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelSetup()
	if err := bkRepo.EnsureIndexes(setupCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := odRepo.EnsureIndexes(setupCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure order indexes: %v", err)
	}
	if err := eqRepo.SeedDefault(setupCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed equipment catalogue: %v", err)
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:   bkRepo,
		Equip:  eqRepo,
		Locker: booking.NewRedisLocker(utils.GetLockClient()),
	}
	orderService := &order.DefaultOrderService{
		Repo: odRepo,
	}

	oracle, err := dispatch.NewGeminiOracle(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini oracle: %v", err)
	}

	dispatchService := dispatch.NewDefaultDispatchService(
		oracle,
		knowledge.NewStore(),
		bookingService,
		orderService,
		time.Duration(config.AppConfig.OracleTimeoutSecs)*time.Second,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Chat:    handlers.NewChatHandler(dispatchService),
		Booking: handlers.NewBookingHandler(bookingService),
		Health:  handlers.NewHealthHandler(),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetLockClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evently/config"
	"evently/database"
	availabilityRepo "evently/database/repository/availability"
	bookingRepo "evently/database/repository/booking"
	serviceRepo "evently/database/repository/service"
	"evently/handlers"
	"evently/middleware"
	"evently/routes"
	bookingSvc "evently/services/booking"
	"evently/services/schedule"
	"evently/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()
	svcRepo := serviceRepo.NewMongoEventServiceRepo()

	if err := availRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure availability indexes: %v", err)
	}
	if err := bkRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// Services.
	scheduleService := &schedule.DefaultScheduleService{
		Availability:       availRepo,
		Bookings:           bkRepo,
		Services:           svcRepo,
		Cache:              utils.GetCacheClient(),
		CacheTTL:           time.Duration(config.AppConfig.ScheduleCacheTTLSec) * time.Second,
		DefaultDurationMin: config.AppConfig.DefaultBookingDurationMin,
	}
	bookingService := &bookingSvc.DefaultBookingService{
		Repo:     bkRepo,
		Services: svcRepo,
		Cache:    utils.GetCacheClient(),
	}

	// Handlers.
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	handlerBundle := &handlers.HandlerBundle{
		ListAvailabilityHandler:   scheduleHandler.ListAvailabilityHandler,
		UpsertAvailabilityHandler: scheduleHandler.UpsertAvailabilityHandler,
		DeleteAvailabilityHandler: scheduleHandler.DeleteAvailabilityHandler,
		CheckConflictsHandler:     scheduleHandler.CheckConflictsHandler,
		DailyScheduleHandler:      scheduleHandler.DailyScheduleHandler,
		GridHandler:               scheduleHandler.GridHandler,

		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,

		ListServicesHandler:  bookingHandler.ListServicesHandler,
		CreateServiceHandler: bookingHandler.CreateServiceHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

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

// File: clinicbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"clinicbook/config"
	"clinicbook/database"
	appointmentRepo "clinicbook/database/repository/appointment"
	scheduleRepo "clinicbook/database/repository/schedule"
	"clinicbook/handlers"
	"clinicbook/routes"
	"clinicbook/services/availability"
	"clinicbook/services/booking"
	"clinicbook/services/notification"
	"clinicbook/services/schedule"
	"clinicbook/utils"
	"clinicbook/worker"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}

	// notification queue.
	telegramClient := notification.NewTelegramClient(
		config.AppConfig.TelegramBotToken,
		config.AppConfig.TelegramChatID,
	)
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	notifyService := notification.NewQueueNotificationService(asynqClient, telegramClient)
	worker.InitNotificationWorker(telegramClient)

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Repo:  schedRepo,
		Cache: utils.GetCacheClient(),
		TTL:   time.Duration(config.AppConfig.ScheduleCacheTTLSeconds) * time.Second,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Schedules:    scheduleService,
		Appointments: apptRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:   apptRepo,
		Notify: notifyService,
	}

	// handlers.
	handlerBundle := &routes.Handlers{
		Public:       handlers.NewPublicHandler(availabilityService, bookingService),
		Appointment:  handlers.NewAppointmentHandler(bookingService),
		Schedule:     handlers.NewScheduleHandler(scheduleService),
		Notification: handlers.NewNotificationHandler(notifyService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "4000"
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

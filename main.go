// File: shelterhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shelterhub/config"
	"shelterhub/cron"
	"shelterhub/database"
	appointmentRepo "shelterhub/database/repository/appointment"
	orgRepo "shelterhub/database/repository/organization"
	petRepo "shelterhub/database/repository/pet"
	staffRepoPkg "shelterhub/database/repository/staff"
	volunteerRepo "shelterhub/database/repository/volunteer"
	"shelterhub/handlers"
	"shelterhub/metrics"
	"shelterhub/middleware"
	"shelterhub/routes"
	"shelterhub/services/appointments"
	"shelterhub/services/availability"
	"shelterhub/services/roster"
	"shelterhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	metrics.Register()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	volRepo := volunteerRepo.NewMongoVolunteerRepo()
	petsRepo := petRepo.NewMongoPetRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	orgsRepo := orgRepo.NewMongoOrganizationRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()

	// availability engine.
	engine := &availability.DefaultEngine{
		Data: &availability.RepoData{
			Orgs:  orgsRepo,
			Vols:  volRepo,
			Pets:  petsRepo,
			Appts: apptRepo,
		},
		DefaultDuration: config.AppConfig.DefaultVisitMinutes,
		DefaultZone:     config.AppConfig.DefaultTimezone,
	}

	// Queue client used to schedule delayed hold-expiry tasks.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer queueClient.Close()

	// services.
	apptService, err := appointments.NewDefaultAppointmentService(
		apptRepo,
		orgsRepo,
		engine,
		queueClient,
		time.Duration(config.AppConfig.AppointmentHoldMinutes)*time.Minute,
		config.AppConfig.DefaultTimezone,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize appointment service: %v", err)
	}

	rosterService, err := roster.NewDefaultRosterService(volRepo, petsRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize roster service: %v", err)
	}

	// Background worker that releases unconfirmed holds.
	cron.InitExpiryWorker(apptService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StaffRepo: staffRepo,
		Availability: handlers.NewAvailabilityHandler(
			engine,
			utils.GetCacheClient(),
			time.Duration(config.AppConfig.AvailabilityCacheSeconds)*time.Second,
		),
		Appointments: handlers.NewAppointmentHandler(apptService),
		Roster:       handlers.NewRosterHandler(rosterService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"cache": utils.GetCacheClient(),
			"auth":  utils.GetAuthCacheClient(),
		},
		database.MongoClient,
	)

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

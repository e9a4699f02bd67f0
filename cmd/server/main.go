package main

import (
	"alcyxob/fitness-tracker/internal/api"
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/logging"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository/mongo"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// @title Fitness Tracker API
// @version 1.0
// @description Personal workout log, body composition tracking and training insights.
// @BasePath /
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.ToStdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	log.Infoln("starting fitness tracker server")

	// --- Database Connection ---
	// A missing or unreachable store is not fatal: the API boots degraded
	// and /test reports why.
	store := mongo.Connect(cfg.Database.URL, cfg.Database.Name, cfg.Database.ConnectTimeout)
	if store.Connected() {
		log.Infof("connected to database %q", cfg.Database.Name)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err := store.EnsureIndexes(ctx); err != nil {
				log.Warnf("index creation incomplete: %v", err)
				return
			}
			log.Debugln("index creation completed")
		}()
	} else {
		log.Warnf("database not available, running degraded: %v", store.Reason())
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Errorf("failed to disconnect database: %v", err)
		}
	}()

	// --- Initialize Storage ---
	fileStorage, err := storage.NewS3Storage(context.Background(), cfg.S3)
	if err != nil {
		log.Fatalf("failed to initialize S3 storage: %v", err)
	}
	if fileStorage == nil {
		log.Infoln("report archive disabled: no S3 bucket configured")
	}

	// --- Initialize Repositories ---
	profileRepo := mongo.NewMongoProfileRepository(store)
	workoutRepo := mongo.NewMongoWorkoutRepository(store)
	bodyCompRepo := mongo.NewMongoBodyCompRepository(store)

	// --- Initialize Services ---
	insightsService := service.NewInsightsService(workoutRepo, bodyCompRepo, time.Now)
	services := api.Services{
		Profile:  service.NewProfileService(profileRepo),
		Workout:  service.NewWorkoutService(workoutRepo),
		BodyComp: service.NewBodyCompService(bodyCompRepo),
		Insights: insightsService,
		Archive:  service.NewArchiveService(insightsService, fileStorage, cfg.S3.PresignExpiry, time.Now),
		Status: service.NewStatusService(store, service.ConfigPresence{
			DatabaseURL:  cfg.Database.URL != "",
			DatabaseName: cfg.Database.Name != "",
		}),
	}

	metricsManager := metrics.NewManager("fitness", "api", prometheus.DefaultRegisterer)

	// --- Initialize Gin Engine ---
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	api.SetupRoutes(router, services, metricsManager)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infof("server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Infoln("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	log.Infoln("server exiting")
}

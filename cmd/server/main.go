package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coachdesk/athlete-platform/internal/api"
	"coachdesk/athlete-platform/internal/config"
	"coachdesk/athlete-platform/internal/repository/mongo"
	"coachdesk/athlete-platform/internal/service"
	"coachdesk/athlete-platform/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Athlete Platform Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if cfg.Session.Secret == "" {
		log.Fatal("FATAL: session.secret (SESSION_SECRET) must be configured")
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureCoachIndexes(ctx, appDB.Collection("coaches"))
		mongo.EnsureAthleteIndexes(ctx, appDB.Collection("athletes"))
		mongo.EnsurePerformanceIndexes(ctx, appDB.Collection("performance"))
		mongo.EnsureInjuryIndexes(ctx, appDB.Collection("injuries"))
		mongo.EnsureVideoIndexes(ctx, appDB.Collection("videos"))
		mongo.EnsureActivityIndexes(ctx, appDB.Collection("activities"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing blob storage service...")
	blobStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	coachRepo := mongo.NewMongoCoachRepository(appDB)
	athleteRepo := mongo.NewMongoAthleteRepository(appDB)
	performanceRepo := mongo.NewMongoPerformanceRepository(appDB)
	injuryRepo := mongo.NewMongoInjuryRepository(appDB)
	videoRepo := mongo.NewMongoVideoRepository(appDB)
	activityRepo := mongo.NewMongoActivityRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	sessions := service.NewSessionManager(cfg.Session.Secret, cfg.Session.Lifetime)
	authService := service.NewAuthService(coachRepo, sessions)
	activityService := service.NewActivityService(activityRepo)
	athleteService := service.NewAthleteService(athleteRepo, activityService)
	performanceService := service.NewPerformanceService(performanceRepo, athleteRepo, activityService)
	injuryService := service.NewInjuryService(injuryRepo, athleteRepo, activityService)
	videoService := service.NewVideoService(videoRepo, athleteRepo, activityService, blobStorage, service.NewMockAnalyzer(), cfg.Upload, cfg.Analysis)
	dashboardService := service.NewDashboardService(athleteService, activityService)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware
	router.MaxMultipartMemory = cfg.Upload.MaxSizeBytes

	// --- Setup Routes ---
	log.Println("Setting up routes...")
	api.SetupRoutes(router, sessions, authService, athleteService, performanceService, injuryService, videoService, dashboardService, cfg.Languages)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

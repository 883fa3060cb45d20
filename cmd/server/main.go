package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/Nuray2204/FamilyHub/internal/config"
	"github.com/Nuray2204/FamilyHub/internal/database"
	"github.com/Nuray2204/FamilyHub/internal/handlers"
	"github.com/Nuray2204/FamilyHub/internal/jobs"
	"github.com/Nuray2204/FamilyHub/internal/repository"
	cron "github.com/Nuray2204/FamilyHub/internal/scheduler"
	"github.com/Nuray2204/FamilyHub/internal/services"
	"github.com/Nuray2204/FamilyHub/pkg/logger"
	"github.com/Nuray2204/FamilyHub/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	traitRepo := repository.NewTraitRepository(db)
	nudgeRepo := repository.NewNudgeRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	eventRepo := repository.NewEventRepository(db)
	storyRepo := repository.NewStoryRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	traitService := services.NewTraitService(traitRepo)
	badgeService := services.NewBadgeService(badgeRepo)
	analyticsService := services.NewAnalyticsService(analyticsRepo)
	eventService := services.NewEventService(eventRepo, counterRepo, analyticsRepo, badgeService)
	progressService := services.NewProgressService(progressRepo, eventService)
	seasonalService := services.NewSeasonalService()
	storyService := services.NewStoryService(storyRepo, eventService)
	seedService := services.NewSeedService(storyRepo, badgeRepo)

	selector := services.NewNudgeSelector(rand.New(rand.NewSource(time.Now().UnixNano())))
	nudgeService := services.NewNudgeService(nudgeRepo, traitService, progressService, analyticsService, selector, cfg.FamilyID)

	generator := jobs.NewDailyGenerator(userService, nudgeService, cfg.FamilyID)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, eventService, cfg)
	nudgeHandler := handlers.NewNudgeHandler(nudgeService, userService)
	eventHandler := handlers.NewEventHandler(eventService, cfg.FamilyID)
	badgeHandler := handlers.NewBadgeHandler(badgeService)
	progressHandler := handlers.NewProgressHandler(progressService, cfg.FamilyID)
	seasonalHandler := handlers.NewSeasonalHandler(seasonalService)
	storyHandler := handlers.NewStoryHandler(storyService, cfg.FamilyID)
	adminHandler := handlers.NewAdminHandler(seedService, generator, analyticsService, cfg.FamilyID)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Public user routes
	router.HandleFunc("/users/register", userHandler.RegisterUserHandler).Methods("POST")
	router.HandleFunc("/users/login", userHandler.LoginUserHandler).Methods("POST")

	// Protected user routes
	protectedUserRoutes := router.PathPrefix("/users").Subrouter()
	protectedUserRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedUserRoutes.Use(middleware.UpdateLastActiveMiddleware(userService))
	protectedUserRoutes.HandleFunc("/{id}", userHandler.GetUserHandler).Methods("GET")
	protectedUserRoutes.HandleFunc("/me/traits", userHandler.UpdateTraitsHandler).Methods("PUT")

	// Nudge routes
	protectedNudgeRoutes := router.PathPrefix("/nudges").Subrouter()
	protectedNudgeRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedNudgeRoutes.Use(middleware.UpdateLastActiveMiddleware(userService))
	protectedNudgeRoutes.HandleFunc("/today", nudgeHandler.GetDailyNudgeHandler).Methods("GET")
	protectedNudgeRoutes.HandleFunc("/history", nudgeHandler.GetHistoryHandler).Methods("GET")

	// Engagement events
	protectedEventRoutes := router.PathPrefix("/events").Subrouter()
	protectedEventRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedEventRoutes.HandleFunc("", eventHandler.RecordEventHandler).Methods("POST")

	// Badge routes
	protectedBadgeRoutes := router.PathPrefix("/badges").Subrouter()
	protectedBadgeRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedBadgeRoutes.HandleFunc("", badgeHandler.GetBadgesHandler).Methods("GET")
	protectedBadgeRoutes.HandleFunc("/{id}/seen", badgeHandler.MarkSeenHandler).Methods("POST")

	// Quiz routes
	protectedQuizRoutes := router.PathPrefix("/quiz").Subrouter()
	protectedQuizRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedQuizRoutes.HandleFunc("/next", progressHandler.NextQuestionHandler).Methods("GET")
	protectedQuizRoutes.HandleFunc("/answer", progressHandler.AnswerQuestionHandler).Methods("POST")

	// Seasonal routes
	protectedSeasonalRoutes := router.PathPrefix("/seasonal").Subrouter()
	protectedSeasonalRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedSeasonalRoutes.HandleFunc("/banners", seasonalHandler.GetBannersHandler).Methods("GET")
	protectedSeasonalRoutes.HandleFunc("/content", seasonalHandler.GetContentHandler).Methods("GET")

	// Story routes
	protectedStoryRoutes := router.PathPrefix("/stories").Subrouter()
	protectedStoryRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedStoryRoutes.HandleFunc("", storyHandler.GetStoriesHandler).Methods("GET")
	protectedStoryRoutes.HandleFunc("/{id}/read", storyHandler.MarkReadHandler).Methods("POST")

	// Admin routes
	adminRoutes := router.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	adminRoutes.Use(middleware.RequireRole("admin"))
	adminRoutes.HandleFunc("/users", userHandler.AdminGetAllUsersHandler).Methods("GET")
	adminRoutes.HandleFunc("/seed", adminHandler.SeedCatalogHandler).Methods("POST")
	adminRoutes.HandleFunc("/generate", adminHandler.RunGenerationHandler).Methods("POST")
	adminRoutes.HandleFunc("/analytics", adminHandler.AnalyticsReportHandler).Methods("GET")
	adminRoutes.HandleFunc("/analytics/finalize", adminHandler.FinalizeDayHandler).Methods("POST")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Background schedule: daily generation and analytics finalization
	cron.StartDailyCronJobs(generator, analyticsService, cfg.FamilyID)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // adjust to frontend origin
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

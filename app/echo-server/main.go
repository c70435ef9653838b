package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"scentify/app/echo-server/router"
	"scentify/business/activity"
	"scentify/business/catalog"
	"scentify/business/inventory"
	"scentify/business/recommender"
	userService "scentify/business/user"
	"scentify/internal/middleware"
	"scentify/internal/repository/fragella"
	"scentify/internal/repository/modelfile"
	"scentify/internal/repository/notification"
	psqlRepo "scentify/internal/repository/postgres"
	redisRepo "scentify/internal/repository/redis"
	"scentify/internal/rest"
	"scentify/pkg/config"
	"scentify/pkg/database"
	redisdb "scentify/pkg/database/redis"
	"scentify/pkg/logger"
	"scentify/pkg/metrics"
	"scentify/pkg/utils"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Scentify", "version", cfg.App.Version)

	utils.SetJWTSecret(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	fragellaRepo := fragella.NewFragellaRepository(
		fragella.FragellaConfig{
			BaseURL: cfg.Fragella.BaseUrl,
			APIKey:  cfg.Fragella.APIKey,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	perfumeRepo := psqlRepo.NewPerfumeRepository(db)
	inventoryRepo := psqlRepo.NewInventoryRepository(db)
	interactionRepo := psqlRepo.NewInteractionRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)
	modelStore := modelfile.NewStore(cfg.Recommender.ModelDir)

	// Init service
	usrService := userService.NewUserService(userRepo, validate, mailjetEmail, tokenRepo, cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl)
	catalogService := catalog.NewService(perfumeRepo, interactionRepo, fragellaRepo)
	inventoryService := inventory.NewService(inventoryRepo, perfumeRepo, interactionRepo)
	activityService := activity.NewService(interactionRepo)
	recommenderService := recommender.NewService(perfumeRepo, inventoryRepo, modelStore, recommender.Config{
		NegativeSamplesRatio: cfg.Recommender.NegativeSamplesRatio,
		MinInventorySize:     cfg.Recommender.MinInventorySize,
		MinProbability:       cfg.Recommender.MinProbability,
		MaxPerCategory:       cfg.Recommender.MaxPerCategory,
		TopN:                 cfg.Recommender.TopN,
		RandomSeed:           cfg.Recommender.RandomSeed,
	})

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	perfumeHandler := rest.NewPerfumeHandler(catalogService)
	inventoryHandler := rest.NewInventoryHandler(inventoryService)
	interactionHandler := rest.NewInteractionHandler(activityService)
	recommendationHandler := rest.NewRecommendationHandler(recommenderService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(usrService)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly)
	router.SetupPerfumeRoutes(api, perfumeHandler, authRequired, adminOnly)
	router.SetupInventoryRoutes(api, inventoryHandler, authRequired)
	router.SetupInteractionRoutes(api, interactionHandler, authRequired)
	router.SetupRecommendationRoutes(api, recommendationHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

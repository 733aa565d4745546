package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/recleague/league-system/config"
	"github.com/recleague/league-system/db"
	"github.com/recleague/league-system/handlers"
	"github.com/recleague/league-system/middleware"
	"github.com/recleague/league-system/repositories"
	api "github.com/recleague/league-system/routes"
	"github.com/recleague/league-system/services"
	"github.com/recleague/league-system/storage"
	"github.com/recleague/league-system/swiss"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("R2 credentials not configured, logo uploads disabled")
	}

	wsHub := swiss.NewHub(logger)
	go wsHub.Run()
	logger.Info("websocket hub started")

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	seasonRepo := repositories.NewPostgresSeasonRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	gameRepo := repositories.NewPostgresGameRepository(dbConn)
	seedingRepo := repositories.NewPostgresSwissSeedingRepository(dbConn)

	authService := services.NewAuthService(userRepo)
	seasonService := services.NewSeasonService(seasonRepo)
	teamService := services.NewTeamService(teamRepo, seasonRepo, uploader, logger)
	gameService := services.NewGameService(gameRepo, seasonRepo, teamRepo, wsHub, logger)
	swissService := services.NewSwissService(seasonRepo, teamRepo, gameRepo, seedingRepo, wsHub, logger)
	logger.Info("services initialized")

	auth := middleware.NewAuthenticator(cfg.JWTSecretKey)
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	seasonHandler := handlers.NewSeasonHandler(seasonService)
	teamHandler := handlers.NewTeamHandler(teamService)
	gameHandler := handlers.NewGameHandler(gameService)
	swissHandler := handlers.NewSwissHandler(swissService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, seasonService, cfg.WSAllowedOrigin, logger)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		auth,
		authHandler,
		seasonHandler,
		teamHandler,
		gameHandler,
		swissHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
}

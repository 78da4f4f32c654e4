package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/srgjo27/trip_planner/internal/adapter/handler"
	"github.com/srgjo27/trip_planner/internal/adapter/repository/memory"
	"github.com/srgjo27/trip_planner/internal/adapter/repository/redisstore"
	"github.com/srgjo27/trip_planner/internal/core/ports"
	"github.com/srgjo27/trip_planner/internal/core/services"
	"github.com/srgjo27/trip_planner/internal/platform/config"
	"github.com/srgjo27/trip_planner/internal/platform/logger"
	"github.com/srgjo27/trip_planner/internal/platform/redis"
)

func main() {
	logger.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.SetLogLevel(cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sessionRepo ports.SessionRepository

	switch cfg.Session.Store {
	case config.StoreRedis:
		redisClient, err := redis.NewClient(ctx, redis.Config{
			Host:          cfg.Redis.Host,
			Port:          cfg.Redis.Port,
			Password:      cfg.Redis.Password,
			DB:            cfg.Redis.DB,
			MaxRetry:      cfg.Redis.MaxRetry,
			RetryWaitTime: time.Duration(cfg.Redis.RetryWaitTime) * time.Second,
		})
		if err != nil {
			logger.ErrorWithStack(err)
			os.Exit(1)
		}
		defer redisClient.Close()

		sessionRepo = redisstore.NewSessionRepository(redisClient, cfg.IdleTimeout())
	default:
		sessionRepo = memory.NewSessionRepository()
	}

	log.Info().Str("store", cfg.Session.Store).Msg("Session store ready")

	sessionService := services.NewSessionService(services.DefaultRegistry(), sessionRepo, services.SessionOptions{
		IdleTimeout:     cfg.IdleTimeout(),
		CleanupInterval: cfg.CleanupInterval(),
	})

	sessionHandler := handler.NewSessionHandler(sessionService)

	go sessionService.RunBackgroundCleanup(ctx)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	sessionHandler.Router(router)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server startup failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}

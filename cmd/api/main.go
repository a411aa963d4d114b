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

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/platemind/backend/config"
	"github.com/platemind/backend/internal/api"
	"github.com/platemind/backend/internal/database"
	"github.com/platemind/backend/internal/middleware"
	"github.com/platemind/backend/internal/router"
	"github.com/platemind/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Generation stays available without redis, just unthrottled.
	var limiter *middleware.RateLimiter
	if redisClient, err := database.NewRedis(cfg); err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
	} else {
		limiter = middleware.NewGenerationRateLimiter(redisClient)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)

	// Keep the interface nil when no API key is configured so the generator
	// falls back to the built-in recipes.
	var backend service.RecipeCompleter
	if llm := service.NewLLMClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger); llm != nil {
		backend = llm
	} else {
		logger.Info("no LLM API key configured, using built-in recipes")
	}

	generator := service.NewGeneratorService(backend, service.NewMockRecipeService(), logger)
	recipeService := service.NewRecipeService(db)

	authHandler := api.NewAuthHandler(authService, logger)
	recipeHandler := api.NewRecipeHandler(generator, recipeService, logger)

	engine := router.SetupRouter(authHandler, recipeHandler, authService, limiter, logger)

	srv := &http.Server{
		Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
		Handler: engine,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		errChan <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

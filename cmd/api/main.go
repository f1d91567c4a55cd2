package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/truthos/meeting-intel/pkg/validator"

	_ "github.com/truthos/meeting-intel/docs"
	"github.com/truthos/meeting-intel/internal/adapter/handler"
	"github.com/truthos/meeting-intel/internal/infrastructure/cache"
	"github.com/truthos/meeting-intel/internal/infrastructure/external/backend"
	aiuse "github.com/truthos/meeting-intel/internal/usecase/analysis"
	"github.com/truthos/meeting-intel/internal/usecase/auth"
	pkgai "github.com/truthos/meeting-intel/pkg/ai"
	"github.com/truthos/meeting-intel/pkg/config"
	"github.com/truthos/meeting-intel/pkg/jwt"
)

// @title           Meeting Intel API
// @version         1.0
// @description     Meeting intelligence API: transcript analysis and contact meeting history

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-User-Role"},
		AllowCredentials: true,
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize session store
	log.Println("Initializing session store...")
	var sessions cache.SessionStore
	if cfg.RedisEnabled() {
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		sessions = redisStore
	} else {
		log.Println("REDIS_HOST not set, using in-memory session store")
		sessions = cache.NewMemoryStore()
	}

	// Initialize services
	log.Println("Initializing services...")
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)
	authService := auth.NewService(jwtManager, sessions, logger)

	openaiClient := pkgai.NewOpenAIClient(&cfg.OpenAI)
	if !openaiClient.Configured() {
		// Not fatal: relay routes keep working; the analysis path
		// reports a configuration error per request
		logger.Warn("OPENAI_API_KEY is not set, transcript analysis will fail")
	}
	analysisService := aiuse.NewService(openaiClient, &cfg.OpenAI, logger)

	relayClient := backend.NewClient(&cfg.Backend)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	analysisHandler := handler.NewAnalysisHandler(analysisService, logger)
	meetingHandler := handler.NewMeetingHandler(relayClient, logger)
	contactHandler := handler.NewContactHandler(relayClient, logger)

	// Setup routes
	router := handler.NewRouter(cfg, authService, authHandler, analysisHandler, meetingHandler, contactHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Starting server on %s", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

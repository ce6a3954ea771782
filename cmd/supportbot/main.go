package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/aircloud/supportbot/internal/api"
	"github.com/aircloud/supportbot/internal/config"
	"github.com/aircloud/supportbot/internal/domain"
	"github.com/aircloud/supportbot/internal/llm"
	"github.com/aircloud/supportbot/internal/repository"
	"github.com/aircloud/supportbot/internal/service"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	settingsRepo := repository.NewSettingsRepository(db)
	productRepo := repository.NewProductRepository(db)
	chatLogRepo := repository.NewChatLogRepository(db)

	// Seed the singleton bot configuration before serving any chat request
	if err := settingsRepo.EnsureDefault(domain.DefaultContext); err != nil {
		logger.Fatal("Failed to seed default settings", zap.Error(err))
	}

	// Initialize completion provider
	provider, err := llm.NewGeminiProvider(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		logger.Fatal("Failed to create completion provider", zap.Error(err))
	}
	defer provider.Close()

	// Initialize services
	chatService := service.NewChatService(
		settingsRepo,
		productRepo,
		chatLogRepo,
		provider,
		logger,
		cfg.ProviderTimeout(),
	)

	adminService := service.NewAdminService(
		settingsRepo,
		productRepo,
		chatLogRepo,
		logger,
	)

	// Setup router
	router := api.SetupRouter(chatService, adminService, api.RouterConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting support bot server",
			zap.String("address", cfg.Address()),
			zap.String("model", cfg.Gemini.Model),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

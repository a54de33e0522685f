package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cnc-assist/internal/api"
	"cnc-assist/internal/api/handlers"
	"cnc-assist/internal/cache"
	"cnc-assist/internal/repository"
	"cnc-assist/internal/service"
	"cnc-assist/pkg/auth"
	"cnc-assist/pkg/config"
	"cnc-assist/pkg/logger"
	"cnc-assist/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting CNC assistant service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	chunkRepo := repository.NewChunkRepository(db, appLogger)
	qaRepo := repository.NewQARepository(db, appLogger)

	// Initialize admin credential verifier
	var verifier auth.CredentialVerifier
	if cfg.Admin.PasswordHash != "" {
		verifier = auth.NewBcryptHash(cfg.Admin.PasswordHash)
	} else {
		verifier = auth.NewSharedSecret(cfg.Admin.Password)
	}

	// Initialize services
	responseCache := cache.NewMemory()
	embedder := service.NewEmbeddingService(&cfg.Gemini, cfg.Ingest.MaxRetries, appLogger)
	llm := service.NewLLMService(&cfg.OpenAI, &cfg.RAG, appLogger)
	retriever := service.NewRetrievalService(embedder, chunkRepo, &cfg.RAG, appLogger)
	answerer := service.NewAnswerService(llm, &cfg.RAG, appLogger)
	chatService := service.NewChatService(responseCache, retriever, answerer, qaRepo, appLogger)
	ingestService := service.NewIngestService(&cfg.Ingest, embedder, chunkRepo, responseCache, appLogger)
	moderationService := service.NewModerationService(qaRepo, appLogger)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	knowledgeHandler := handlers.NewKnowledgeHandler(ingestService, chunkRepo, responseCache, appLogger)
	moderationHandler := handlers.NewModerationHandler(moderationService, appLogger)
	adminHandler := handlers.NewAdminHandler(moderationService, appLogger)

	// Setup router
	app := api.SetupRouter(chatHandler, knowledgeHandler, moderationHandler, adminHandler, verifier, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}

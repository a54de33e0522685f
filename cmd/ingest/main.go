// Command ingest loads a source document (PDF, Markdown, or plain text) into
// the knowledge base: chunk, embed, persist. It is safe to re-run; failed
// chunks are reported, not fatal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cnc-assist/internal/cache"
	"cnc-assist/internal/repository"
	"cnc-assist/internal/service"
	"cnc-assist/pkg/config"
	"cnc-assist/pkg/logger"
	"cnc-assist/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	var (
		filePath = flag.String("file", "", "path to the document to ingest (pdf, md, txt)")
		clear    = flag.Bool("clear", false, "delete all stored chunks before ingesting")
	)
	flag.Parse()

	if *filePath == "" && !*clear {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	chunkRepo := repository.NewChunkRepository(db, appLogger)

	if *clear {
		if err := chunkRepo.DeleteAll(ctx); err != nil {
			appLogger.Fatal("Failed to clear knowledge base", zap.Error(err))
		}
		appLogger.Info("Knowledge base cleared")
		if *filePath == "" {
			return
		}
	}

	embedder := service.NewEmbeddingService(&cfg.Gemini, cfg.Ingest.MaxRetries, appLogger)

	// The ingest CLI runs in its own process; its cache is throwaway.
	ingestService := service.NewIngestService(&cfg.Ingest, embedder, chunkRepo, cache.NewMemory(), appLogger)

	stats, err := ingestService.IngestFile(ctx, *filePath)
	if err != nil {
		appLogger.Fatal("Ingestion failed", zap.Error(err))
	}

	rate := 0.0
	if stats.Chunks > 0 {
		rate = float64(stats.SuccessCount) / float64(stats.Chunks) * 100
	}

	fmt.Println("\nIngestion summary:")
	fmt.Printf("  Source:   %s\n", stats.Source)
	fmt.Printf("  Chunks:   %d\n", stats.Chunks)
	fmt.Printf("  Success:  %d\n", stats.SuccessCount)
	fmt.Printf("  Failed:   %d\n", stats.FailCount)
	fmt.Printf("  Rate:     %.1f%%\n", rate)
}

package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"cnc-assist/internal/cache"
	"cnc-assist/internal/chunker"
	"cnc-assist/internal/models"
	"cnc-assist/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// IngestStats summarizes one best-effort ingestion run. Chunks counts every
// produced chunk, including whitespace-only ones that were skipped.
type IngestStats struct {
	Source       string
	Chunks       int
	SuccessCount int
	FailCount    int
}

// IngestService runs a document through the chunk → embed → persist pipeline.
// Failures are counted, never fatal: re-running the ingestion resumes the
// work. Embedding calls are throttled to stay under provider rate limits.
type IngestService struct {
	splitter *chunker.Splitter
	embedder Embedder
	chunks   ChunkStore
	cache    cache.ResponseCache
	limiter  *rate.Limiter
	logger   *zap.Logger
}

func NewIngestService(
	cfg *config.IngestConfig,
	embedder Embedder,
	chunks ChunkStore,
	responseCache cache.ResponseCache,
	logger *zap.Logger,
) *IngestService {
	return &IngestService{
		splitter: chunker.New(cfg.ChunkSize, cfg.ChunkOverlap),
		embedder: embedder,
		chunks:   chunks,
		cache:    responseCache,
		limiter:  rate.NewLimiter(rate.Every(cfg.RequestInterval), 1),
		logger:   logger,
	}
}

// IngestText ingests pasted text content and invalidates the response cache,
// since remembered answers may now be stale.
func (s *IngestService) IngestText(ctx context.Context, content, title string) (*IngestStats, error) {
	if title == "" {
		title = "Manual Entry"
	}

	stats := s.ingest(ctx, content, models.ChunkMetadata{
		Source:     title,
		Type:       "manual_text",
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
	})

	s.cache.Clear()

	return stats, nil
}

// IngestFile loads a PDF, Markdown, or plain-text file and ingests it.
func (s *IngestService) IngestFile(ctx context.Context, path string) (*IngestStats, error) {
	text, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	return s.ingest(ctx, text, models.ChunkMetadata{
		Source: filepath.Base(path),
	}), nil
}

func (s *IngestService) ingest(ctx context.Context, text string, meta models.ChunkMetadata) *IngestStats {
	pieces := s.splitter.Split(text)
	stats := &IngestStats{Source: meta.Source, Chunks: len(pieces)}

	s.logger.Info("Starting ingestion",
		zap.String("source", meta.Source),
		zap.Int("chunks", len(pieces)),
	)

	for i, content := range pieces {
		if strings.TrimSpace(content) == "" {
			continue
		}

		if err := s.limiter.Wait(ctx); err != nil {
			stats.FailCount += stats.Chunks - i
			break
		}

		embedding, err := s.embedder.Embed(ctx, content)
		if err != nil {
			s.logger.Warn("Skipping chunk, embedding failed",
				zap.Int("chunk_index", i),
				zap.Error(err),
			)
			stats.FailCount++
			continue
		}

		md := meta
		md.ChunkIndex = i
		md.TotalChunks = len(pieces)

		chunk := &models.Chunk{
			ID:        uuid.New(),
			Content:   content,
			Metadata:  md,
			Embedding: embedding,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.chunks.Insert(ctx, chunk); err != nil {
			s.logger.Error("Failed to insert chunk",
				zap.Int("chunk_index", i),
				zap.Error(err),
			)
			stats.FailCount++
			continue
		}
		stats.SuccessCount++
	}

	s.logger.Info("Ingestion finished",
		zap.String("source", meta.Source),
		zap.Int("success", stats.SuccessCount),
		zap.Int("failed", stats.FailCount),
	)

	return stats
}

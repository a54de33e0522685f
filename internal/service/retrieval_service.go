package service

import (
	"context"
	"fmt"

	"cnc-assist/internal/models"
	"cnc-assist/pkg/config"

	"go.uber.org/zap"
)

// RetrievalService embeds a query and asks the store for the nearest chunks.
type RetrievalService struct {
	embedder Embedder
	chunks   ChunkStore
	config   *config.RAGConfig
	logger   *zap.Logger
}

func NewRetrievalService(embedder Embedder, chunks ChunkStore, cfg *config.RAGConfig, logger *zap.Logger) *RetrievalService {
	return &RetrievalService{
		embedder: embedder,
		chunks:   chunks,
		config:   cfg,
		logger:   logger,
	}
}

// Retrieve returns the top-K stored chunks whose similarity to the query
// clears the configured threshold, ordered most-similar first. An empty
// result means no knowledge is available for this query.
func (s *RetrievalService) Retrieve(ctx context.Context, query string) ([]*models.Chunk, error) {
	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	results, err := s.chunks.SearchSimilar(ctx, embedding, s.config.TopK, s.config.MinSimilarity)
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}

	s.logger.Info("Retrieval completed",
		zap.Int("results", len(results)),
		zap.Int("top_k", s.config.TopK),
	)

	return results, nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"cnc-assist/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

// ChunkRepository persists document chunks and runs cosine-similarity search
// over their pgvector embeddings. Similarity search is delegated entirely to
// the database via the <=> operator.
type ChunkRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewChunkRepository(db *pgxpool.Pool, logger *zap.Logger) *ChunkRepository {
	return &ChunkRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ChunkRepository) Insert(ctx context.Context, chunk *models.Chunk) error {
	metadata, err := json.Marshal(chunk.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal chunk metadata: %w", err)
	}

	query := squirrel.Insert("documents").
		Columns("id", "content", "metadata", "embedding", "created_at").
		Values(chunk.ID, chunk.Content, metadata, pgvector.NewVector(chunk.Embedding), chunk.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// SearchSimilar returns up to topK chunks ordered by descending cosine
// similarity to the query embedding, keeping only rows at or above
// minSimilarity. An empty result is not an error.
func (r *ChunkRepository) SearchSimilar(ctx context.Context, embedding []float32, topK int, minSimilarity float64) ([]*models.Chunk, error) {
	vec := pgvector.NewVector(embedding)

	query := squirrel.Select("id", "content", "metadata", "created_at").
		Column(squirrel.Expr("1 - (embedding <=> ?) AS similarity", vec)).
		From("documents").
		Where(squirrel.Expr("1 - (embedding <=> ?) >= ?", vec, minSimilarity)).
		OrderBy("similarity DESC").
		Limit(uint64(topK)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.Chunk
	for rows.Next() {
		var chunk models.Chunk
		var metadata []byte

		if err := rows.Scan(&chunk.ID, &chunk.Content, &metadata, &chunk.CreatedAt, &chunk.Similarity); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(metadata, &chunk.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal chunk metadata: %w", err)
		}

		results = append(results, &chunk)
	}

	return results, rows.Err()
}

func (r *ChunkRepository) Count(ctx context.Context) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("documents").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteAll bulk-clears the knowledge base. Individual chunks are never
// deleted; re-ingestion starts from an empty table.
func (r *ChunkRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, "DELETE FROM documents")
	return err
}

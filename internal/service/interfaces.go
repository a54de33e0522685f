package service

import (
	"context"

	"cnc-assist/internal/dto"
	"cnc-assist/internal/models"

	"github.com/google/uuid"
)

// Embedder turns a text into a fixed-length vector, or fails. It never
// returns a partial vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ChatModel requests a completion for an assembled message sequence.
type ChatModel interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

// ChunkStore is the persistence surface for document chunks, implemented by
// repository.ChunkRepository.
type ChunkStore interface {
	Insert(ctx context.Context, chunk *models.Chunk) error
	SearchSimilar(ctx context.Context, embedding []float32, topK int, minSimilarity float64) ([]*models.Chunk, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

// QAStore is the persistence surface for answered questions, implemented by
// repository.QARepository. GetByID returns apperrors.ErrNotFound for unknown
// ids.
type QAStore interface {
	Create(ctx context.Context, qa *models.QAInteraction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.QAInteraction, error)
	UpdateCounters(ctx context.Context, id uuid.UUID, likes, dislikes int) error
	UpdateReports(ctx context.Context, id uuid.UUID, reports int, hidden bool) error
	ListReported(ctx context.Context) ([]*models.QAInteraction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddReport(ctx context.Context, qaID uuid.UUID, reporter string) error
}

// Retriever finds the stored chunks most similar to a query.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]*models.Chunk, error)
}

// Answerer produces the final answer from retrieved context and history.
type Answerer interface {
	Answer(ctx context.Context, query string, history []dto.ChatTurn, chunks []*models.Chunk) (answer string, noData bool, err error)
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// ChunkMetadata tags a stored chunk with its provenance.
type ChunkMetadata struct {
	Source      string `json:"source"`
	Type        string `json:"type,omitempty"`
	ChunkIndex  int    `json:"chunk_index"`
	TotalChunks int    `json:"total_chunks"`
	UploadedAt  string `json:"uploaded_at,omitempty"`
}

// Chunk is a bounded text segment of a source document paired with its
// embedding vector. Rows are immutable once stored.
type Chunk struct {
	ID        uuid.UUID     `db:"id"`
	Content   string        `db:"content"`
	Metadata  ChunkMetadata `db:"metadata"`
	Embedding []float32     `db:"embedding"`
	CreatedAt time.Time     `db:"created_at"`

	// Similarity is populated on retrieval only, never persisted.
	Similarity float64 `db:"-"`
}

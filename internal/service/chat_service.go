package service

import (
	"context"
	"time"

	"cnc-assist/internal/cache"
	"cnc-assist/internal/dto"
	"cnc-assist/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatService drives the live request flow: cache check, retrieval, answer
// generation, Q&A persistence, cache update.
type ChatService struct {
	cache     cache.ResponseCache
	retriever Retriever
	answerer  Answerer
	qaStore   QAStore
	logger    *zap.Logger
}

func NewChatService(
	responseCache cache.ResponseCache,
	retriever Retriever,
	answerer Answerer,
	qaStore QAStore,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		cache:     responseCache,
		retriever: retriever,
		answerer:  answerer,
		qaStore:   qaStore,
		logger:    logger,
	}
}

// Chat answers one user message. A cache hit returns the remembered answer
// verbatim and skips retrieval, the model call, and Q&A persistence; the
// prior interaction id is not re-attached.
func (s *ChatService) Chat(ctx context.Context, message string, history []dto.ChatTurn) (*dto.ChatResponse, error) {
	if answer, ok := s.cache.Get(message); ok {
		s.logger.Info("Cache hit")
		return &dto.ChatResponse{Answer: answer, Cached: true}, nil
	}

	chunks, err := s.retriever.Retrieve(ctx, message)
	if err != nil {
		return nil, err
	}

	answer, noData, err := s.answerer.Answer(ctx, message, history, chunks)
	if err != nil {
		return nil, err
	}

	s.cache.Put(message, answer)

	resp := &dto.ChatResponse{
		Answer: answer,
		NoData: noData,
	}

	qa := &models.QAInteraction{
		ID:        uuid.New(),
		Question:  sanitizeUTF8(message),
		Answer:    sanitizeUTF8(answer),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.qaStore.Create(ctx, qa); err != nil {
		// The answer is already generated; losing the tracking row is not
		// worth failing the request over.
		s.logger.Error("Failed to save Q&A interaction", zap.Error(err))
	} else {
		resp.QAID = qa.ID.String()
	}

	return resp, nil
}

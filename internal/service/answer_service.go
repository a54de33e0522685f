package service

import (
	"context"
	"fmt"
	"strings"

	"cnc-assist/internal/dto"
	"cnc-assist/internal/models"
	"cnc-assist/pkg/config"

	"go.uber.org/zap"
)

// NoDataAnswer is returned without calling the completion model when
// retrieval produced no context.
const NoDataAnswer = "I don't have information about this in my knowledge base. If you know about this topic, please use the 🎓 **Train AI** button to add content and help others!"

// AnswerService assembles the retrieved context and recent conversation turns
// into a completion request.
type AnswerService struct {
	llm    ChatModel
	config *config.RAGConfig
	logger *zap.Logger
}

func NewAnswerService(llm ChatModel, cfg *config.RAGConfig, logger *zap.Logger) *AnswerService {
	return &AnswerService{
		llm:    llm,
		config: cfg,
		logger: logger,
	}
}

// buildSystemInstruction embeds the retrieved context verbatim and pins down
// the grounding, language, and follow-up behavior of the assistant.
func buildSystemInstruction(context string) string {
	return fmt.Sprintf(`You are a CNC machining expert assistant with conversation memory.

⚠️ CRITICAL RULES:
1. ONLY provide information EXPLICITLY stated in the provided context
2. Remember conversation history - answer follow-up questions
3. If user says "அதற்கு" or "that" or "it", refer to previous topic
4. If you don't have the information, clearly state what's missing

LANGUAGE:
- Tamil question → Tamil answer
- English question → English answer

Available Data:
%s`, context)
}

// Answer returns the assistant's reply for query given retrieved chunks and
// prior turns. With no chunks it short-circuits to the fixed no-data answer
// and reports noData=true; the model is not called.
func (s *AnswerService) Answer(ctx context.Context, query string, history []dto.ChatTurn, chunks []*models.Chunk) (string, bool, error) {
	if len(chunks) == 0 {
		s.logger.Info("No relevant context found, returning no-data answer")
		return NoDataAnswer, true, nil
	}

	contents := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		contents = append(contents, chunk.Content)
	}
	contextBlock := strings.Join(contents, "\n\n")

	messages := []ChatMessage{
		{Role: "system", Content: buildSystemInstruction(contextBlock)},
	}

	// Last N turns, oldest first. The web client tags assistant turns "ai".
	turns := history
	if len(turns) > s.config.MaxHistoryTurns {
		turns = turns[len(turns)-s.config.MaxHistoryTurns:]
	}
	for _, turn := range turns {
		role := "user"
		if turn.Role == "ai" || turn.Role == "assistant" {
			role = "assistant"
		}
		messages = append(messages, ChatMessage{Role: role, Content: turn.Content})
	}

	messages = append(messages, ChatMessage{Role: "user", Content: query})

	answer, err := s.llm.Complete(ctx, messages)
	if err != nil {
		return "", false, fmt.Errorf("failed to generate answer: %w", err)
	}

	return answer, false, nil
}

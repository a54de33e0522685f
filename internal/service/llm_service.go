package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cnc-assist/pkg/config"

	"go.uber.org/zap"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// ChatMessage is one turn of an assembled completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LLMService requests completions from an OpenAI-compatible chat API with
// low randomness and a bounded output length. The model call is stochastic
// even at low temperature; callers must not assume idempotence.
type LLMService struct {
	config      *config.OpenAIConfig
	baseURL     string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
	logger      *zap.Logger
}

func NewLLMService(cfg *config.OpenAIConfig, ragCfg *config.RAGConfig, logger *zap.Logger) *LLMService {
	return &LLMService{
		config:      cfg,
		baseURL:     defaultOpenAIBaseURL,
		temperature: ragCfg.Temperature,
		maxTokens:   ragCfg.MaxTokens,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		logger:      logger,
	}
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

func (s *LLMService) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	reqBody := chatCompletionRequest{
		Model:       s.config.ChatModel,
		Messages:    messages,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call completion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}

	return parsed.Choices[0].Message.Content, nil
}

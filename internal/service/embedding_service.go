package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"cnc-assist/internal/apperrors"
	"cnc-assist/pkg/config"
	"cnc-assist/pkg/retry"

	"go.uber.org/zap"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// EmbeddingService calls the Gemini embedContent endpoint. Rate-limit
// responses (429) are retried with exponential backoff; every other failure
// is returned immediately so the caller can skip the chunk.
type EmbeddingService struct {
	config     *config.GeminiConfig
	baseURL    string
	httpClient *http.Client
	policy     retry.Policy
	logger     *zap.Logger
}

func NewEmbeddingService(cfg *config.GeminiConfig, maxRetries int, logger *zap.Logger) *EmbeddingService {
	return &EmbeddingService{
		config:     cfg,
		baseURL:    defaultGeminiBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		policy: retry.Policy{
			MaxAttempts: maxRetries,
			Backoff:     retry.ExponentialBackoff(time.Second, 20*time.Second),
			Retryable: func(err error) bool {
				return errors.Is(err, apperrors.ErrRateLimited)
			},
		},
		logger: logger,
	}
}

type geminiEmbedRequest struct {
	Model   string        `json:"model"`
	Content geminiContent `json:"content"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiEmbedResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

func (s *EmbeddingService) Embed(ctx context.Context, text string) ([]float32, error) {
	return retry.Do(ctx, s.policy, func() ([]float32, error) {
		return s.embedOnce(ctx, text)
	})
}

func (s *EmbeddingService) embedOnce(ctx context.Context, text string) ([]float32, error) {
	reqBody := geminiEmbedRequest{
		Model:   "models/" + s.config.EmbeddingModel,
		Content: geminiContent{Parts: []geminiPart{{Text: text}}},
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:embedContent?key=%s", s.baseURL, s.config.EmbeddingModel, s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call embedding API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		io.Copy(io.Discard, resp.Body)
		s.logger.Warn("Embedding API rate limit hit")
		return nil, fmt.Errorf("embedding API: %w", apperrors.ErrRateLimited)
	}

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("embedding API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var parsed geminiEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode embedding response: %w", err)
	}

	if len(parsed.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding in response")
	}

	return parsed.Embedding.Values, nil
}

package handlers

import (
	"fmt"
	"strings"

	"cnc-assist/internal/cache"
	"cnc-assist/internal/dto"
	"cnc-assist/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type KnowledgeHandler struct {
	ingestService *service.IngestService
	chunks        service.ChunkStore
	cache         cache.ResponseCache
	logger        *zap.Logger
}

func NewKnowledgeHandler(
	ingestService *service.IngestService,
	chunks service.ChunkStore,
	responseCache cache.ResponseCache,
	logger *zap.Logger,
) *KnowledgeHandler {
	return &KnowledgeHandler{
		ingestService: ingestService,
		chunks:        chunks,
		cache:         responseCache,
		logger:        logger,
	}
}

// UploadText godoc
// @Summary Add pasted text to the knowledge base
// @Description Chunks, embeds, and stores the content; ingestion is best-effort and reports per-chunk counts
// @Tags knowledge
// @Accept json
// @Produce json
// @Param request body dto.UploadTextRequest true "Text content and optional title"
// @Success 200 {object} dto.UploadTextResponse
// @Failure 400 {object} map[string]string
// @Router /api/upload-text [post]
func (h *KnowledgeHandler) UploadText(c *fiber.Ctx) error {
	var req dto.UploadTextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Content is required",
		})
	}

	stats, err := h.ingestService.IngestText(c.Context(), req.Content, req.Title)
	if err != nil {
		h.logger.Error("Text upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process text: " + err.Error(),
		})
	}

	successRate := "0.0%"
	if stats.Chunks > 0 {
		successRate = fmt.Sprintf("%.1f%%", float64(stats.SuccessCount)/float64(stats.Chunks)*100)
	}

	return c.JSON(dto.UploadTextResponse{
		Success: true,
		Message: "Text content uploaded successfully!",
		Stats: dto.UploadTextStats{
			Title:        stats.Source,
			Chunks:       stats.Chunks,
			SuccessCount: stats.SuccessCount,
			FailCount:    stats.FailCount,
			SuccessRate:  successRate,
		},
	})
}

// Stats godoc
// @Summary Knowledge base statistics
// @Tags knowledge
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /api/stats [get]
func (h *KnowledgeHandler) Stats(c *fiber.Ctx) error {
	total, err := h.chunks.Count(c.Context())
	if err != nil {
		h.logger.Error("Failed to count chunks", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(dto.StatsResponse{
		TotalChunks: total,
		CacheSize:   h.cache.Len(),
	})
}

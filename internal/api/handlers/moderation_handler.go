package handlers

import (
	"errors"

	"cnc-assist/internal/apperrors"
	"cnc-assist/internal/dto"
	"cnc-assist/internal/models"
	"cnc-assist/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ModerationHandler struct {
	moderation *service.ModerationService
	logger     *zap.Logger
}

func NewModerationHandler(moderation *service.ModerationService, logger *zap.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderation: moderation,
		logger:     logger,
	}
}

// RateAnswer godoc
// @Summary Like or dislike an answer
// @Tags moderation
// @Accept json
// @Produce json
// @Param request body dto.RateAnswerRequest true "Answer id and rating type"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/rate-answer [post]
func (h *ModerationHandler) RateAnswer(c *fiber.Ctx) error {
	var req dto.RateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.QAID == "" || req.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing parameters",
		})
	}

	kind := models.RatingKind(req.Type)
	if kind != models.RatingLike && kind != models.RatingDislike {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid rating type",
		})
	}

	id, err := uuid.Parse(req.QAID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid qaId",
		})
	}

	if err := h.moderation.Rate(c.Context(), id, kind); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Q&A not found",
			})
		}
		h.logger.Error("Failed to rate answer", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}

// ReportAnswer godoc
// @Summary Report an answer as wrong or harmful
// @Description The answer is hidden automatically once enough reports accumulate
// @Tags moderation
// @Accept json
// @Produce json
// @Param request body dto.ReportAnswerRequest true "Answer id"
// @Success 200 {object} dto.ReportAnswerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/report-answer [post]
func (h *ModerationHandler) ReportAnswer(c *fiber.Ctx) error {
	var req dto.ReportAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.QAID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing qaId",
		})
	}

	id, err := uuid.Parse(req.QAID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid qaId",
		})
	}

	reports, hidden, err := h.moderation.Report(c.Context(), id, c.IP())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Q&A not found",
			})
		}
		h.logger.Error("Failed to report answer", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(dto.ReportAnswerResponse{
		Success: true,
		Hidden:  hidden,
		Reports: reports,
	})
}

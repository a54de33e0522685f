package handlers

import (
	"cnc-assist/internal/dto"
	"cnc-assist/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminHandler serves the moderation screens. Every route here sits behind
// the admin credential middleware.
type AdminHandler struct {
	moderation *service.ModerationService
	logger     *zap.Logger
}

func NewAdminHandler(moderation *service.ModerationService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		moderation: moderation,
		logger:     logger,
	}
}

// ReportedAnswers godoc
// @Summary List reported answers
// @Tags admin
// @Produce json
// @Param password query string true "Admin password"
// @Success 200 {object} dto.ReportedAnswersResponse
// @Failure 401 {object} map[string]string
// @Router /api/admin/reported-answers [get]
func (h *AdminHandler) ReportedAnswers(c *fiber.Ctx) error {
	interactions, err := h.moderation.ReportedAnswers(c.Context())
	if err != nil {
		h.logger.Error("Failed to list reported answers", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	answers := make([]dto.ReportedAnswer, 0, len(interactions))
	for _, qa := range interactions {
		answers = append(answers, dto.ReportedAnswer{
			ID:        qa.ID.String(),
			Question:  qa.Question,
			Answer:    qa.Answer,
			Likes:     qa.Likes,
			Dislikes:  qa.Dislikes,
			Reports:   qa.Reports,
			Hidden:    qa.Hidden,
			CreatedAt: qa.CreatedAt,
		})
	}

	return c.JSON(dto.ReportedAnswersResponse{Answers: answers})
}

// ApproveAnswer godoc
// @Summary Approve a reported answer
// @Description Resets the report count and makes the answer visible again
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminActionRequest true "Admin password and answer id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} map[string]string
// @Router /api/admin/approve-answer [post]
func (h *AdminHandler) ApproveAnswer(c *fiber.Ctx) error {
	id, ok := h.parseTarget(c)
	if !ok {
		return nil
	}

	if err := h.moderation.Approve(c.Context(), id); err != nil {
		h.logger.Error("Failed to approve answer", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}

// DeleteAnswer godoc
// @Summary Delete an answer
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminActionRequest true "Admin password and answer id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} map[string]string
// @Router /api/admin/delete-answer [post]
func (h *AdminHandler) DeleteAnswer(c *fiber.Ctx) error {
	id, ok := h.parseTarget(c)
	if !ok {
		return nil
	}

	if err := h.moderation.Delete(c.Context(), id); err != nil {
		h.logger.Error("Failed to delete answer", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}

// parseTarget extracts and validates the target answer id, writing the 400
// response itself when the request is malformed.
func (h *AdminHandler) parseTarget(c *fiber.Ctx) (uuid.UUID, bool) {
	var req dto.AdminActionRequest
	if err := c.BodyParser(&req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
		return uuid.Nil, false
	}

	if req.QAID == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing qaId",
		})
		return uuid.Nil, false
	}

	id, err := uuid.Parse(req.QAID)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid qaId",
		})
		return uuid.Nil, false
	}

	return id, true
}

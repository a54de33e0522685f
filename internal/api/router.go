package api

import (
	"cnc-assist/internal/api/handlers"
	"cnc-assist/pkg/auth"
	"cnc-assist/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	chatHandler *handlers.ChatHandler,
	knowledgeHandler *handlers.KnowledgeHandler,
	moderationHandler *handlers.ModerationHandler,
	adminHandler *handlers.AdminHandler,
	verifier auth.CredentialVerifier,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	api := app.Group("/api")

	// Public routes
	api.Post("/chat", chatHandler.Chat)
	api.Post("/rate-answer", moderationHandler.RateAnswer)
	api.Post("/report-answer", moderationHandler.ReportAnswer)
	api.Post("/upload-text", knowledgeHandler.UploadText)
	api.Get("/stats", knowledgeHandler.Stats)

	// Admin routes (shared-secret gated)
	admin := api.Group("/admin", middleware.AdminAuth(verifier, appLogger))
	admin.Get("/reported-answers", adminHandler.ReportedAnswers)
	admin.Post("/approve-answer", adminHandler.ApproveAnswer)
	admin.Post("/delete-answer", adminHandler.DeleteAnswer)

	return app
}

package middleware

import (
	"cnc-assist/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminAuth gates moderation endpoints behind the shared admin credential.
// The password arrives either as a query parameter (GET endpoints) or inside
// the JSON body (POST endpoints); the body stays readable for the handler.
func AdminAuth(verifier auth.CredentialVerifier, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		password := c.Query("password")
		if password == "" {
			var body struct {
				Password string `json:"password"`
			}
			if err := c.BodyParser(&body); err == nil {
				password = body.Password
			}
		}

		if !verifier.Verify(password) {
			logger.Warn("Rejected admin request", zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		return c.Next()
	}
}

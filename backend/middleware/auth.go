package middleware

import (
	"github.com/gofiber/fiber/v2"

	"hrmarket/backend/config"
	"hrmarket/backend/models"
	"hrmarket/backend/utils"
)

// AuthMiddleware requires a valid token and stashes the caller's identity in
// locals for the handlers downstream.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := utils.ExtractUserFromToken(c, cfg)
		if err != nil {
			return utils.AuthRequired(c)
		}
		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

// AdminMiddleware requires the token's role claim to be admin.
func AdminMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := utils.ExtractUserFromToken(c, cfg)
		if err != nil {
			return utils.AuthRequired(c)
		}
		if role != models.RoleAdmin {
			return utils.Forbidden(c, "Admin access required")
		}
		c.Locals("user_id", userID)
		c.Locals("role", role)
		return c.Next()
	}
}

// UserID returns the authenticated user's ID from locals, or "" when the
// request passed through without auth.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}

package middleware

import (
	"courseportal/backend/config"
	"courseportal/backend/models"
	"courseportal/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware gates a route on a valid bearer token. A missing credential
// and an invalid one are distinct failures: absence is an authorization
// problem (403), a credential that fails signature or expiry is an
// authentication problem (401).
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := utils.ExtractToken(c)
		if tokenString == "" {
			return utils.Message(c, fiber.StatusForbidden, "No token provided!")
		}

		claims, err := utils.ParseJWTToken(tokenString, cfg)
		if err != nil {
			return utils.Message(c, fiber.StatusUnauthorized, "Unauthorized!")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("user_role", claims.Role)
		return c.Next()
	}
}

// TeacherMiddleware restricts a route to callers whose token carries the
// teacher role. Runs after AuthMiddleware.
func TeacherMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals("user_role").(string); role != models.RoleTeacher {
			return utils.Message(c, fiber.StatusForbidden, "Require Teacher Role!")
		}
		return c.Next()
	}
}

// UserID returns the authenticated caller's id attached by AuthMiddleware.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

// UserRole returns the authenticated caller's role attached by AuthMiddleware.
func UserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	return role
}

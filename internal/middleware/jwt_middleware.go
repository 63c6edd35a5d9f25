package middleware

import (
	"errors"
	"strings"

	"podhub/internal/models"
	"podhub/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const currentUserKey = "current_user"

// AuthRequired resolves the bearer token of every request to the stored
// user and makes it available through CurrentUser.
func AuthRequired(resolver *services.IdentityResolver, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		user, err := resolver.Resolve(c.UserContext(), parts[1])
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				log.Debug("token rejected", zap.Error(err))
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Invalid authentication credentials",
				})
			}
			log.Error("failed to resolve identity", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not authenticate request",
			})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by AuthRequired, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

package middleware

import (
	"learnhub/database"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that checks the authenticated user holds
// the given role. Ownership of individual records is still re-checked in the
// handlers; this only gates whole route groups.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		var user models.User
		err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrorResponse(c, fiber.StatusUnauthorized, "User not found!")
			}
			return ErrorResponse(c, fiber.StatusInternalServerError, "Server error while checking role!")
		}

		if user.Role != requiredRole {
			return ErrorResponse(c, fiber.StatusForbidden, "You do not have permission to access this resource!")
		}

		return c.Next()
	}
}

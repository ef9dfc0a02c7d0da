package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"szepseg-katalogus/internal/domain"
	"szepseg-katalogus/internal/service"
)

const (
	AdminContextKey   = "admin"
	AdminIDContextKey = "admin_id"
)

func AuthRequired(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid authorization header format",
			})
		}

		claims, err := authService.ValidateAccessToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid or expired token",
			})
		}

		admin, err := authService.GetAdminByID(c.Context(), claims.AdminID)
		if err != nil || admin == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Admin not found",
			})
		}

		c.Locals(AdminContextKey, admin)
		c.Locals(AdminIDContextKey, admin.ID)

		return c.Next()
	}
}

func GetCurrentAdmin(c *fiber.Ctx) *domain.Admin {
	admin, ok := c.Locals(AdminContextKey).(*domain.Admin)
	if !ok {
		return nil
	}
	return admin
}

func GetCurrentAdminID(c *fiber.Ctx) uuid.UUID {
	adminID, ok := c.Locals(AdminIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return adminID
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"szepseg-katalogus/internal/domain"
	"szepseg-katalogus/internal/middleware"
	"szepseg-katalogus/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Email == "" || input.Password == "" {
		return middleware.BadRequest("Email and password are required")
	}

	admin, tokens, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return middleware.Unauthorized("Invalid email or password")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"admin":  admin,
		"tokens": tokens,
	})
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.RefreshToken == "" {
		return middleware.BadRequest("Refresh token is required")
	}

	tokens, err := h.authService.RefreshToken(c.Context(), input.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, service.ErrAdminNotFound) {
			return middleware.Unauthorized("Invalid or expired refresh token")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	admin := middleware.GetCurrentAdmin(c)
	if admin == nil {
		return middleware.Unauthorized("Admin not authenticated")
	}
	return c.Status(fiber.StatusOK).JSON(admin)
}

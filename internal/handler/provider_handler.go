package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"szepseg-katalogus/internal/domain"
	"szepseg-katalogus/internal/middleware"
	"szepseg-katalogus/internal/service"
)

type ProviderHandler struct {
	providerService service.ProviderService
}

func NewProviderHandler(providerService service.ProviderService) *ProviderHandler {
	return &ProviderHandler{providerService: providerService}
}

func (h *ProviderHandler) Register(c *fiber.Ctx) error {
	var input domain.RegisterProviderInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Name == "" || input.Email == "" || input.Category == "" {
		return middleware.BadRequest("Name, email and category are required")
	}
	if input.MinPrice < 0 || input.MaxPrice < input.MinPrice {
		return middleware.ValidationError("Invalid price range")
	}

	provider, err := h.providerService.Register(c.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			return middleware.ValidationError("Unknown category")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Provider registered successfully",
		"provider": provider,
	})
}

func (h *ProviderHandler) List(c *fiber.Ctx) error {
	providers, err := h.providerService.List(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(providers)
}

func (h *ProviderHandler) ListApproved(c *fiber.Ctx) error {
	providers, err := h.providerService.ListApproved(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(providers)
}

func (h *ProviderHandler) Get(c *fiber.Ctx) error {
	providerID, err := parseProviderID(c)
	if err != nil {
		return err
	}

	provider, err := h.providerService.GetByID(c.Context(), providerID)
	if err != nil {
		if errors.Is(err, service.ErrProviderNotFound) {
			return middleware.NotFound("Provider not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(provider)
}

func (h *ProviderHandler) Update(c *fiber.Ctx) error {
	providerID, err := parseProviderID(c)
	if err != nil {
		return err
	}

	var input domain.UpdateProviderInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	provider, err := h.providerService.Update(c.Context(), providerID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProviderNotFound):
			return middleware.NotFound("Provider not found")
		case errors.Is(err, service.ErrInvalidCategory):
			return middleware.ValidationError("Unknown category")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(provider)
}

func (h *ProviderHandler) Approve(c *fiber.Ctx) error {
	providerID, err := parseProviderID(c)
	if err != nil {
		return err
	}

	provider, err := h.providerService.Approve(c.Context(), providerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProviderNotFound):
			return middleware.NotFound("Provider not found")
		case errors.Is(err, service.ErrProviderAlreadyApproved):
			return middleware.Conflict("Provider is already approved")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(provider)
}

func (h *ProviderHandler) Delete(c *fiber.Ctx) error {
	providerID, err := parseProviderID(c)
	if err != nil {
		return err
	}

	if err := h.providerService.Delete(c.Context(), providerID); err != nil {
		if errors.Is(err, service.ErrProviderNotFound) {
			return middleware.NotFound("Provider not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Provider and associated media deleted successfully",
	})
}

func parseProviderID(c *fiber.Ctx) (primitive.ObjectID, error) {
	providerID, err := primitive.ObjectIDFromHex(c.Params("providerId"))
	if err != nil {
		return primitive.NilObjectID, middleware.BadRequest("Invalid provider ID")
	}
	return providerID, nil
}

package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"szepseg-katalogus/internal/middleware"
	"szepseg-katalogus/internal/service"
)

type MediaHandler struct {
	mediaService service.MediaService
	storage      service.StorageService
}

func NewMediaHandler(mediaService service.MediaService, storage service.StorageService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		storage:      storage,
	}
}

type imageInput struct {
	ImageURL string `json:"image_url"`
	IsMain   *bool  `json:"is_main,omitempty"`
}

type videoInput struct {
	VideoURL string `json:"video_url"`
	IsMain   *bool  `json:"is_main,omitempty"`
}

func (h *MediaHandler) AttachImage(c *fiber.Ctx) error {
	providerID, err := parseProviderID(c)
	if err != nil {
		return err
	}

	var input imageInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.ImageURL == "" {
		return middleware.BadRequest("Image URL is required")
	}

	images, err := h.mediaService.AttachImage(c.Context(), providerID, input.ImageURL)
	if err != nil {
		return mapMediaError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Image added successfully",
		"images":  images,
	})
}

func (h *MediaHandler) SetMainImage(c *fiber.Ctx) error {
	providerID, err := parseProviderID(c)
	if err != nil {
		return err
	}

	var input imageInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.ImageURL == "" {
		return middleware.BadRequest("Image URL is required")
	}
	if input.IsMain == nil {
		return middleware.ValidationError("is_main must be a boolean")
	}
	if !*input.IsMain {
		return middleware.ValidationError("Unsetting the main image is not supported")
	}

	images, err := h.mediaService.SetMainImage(c.Context(), providerID, input.ImageURL)
	if err != nil {
		return mapMediaError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Image updated successfully",
		"images":  images,
	})
}

func (h *MediaHandler) RemoveImage(c *fiber.Ctx) error {
	providerID, err := parseProviderID(c)
	if err != nil {
		return err
	}

	var input imageInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.ImageURL == "" {
		return middleware.BadRequest("Image URL is required")
	}

	images, err := h.mediaService.RemoveImage(c.Context(), providerID, input.ImageURL)
	if err != nil {
		return mapMediaError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Image deleted successfully",
		"images":  images,
	})
}

func (h *MediaHandler) AttachVideo(c *fiber.Ctx) error {
	providerID, err := parseProviderID(c)
	if err != nil {
		return err
	}

	var input videoInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.VideoURL == "" {
		return middleware.BadRequest("Video URL is required")
	}

	videos, err := h.mediaService.AttachVideo(c.Context(), providerID, input.VideoURL)
	if err != nil {
		return mapMediaError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Video added successfully",
		"videos":  videos,
	})
}

func (h *MediaHandler) SetMainVideo(c *fiber.Ctx) error {
	providerID, err := parseProviderID(c)
	if err != nil {
		return err
	}

	var input videoInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.VideoURL == "" {
		return middleware.BadRequest("Video URL is required")
	}
	if input.IsMain == nil {
		return middleware.ValidationError("is_main must be a boolean")
	}
	if !*input.IsMain {
		return middleware.ValidationError("Unsetting the main video is not supported")
	}

	videos, err := h.mediaService.SetMainVideo(c.Context(), providerID, input.VideoURL)
	if err != nil {
		return mapMediaError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Video updated successfully",
		"videos":  videos,
	})
}

func (h *MediaHandler) RemoveVideo(c *fiber.Ctx) error {
	providerID, err := parseProviderID(c)
	if err != nil {
		return err
	}

	var input videoInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.VideoURL == "" {
		return middleware.BadRequest("Video URL is required")
	}

	videos, err := h.mediaService.RemoveVideo(c.Context(), providerID, input.VideoURL)
	if err != nil {
		return mapMediaError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Video deleted successfully",
		"videos":  videos,
	})
}

// Purge deletes every media item for the provider. The call succeeds even
// when individual store deletes fail; the counts tell the difference.
func (h *MediaHandler) Purge(c *fiber.Ctx) error {
	providerID, err := parseProviderID(c)
	if err != nil {
		return err
	}

	result, err := h.mediaService.PurgeAll(c.Context(), providerID)
	if err != nil {
		return mapMediaError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "All media deleted successfully",
		"attempted": result.Attempted,
		"failed":    result.Failed,
	})
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	providerID, err := parseProviderID(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	if file.Size > 50*1024*1024 {
		return middleware.BadRequest("File size must be less than 50MB")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	items, err := h.mediaService.Upload(c.Context(), providerID, file.Filename, file.Size, contentType, fileReader)
	if err != nil {
		return mapMediaError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "File uploaded successfully",
		"items":   items,
	})
}

// Download proxies a media file so the client never fetches from the object
// store directly.
func (h *MediaHandler) Download(c *fiber.Ctx) error {
	fileURL := c.Query("url")
	if fileURL == "" {
		return middleware.BadRequest("URL is required")
	}

	contentType, data, err := h.storage.FetchBytes(c.Context(), fileURL)
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Error downloading file")
	}

	c.Set(fiber.HeaderContentType, contentType)
	if filename := c.Query("filename"); filename != "" {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	}
	return c.Send(data)
}

func mapMediaError(err error) error {
	switch {
	case errors.Is(err, service.ErrProviderNotFound):
		return middleware.NotFound("Provider not found")
	case errors.Is(err, service.ErrImageNotFound):
		return middleware.NotFound("Image not found")
	case errors.Is(err, service.ErrVideoNotFound):
		return middleware.NotFound("Video not found")
	case errors.Is(err, service.ErrMediaURLExists):
		return middleware.Conflict("Media URL is already attached")
	}
	return err
}

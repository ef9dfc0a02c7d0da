package handler

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"szepseg-katalogus/internal/middleware"
	"szepseg-katalogus/internal/service"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export streams the provider's media set as server-sent events. The feed
// ends with a done event; closing the connection aborts the sequence before
// the next fetch.
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	providerID, err := parseProviderID(c)
	if err != nil {
		return err
	}

	ctx := c.Context()
	events, err := h.exportService.Export(ctx, providerID)
	if err != nil {
		if errors.Is(err, service.ErrProviderNotFound) {
			return middleware.NotFound("Provider not found")
		}
		return err
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	ctx.SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		for event := range events {
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Kind, data)
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))

	return nil
}

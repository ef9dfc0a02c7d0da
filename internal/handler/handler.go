package handler

import "szepseg-katalogus/internal/service"

type Handlers struct {
	Auth     *AuthHandler
	Provider *ProviderHandler
	Media    *MediaHandler
	Export   *ExportHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(services.Auth),
		Provider: NewProviderHandler(services.Provider),
		Media:    NewMediaHandler(services.Media, services.Storage),
		Export:   NewExportHandler(services.Export),
	}
}

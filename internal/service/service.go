package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"szepseg-katalogus/internal/config"
	"szepseg-katalogus/internal/repository"
)

type Services struct {
	Auth     AuthService
	Provider ProviderService
	Media    MediaService
	Export   ExportService
	Storage  StorageService
	Email    EmailService
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	authService := NewAuthService(repos.Admin, repos.Session, cfg)
	emailService := NewEmailService(cfg)
	storageService := NewStorageService(minioClient, cfg)
	mediaService := NewMediaService(repos.Provider, storageService)
	providerService := NewProviderService(repos.Provider, mediaService, emailService, redis)
	exportService := NewExportService(repos.Provider, storageService, cfg)

	return &Services{
		Auth:     authService,
		Provider: providerService,
		Media:    mediaService,
		Export:   exportService,
		Storage:  storageService,
		Email:    emailService,
	}
}

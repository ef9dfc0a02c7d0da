package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"szepseg-katalogus/internal/domain"
)

type mockProviderRepository struct {
	mock.Mock
}

func (m *mockProviderRepository) Create(ctx context.Context, provider *domain.Provider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *mockProviderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *mockProviderRepository) GetAll(ctx context.Context) ([]domain.Provider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Provider), args.Error(1)
}

func (m *mockProviderRepository) GetApproved(ctx context.Context) ([]domain.Provider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Provider), args.Error(1)
}

func (m *mockProviderRepository) Save(ctx context.Context, provider *domain.Provider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *mockProviderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockStorageService struct {
	mock.Mock
}

func (m *mockStorageService) Upload(ctx context.Context, objectPath string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, objectPath, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockStorageService) Delete(ctx context.Context, fileURL string) bool {
	args := m.Called(ctx, fileURL)
	return args.Bool(0)
}

func (m *mockStorageService) FetchBytes(ctx context.Context, fileURL string) (string, []byte, error) {
	args := m.Called(ctx, fileURL)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).([]byte), args.Error(2)
}

type mockMediaService struct {
	mock.Mock
}

func (m *mockMediaService) AttachImage(ctx context.Context, providerID primitive.ObjectID, imageURL string) ([]domain.MediaItem, error) {
	args := m.Called(ctx, providerID, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *mockMediaService) SetMainImage(ctx context.Context, providerID primitive.ObjectID, imageURL string) ([]domain.MediaItem, error) {
	args := m.Called(ctx, providerID, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *mockMediaService) RemoveImage(ctx context.Context, providerID primitive.ObjectID, imageURL string) ([]domain.MediaItem, error) {
	args := m.Called(ctx, providerID, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *mockMediaService) AttachVideo(ctx context.Context, providerID primitive.ObjectID, videoURL string) ([]domain.MediaItem, error) {
	args := m.Called(ctx, providerID, videoURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *mockMediaService) SetMainVideo(ctx context.Context, providerID primitive.ObjectID, videoURL string) ([]domain.MediaItem, error) {
	args := m.Called(ctx, providerID, videoURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *mockMediaService) RemoveVideo(ctx context.Context, providerID primitive.ObjectID, videoURL string) ([]domain.MediaItem, error) {
	args := m.Called(ctx, providerID, videoURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *mockMediaService) Upload(ctx context.Context, providerID primitive.ObjectID, fileName string, fileSize int64, contentType string, reader io.Reader) ([]domain.MediaItem, error) {
	args := m.Called(ctx, providerID, fileName, fileSize, contentType, reader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MediaItem), args.Error(1)
}

func (m *mockMediaService) PurgeAll(ctx context.Context, providerID primitive.ObjectID) (domain.PurgeResult, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).(domain.PurgeResult), args.Error(1)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendApprovalEmail(ctx context.Context, toEmail, providerName string) error {
	args := m.Called(ctx, toEmail, providerName)
	return args.Error(0)
}

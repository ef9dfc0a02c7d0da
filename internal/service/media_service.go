package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"szepseg-katalogus/internal/domain"
	"szepseg-katalogus/internal/repository"
)

var (
	ErrProviderNotFound = errors.New("provider not found")
	ErrImageNotFound    = errors.New("image not found")
	ErrVideoNotFound    = errors.New("video not found")
	ErrMediaURLExists   = errors.New("media url already attached")
)

// MediaService owns the invariants over a provider's media lists: among
// images, at most one is main, and exactly one whenever the list is
// non-empty. Videos carry an independent, optional main flag.
type MediaService interface {
	AttachImage(ctx context.Context, providerID primitive.ObjectID, imageURL string) ([]domain.MediaItem, error)
	SetMainImage(ctx context.Context, providerID primitive.ObjectID, imageURL string) ([]domain.MediaItem, error)
	RemoveImage(ctx context.Context, providerID primitive.ObjectID, imageURL string) ([]domain.MediaItem, error)
	AttachVideo(ctx context.Context, providerID primitive.ObjectID, videoURL string) ([]domain.MediaItem, error)
	SetMainVideo(ctx context.Context, providerID primitive.ObjectID, videoURL string) ([]domain.MediaItem, error)
	RemoveVideo(ctx context.Context, providerID primitive.ObjectID, videoURL string) ([]domain.MediaItem, error)
	Upload(ctx context.Context, providerID primitive.ObjectID, fileName string, fileSize int64, contentType string, reader io.Reader) ([]domain.MediaItem, error)
	PurgeAll(ctx context.Context, providerID primitive.ObjectID) (domain.PurgeResult, error)
}

type mediaService struct {
	providerRepo repository.ProviderRepository
	storage      StorageService
}

func NewMediaService(providerRepo repository.ProviderRepository, storage StorageService) MediaService {
	return &mediaService{
		providerRepo: providerRepo,
		storage:      storage,
	}
}

func (s *mediaService) AttachImage(ctx context.Context, providerID primitive.ObjectID, imageURL string) ([]domain.MediaItem, error) {
	provider, err := s.getProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if findItem(provider.Media.Images, imageURL) != -1 {
		return nil, ErrMediaURLExists
	}

	// The first image ever attached becomes the main one.
	provider.Media.Images = append(provider.Media.Images, domain.MediaItem{
		URL:    imageURL,
		IsMain: len(provider.Media.Images) == 0,
	})

	if err := s.providerRepo.Save(ctx, provider); err != nil {
		return nil, err
	}
	return provider.Media.Images, nil
}

func (s *mediaService) SetMainImage(ctx context.Context, providerID primitive.ObjectID, imageURL string) ([]domain.MediaItem, error) {
	provider, err := s.getProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	index := findItem(provider.Media.Images, imageURL)
	if index == -1 {
		return nil, ErrImageNotFound
	}

	for i := range provider.Media.Images {
		provider.Media.Images[i].IsMain = i == index
	}

	if err := s.providerRepo.Save(ctx, provider); err != nil {
		return nil, err
	}
	return provider.Media.Images, nil
}

func (s *mediaService) RemoveImage(ctx context.Context, providerID primitive.ObjectID, imageURL string) ([]domain.MediaItem, error) {
	provider, err := s.getProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	index := findItem(provider.Media.Images, imageURL)
	if index == -1 {
		return nil, ErrImageNotFound
	}

	wasMain := provider.Media.Images[index].IsMain
	provider.Media.Images = append(provider.Media.Images[:index], provider.Media.Images[index+1:]...)

	// Removing the main image promotes the first remaining one.
	if wasMain && len(provider.Media.Images) > 0 {
		provider.Media.Images[0].IsMain = true
	}

	if err := s.providerRepo.Save(ctx, provider); err != nil {
		return nil, err
	}
	return provider.Media.Images, nil
}

func (s *mediaService) AttachVideo(ctx context.Context, providerID primitive.ObjectID, videoURL string) ([]domain.MediaItem, error) {
	provider, err := s.getProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if findItem(provider.Media.Videos, videoURL) != -1 {
		return nil, ErrMediaURLExists
	}

	provider.Media.Videos = append(provider.Media.Videos, domain.MediaItem{URL: videoURL})

	if err := s.providerRepo.Save(ctx, provider); err != nil {
		return nil, err
	}
	return provider.Media.Videos, nil
}

func (s *mediaService) SetMainVideo(ctx context.Context, providerID primitive.ObjectID, videoURL string) ([]domain.MediaItem, error) {
	provider, err := s.getProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	index := findItem(provider.Media.Videos, videoURL)
	if index == -1 {
		return nil, ErrVideoNotFound
	}

	for i := range provider.Media.Videos {
		provider.Media.Videos[i].IsMain = i == index
	}

	if err := s.providerRepo.Save(ctx, provider); err != nil {
		return nil, err
	}
	return provider.Media.Videos, nil
}

func (s *mediaService) RemoveVideo(ctx context.Context, providerID primitive.ObjectID, videoURL string) ([]domain.MediaItem, error) {
	provider, err := s.getProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	index := findItem(provider.Media.Videos, videoURL)
	if index == -1 {
		return nil, ErrVideoNotFound
	}

	// No promotion for videos: a main video is optional.
	provider.Media.Videos = append(provider.Media.Videos[:index], provider.Media.Videos[index+1:]...)

	if err := s.providerRepo.Save(ctx, provider); err != nil {
		return nil, err
	}
	return provider.Media.Videos, nil
}

// Upload stores the file in the object store and attaches the resulting URL
// to the provider, as a video when the content type says so, otherwise as an
// image.
func (s *mediaService) Upload(ctx context.Context, providerID primitive.ObjectID, fileName string, fileSize int64, contentType string, reader io.Reader) ([]domain.MediaItem, error) {
	if _, err := s.getProvider(ctx, providerID); err != nil {
		return nil, err
	}

	objectPath := fmt.Sprintf("providers/%s/%d_%s", providerID.Hex(), time.Now().UnixMilli(), fileName)
	fileURL, err := s.storage.Upload(ctx, objectPath, reader, fileSize, contentType)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(contentType, "video/") {
		return s.AttachVideo(ctx, providerID, fileURL)
	}
	return s.AttachImage(ctx, providerID, fileURL)
}

// PurgeAll deletes every media object best-effort, then clears both lists on
// the record no matter how many store deletes failed. Orphans in the store
// are acceptable; dangling references on the record are not.
func (s *mediaService) PurgeAll(ctx context.Context, providerID primitive.ObjectID) (domain.PurgeResult, error) {
	provider, err := s.getProvider(ctx, providerID)
	if err != nil {
		return domain.PurgeResult{}, err
	}

	items := make([]domain.MediaItem, 0, len(provider.Media.Images)+len(provider.Media.Videos))
	items = append(items, provider.Media.Images...)
	items = append(items, provider.Media.Videos...)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)
	for _, item := range items {
		wg.Add(1)
		go func(fileURL string) {
			defer wg.Done()
			if !s.storage.Delete(ctx, fileURL) {
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(item.URL)
	}
	wg.Wait()

	provider.Media.Images = []domain.MediaItem{}
	provider.Media.Videos = []domain.MediaItem{}

	if err := s.providerRepo.Save(ctx, provider); err != nil {
		return domain.PurgeResult{}, err
	}

	result := domain.PurgeResult{Attempted: len(items), Failed: failed}
	if failed > 0 {
		log.Printf("media purge for provider %s: %d of %d deletes failed", providerID.Hex(), failed, len(items))
	}
	return result, nil
}

func (s *mediaService) getProvider(ctx context.Context, providerID primitive.ObjectID) (*domain.Provider, error) {
	provider, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	return provider, nil
}

func findItem(items []domain.MediaItem, fileURL string) int {
	for i, item := range items {
		if item.URL == fileURL {
			return i
		}
	}
	return -1
}

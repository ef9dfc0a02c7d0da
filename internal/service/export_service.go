package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"path"
	"strings"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"szepseg-katalogus/internal/config"
	"szepseg-katalogus/internal/domain"
	"szepseg-katalogus/internal/repository"
)

// ExportService walks a provider's full media set strictly sequentially,
// fetching each item through the storage gateway and emitting a progress
// feed. The fixed inter-item delay is a throttle against the upstream store,
// not a concurrency primitive.
type ExportService interface {
	Export(ctx context.Context, providerID primitive.ObjectID) (<-chan domain.ExportEvent, error)
}

type exportService struct {
	providerRepo repository.ProviderRepository
	storage      StorageService
	itemDelay    time.Duration
}

func NewExportService(providerRepo repository.ProviderRepository, storage StorageService, cfg *config.Config) ExportService {
	return &exportService{
		providerRepo: providerRepo,
		storage:      storage,
		itemDelay:    cfg.ExportItemDelay,
	}
}

type exportItem struct {
	url      string
	filename string
}

func (s *exportService) Export(ctx context.Context, providerID primitive.ObjectID) (<-chan domain.ExportEvent, error) {
	provider, err := s.providerRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	items := buildExportItems(provider)

	events := make(chan domain.ExportEvent)
	go s.run(ctx, items, events)
	return events, nil
}

func (s *exportService) run(ctx context.Context, items []exportItem, events chan<- domain.ExportEvent) {
	defer close(events)

	total := len(items)
	completed := 0

	if !s.emit(ctx, events, domain.ExportEvent{Kind: domain.ExportStarted, Total: total}) {
		return
	}

	for i, item := range items {
		// Abort between items only; an in-flight fetch finishes on its own.
		if ctx.Err() != nil {
			return
		}

		if !s.emit(ctx, events, domain.ExportEvent{
			Kind:      domain.ExportProgress,
			Completed: completed,
			Total:     total,
			Current:   item.filename,
		}) {
			return
		}

		contentType, data, err := s.storage.FetchBytes(ctx, item.url)
		if err != nil {
			log.Printf("export: failed to fetch %s: %v", item.filename, err)
			if !s.emit(ctx, events, domain.ExportEvent{
				Kind:     domain.ExportError,
				Filename: item.filename,
				Message:  fmt.Sprintf("failed to fetch %s", item.filename),
			}) {
				return
			}
		} else {
			completed++
			if !s.emit(ctx, events, domain.ExportEvent{
				Kind:        domain.ExportFile,
				Filename:    item.filename,
				ContentType: contentType,
				Data:        data,
			}) {
				return
			}
		}

		if i < total-1 {
			select {
			case <-time.After(s.itemDelay):
			case <-ctx.Done():
				return
			}
		}
	}

	s.emit(ctx, events, domain.ExportEvent{
		Kind:      domain.ExportDone,
		Completed: completed,
		Total:     total,
	})
}

func (s *exportService) emit(ctx context.Context, events chan<- domain.ExportEvent, event domain.ExportEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

func buildExportItems(provider *domain.Provider) []exportItem {
	name := sanitizeFilename(provider.Name)

	items := make([]exportItem, 0, len(provider.Media.Images)+len(provider.Media.Videos))
	for i, image := range provider.Media.Images {
		items = append(items, exportItem{
			url:      image.URL,
			filename: fmt.Sprintf("%s_image_%d.%s", name, i+1, extensionFromURL(image.URL, "jpg")),
		})
	}
	for i, video := range provider.Media.Videos {
		items = append(items, exportItem{
			url:      video.URL,
			filename: fmt.Sprintf("%s_video_%d.%s", name, i+1, extensionFromURL(video.URL, "mp4")),
		})
	}
	return items
}

func extensionFromURL(fileURL, fallback string) string {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return fallback
	}

	ext := strings.TrimPrefix(path.Ext(parsed.Path), ".")
	if ext == "" {
		return fallback
	}
	return ext
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, name)
}

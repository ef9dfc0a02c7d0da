package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"szepseg-katalogus/internal/domain"
)

func testProvider(id primitive.ObjectID, images, videos []domain.MediaItem) *domain.Provider {
	if images == nil {
		images = []domain.MediaItem{}
	}
	if videos == nil {
		videos = []domain.MediaItem{}
	}
	return &domain.Provider{
		ID:    id,
		Name:  "Teszt Stúdió",
		Email: "studio@example.com",
		Media: domain.ProviderMedia{Images: images, Videos: videos},
	}
}

func TestMediaService_AttachImage(t *testing.T) {
	ctx := context.Background()
	providerID := primitive.NewObjectID()

	t.Run("first image becomes main", func(t *testing.T) {
		repo := new(mockProviderRepository)
		storage := new(mockStorageService)
		svc := NewMediaService(repo, storage)

		provider := testProvider(providerID, nil, nil)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)
		repo.On("Save", ctx, provider).Return(nil)

		images, err := svc.AttachImage(ctx, providerID, "https://cdn.example.com/a.jpg")

		assert.NoError(t, err)
		assert.Len(t, images, 1)
		assert.True(t, images[0].IsMain)

		images, err = svc.AttachImage(ctx, providerID, "https://cdn.example.com/b.jpg")

		assert.NoError(t, err)
		assert.Len(t, images, 2)
		assert.True(t, images[0].IsMain)
		assert.False(t, images[1].IsMain)
	})

	t.Run("duplicate url conflicts", func(t *testing.T) {
		repo := new(mockProviderRepository)
		svc := NewMediaService(repo, new(mockStorageService))

		provider := testProvider(providerID, []domain.MediaItem{{URL: "https://cdn.example.com/a.jpg", IsMain: true}}, nil)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)

		images, err := svc.AttachImage(ctx, providerID, "https://cdn.example.com/a.jpg")

		assert.ErrorIs(t, err, ErrMediaURLExists)
		assert.Nil(t, images)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("provider not found", func(t *testing.T) {
		repo := new(mockProviderRepository)
		svc := NewMediaService(repo, new(mockStorageService))

		repo.On("GetByID", ctx, providerID).Return(nil, nil)

		_, err := svc.AttachImage(ctx, providerID, "https://cdn.example.com/a.jpg")

		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("save error propagates", func(t *testing.T) {
		repo := new(mockProviderRepository)
		svc := NewMediaService(repo, new(mockStorageService))

		provider := testProvider(providerID, nil, nil)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)
		repo.On("Save", ctx, provider).Return(errors.New("db down"))

		_, err := svc.AttachImage(ctx, providerID, "https://cdn.example.com/a.jpg")

		assert.EqualError(t, err, "db down")
	})
}

func TestMediaService_SetMainImage(t *testing.T) {
	ctx := context.Background()
	providerID := primitive.NewObjectID()

	t.Run("switches main through repeated calls", func(t *testing.T) {
		repo := new(mockProviderRepository)
		svc := NewMediaService(repo, new(mockStorageService))

		provider := testProvider(providerID, []domain.MediaItem{
			{URL: "x", IsMain: true},
			{URL: "y"},
			{URL: "z"},
		}, nil)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)
		repo.On("Save", ctx, provider).Return(nil)

		images, err := svc.SetMainImage(ctx, providerID, "z")
		assert.NoError(t, err)
		assert.Equal(t, []bool{false, false, true}, mainFlags(images))

		images, err = svc.SetMainImage(ctx, providerID, "y")
		assert.NoError(t, err)
		assert.Equal(t, []bool{false, true, false}, mainFlags(images))
	})

	t.Run("unknown image", func(t *testing.T) {
		repo := new(mockProviderRepository)
		svc := NewMediaService(repo, new(mockStorageService))

		provider := testProvider(providerID, []domain.MediaItem{{URL: "x", IsMain: true}}, nil)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)

		_, err := svc.SetMainImage(ctx, providerID, "missing")

		assert.ErrorIs(t, err, ErrImageNotFound)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestMediaService_RemoveImage(t *testing.T) {
	ctx := context.Background()
	providerID := primitive.NewObjectID()

	t.Run("removing main promotes first survivor", func(t *testing.T) {
		repo := new(mockProviderRepository)
		svc := NewMediaService(repo, new(mockStorageService))

		provider := testProvider(providerID, []domain.MediaItem{
			{URL: "a"},
			{URL: "b", IsMain: true},
			{URL: "c"},
		}, nil)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)
		repo.On("Save", ctx, provider).Return(nil)

		images, err := svc.RemoveImage(ctx, providerID, "b")

		assert.NoError(t, err)
		assert.Len(t, images, 2)
		assert.Equal(t, "a", images[0].URL)
		assert.Equal(t, []bool{true, false}, mainFlags(images))
	})

	t.Run("removing non-main keeps main", func(t *testing.T) {
		repo := new(mockProviderRepository)
		svc := NewMediaService(repo, new(mockStorageService))

		provider := testProvider(providerID, []domain.MediaItem{
			{URL: "a", IsMain: true},
			{URL: "b"},
		}, nil)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)
		repo.On("Save", ctx, provider).Return(nil)

		images, err := svc.RemoveImage(ctx, providerID, "b")

		assert.NoError(t, err)
		assert.Equal(t, []bool{true}, mainFlags(images))
	})

	t.Run("removing last image leaves empty list", func(t *testing.T) {
		repo := new(mockProviderRepository)
		svc := NewMediaService(repo, new(mockStorageService))

		provider := testProvider(providerID, []domain.MediaItem{{URL: "a", IsMain: true}}, nil)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)
		repo.On("Save", ctx, provider).Return(nil)

		images, err := svc.RemoveImage(ctx, providerID, "a")

		assert.NoError(t, err)
		assert.Empty(t, images)
	})
}

func TestMediaService_Videos(t *testing.T) {
	ctx := context.Background()
	providerID := primitive.NewObjectID()

	t.Run("attached video is never auto-main", func(t *testing.T) {
		repo := new(mockProviderRepository)
		svc := NewMediaService(repo, new(mockStorageService))

		provider := testProvider(providerID, nil, nil)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)
		repo.On("Save", ctx, provider).Return(nil)

		videos, err := svc.AttachVideo(ctx, providerID, "https://cdn.example.com/v.mp4")

		assert.NoError(t, err)
		assert.Len(t, videos, 1)
		assert.False(t, videos[0].IsMain)
	})

	t.Run("removing main video promotes nothing", func(t *testing.T) {
		repo := new(mockProviderRepository)
		svc := NewMediaService(repo, new(mockStorageService))

		provider := testProvider(providerID, nil, []domain.MediaItem{
			{URL: "v1", IsMain: true},
			{URL: "v2"},
		})
		repo.On("GetByID", ctx, providerID).Return(provider, nil)
		repo.On("Save", ctx, provider).Return(nil)

		videos, err := svc.RemoveVideo(ctx, providerID, "v1")

		assert.NoError(t, err)
		assert.Equal(t, []bool{false}, mainFlags(videos))
	})

	t.Run("video main flag independent of image main", func(t *testing.T) {
		repo := new(mockProviderRepository)
		svc := NewMediaService(repo, new(mockStorageService))

		provider := testProvider(providerID,
			[]domain.MediaItem{{URL: "img", IsMain: true}},
			[]domain.MediaItem{{URL: "v1"}, {URL: "v2"}},
		)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)
		repo.On("Save", ctx, provider).Return(nil)

		videos, err := svc.SetMainVideo(ctx, providerID, "v2")

		assert.NoError(t, err)
		assert.Equal(t, []bool{false, true}, mainFlags(videos))
		assert.True(t, provider.Media.Images[0].IsMain)
	})
}

func TestMediaService_PurgeAll(t *testing.T) {
	ctx := context.Background()
	providerID := primitive.NewObjectID()

	t.Run("clears lists despite a failed delete", func(t *testing.T) {
		repo := new(mockProviderRepository)
		storage := new(mockStorageService)
		svc := NewMediaService(repo, storage)

		provider := testProvider(providerID,
			[]domain.MediaItem{{URL: "i1", IsMain: true}, {URL: "i2"}, {URL: "i3"}},
			[]domain.MediaItem{{URL: "v1"}, {URL: "v2"}},
		)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(p *domain.Provider) bool {
			return len(p.Media.Images) == 0 && len(p.Media.Videos) == 0
		})).Return(nil)

		storage.On("Delete", ctx, "i2").Return(false)
		for _, url := range []string{"i1", "i3", "v1", "v2"} {
			storage.On("Delete", ctx, url).Return(true)
		}

		result, err := svc.PurgeAll(ctx, providerID)

		assert.NoError(t, err)
		assert.Equal(t, domain.PurgeResult{Attempted: 5, Failed: 1}, result)
		assert.False(t, result.Clean())
		repo.AssertExpectations(t)
		storage.AssertExpectations(t)
	})

	t.Run("empty media purges nothing", func(t *testing.T) {
		repo := new(mockProviderRepository)
		storage := new(mockStorageService)
		svc := NewMediaService(repo, storage)

		provider := testProvider(providerID, nil, nil)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)
		repo.On("Save", ctx, provider).Return(nil)

		result, err := svc.PurgeAll(ctx, providerID)

		assert.NoError(t, err)
		assert.Equal(t, domain.PurgeResult{Attempted: 0, Failed: 0}, result)
		storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("provider not found", func(t *testing.T) {
		repo := new(mockProviderRepository)
		storage := new(mockStorageService)
		svc := NewMediaService(repo, storage)

		repo.On("GetByID", ctx, providerID).Return(nil, nil)

		_, err := svc.PurgeAll(ctx, providerID)

		assert.ErrorIs(t, err, ErrProviderNotFound)
		storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestMediaService_Upload(t *testing.T) {
	ctx := context.Background()
	providerID := primitive.NewObjectID()

	t.Run("video content type attaches as video", func(t *testing.T) {
		repo := new(mockProviderRepository)
		storage := new(mockStorageService)
		svc := NewMediaService(repo, storage)

		provider := testProvider(providerID, nil, nil)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)
		repo.On("Save", ctx, provider).Return(nil)
		storage.On("Upload", ctx, mock.Anything, mock.Anything, int64(42), "video/mp4").
			Return("https://cdn.example.com/clip.mp4", nil)

		videos, err := svc.Upload(ctx, providerID, "clip.mp4", 42, "video/mp4", nil)

		assert.NoError(t, err)
		assert.Len(t, videos, 1)
		assert.Equal(t, "https://cdn.example.com/clip.mp4", videos[0].URL)
		assert.Empty(t, provider.Media.Images)
	})

	t.Run("image content type attaches as image", func(t *testing.T) {
		repo := new(mockProviderRepository)
		storage := new(mockStorageService)
		svc := NewMediaService(repo, storage)

		provider := testProvider(providerID, nil, nil)
		repo.On("GetByID", ctx, providerID).Return(provider, nil)
		repo.On("Save", ctx, provider).Return(nil)
		storage.On("Upload", ctx, mock.Anything, mock.Anything, int64(7), "image/png").
			Return("https://cdn.example.com/pic.png", nil)

		images, err := svc.Upload(ctx, providerID, "pic.png", 7, "image/png", nil)

		assert.NoError(t, err)
		assert.Len(t, images, 1)
		assert.True(t, images[0].IsMain)
	})
}

func mainFlags(items []domain.MediaItem) []bool {
	flags := make([]bool, len(items))
	for i, item := range items {
		flags[i] = item.IsMain
	}
	return flags
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"szepseg-katalogus/internal/config"
)

func newTestStorage() *storageService {
	return &storageService{
		cfg: &config.Config{
			MinIOBucket:         "media",
			MinIOPublicEndpoint: "cdn.example.com",
			MinIOPublicUseSSL:   true,
		},
	}
}

func TestStorageService_PublicURL(t *testing.T) {
	s := newTestStorage()

	assert.Equal(t,
		"https://cdn.example.com/media/providers/abc/1_portfolio.jpg",
		s.publicURL("providers/abc/1_portfolio.jpg"))

	// Segments with spaces are escaped, separators are not.
	assert.Equal(t,
		"https://cdn.example.com/media/providers/abc/sz%C3%A9p%20munka.jpg",
		s.publicURL("providers/abc/szép munka.jpg"))
}

func TestStorageService_ObjectPath(t *testing.T) {
	s := newTestStorage()

	t.Run("round trips through publicURL", func(t *testing.T) {
		for _, objectPath := range []string{
			"providers/abc/1_portfolio.jpg",
			"providers/abc/szép munka.jpg",
		} {
			got, ok := s.objectPath(s.publicURL(objectPath))
			assert.True(t, ok, objectPath)
			assert.Equal(t, objectPath, got)
		}
	})

	t.Run("foreign URLs are not bucket objects", func(t *testing.T) {
		for _, fileURL := range []string{
			"https://other.example.com/media/providers/x.jpg",
			"https://cdn.example.com/other-bucket/x.jpg",
			"https://cdn.example.com/media/",
			"://bad",
		} {
			_, ok := s.objectPath(fileURL)
			assert.False(t, ok, fileURL)
		}
	})
}

func TestExtensionFromURL(t *testing.T) {
	assert.Equal(t, "png", extensionFromURL("https://cdn.example.com/media/a.png", "jpg"))
	assert.Equal(t, "jpg", extensionFromURL("https://cdn.example.com/media/no-extension", "jpg"))
	assert.Equal(t, "mp4", extensionFromURL("https://cdn.example.com/clip?v=2", "mp4"))
	assert.Equal(t, "jpeg", extensionFromURL("https://cdn.example.com/a.jpeg?w=100", "jpg"))
}

package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"

	"szepseg-katalogus/internal/config"
)

// StorageService wraps the object store. Delete never returns an error: the
// purge cascade treats a failed delete as a counted, logged outcome, not a
// reason to stop.
type StorageService interface {
	Upload(ctx context.Context, objectPath string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, fileURL string) bool
	FetchBytes(ctx context.Context, fileURL string) (string, []byte, error)
}

type storageService struct {
	minioClient *minio.Client
	httpClient  *http.Client
	cfg         *config.Config
}

func NewStorageService(minioClient *minio.Client, cfg *config.Config) StorageService {
	return &storageService{
		minioClient: minioClient,
		httpClient:  http.DefaultClient,
		cfg:         cfg,
	}
}

func (s *storageService) Upload(ctx context.Context, objectPath string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, objectPath, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}
	return s.publicURL(objectPath), nil
}

func (s *storageService) Delete(ctx context.Context, fileURL string) bool {
	objectPath, ok := s.objectPath(fileURL)
	if !ok {
		log.Printf("storage: cannot delete %s: not a bucket URL", fileURL)
		return false
	}

	if err := s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		log.Printf("storage: failed to delete %s: %v", objectPath, err)
		return false
	}
	return true
}

func (s *storageService) FetchBytes(ctx context.Context, fileURL string) (string, []byte, error) {
	if objectPath, ok := s.objectPath(fileURL); ok {
		return s.fetchObject(ctx, objectPath)
	}
	return s.fetchRemote(ctx, fileURL)
}

func (s *storageService) fetchObject(ctx context.Context, objectPath string) (string, []byte, error) {
	object, err := s.minioClient.GetObject(ctx, s.cfg.MinIOBucket, objectPath, minio.GetObjectOptions{})
	if err != nil {
		return "", nil, err
	}
	defer object.Close()

	stat, err := object.Stat()
	if err != nil {
		return "", nil, err
	}

	data, err := io.ReadAll(object)
	if err != nil {
		return "", nil, err
	}

	contentType := stat.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return contentType, data, nil
}

// fetchRemote proxies media that lives outside our bucket, so the client
// never talks to the upstream store directly.
func (s *storageService) fetchRemote(ctx context.Context, fileURL string) (string, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("failed to fetch file: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return contentType, data, nil
}

func (s *storageService) publicURL(objectPath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	segments := strings.Split(objectPath, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, strings.Join(segments, "/"))
}

func (s *storageService) objectPath(fileURL string) (string, bool) {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return "", false
	}
	if parsed.Host != s.cfg.MinIOPublicEndpoint {
		return "", false
	}

	prefix := "/" + s.cfg.MinIOBucket + "/"
	escapedPath := parsed.EscapedPath()
	if !strings.HasPrefix(escapedPath, prefix) {
		return "", false
	}

	objectPath, err := url.PathUnescape(strings.TrimPrefix(escapedPath, prefix))
	if err != nil || objectPath == "" {
		return "", false
	}
	return objectPath, true
}

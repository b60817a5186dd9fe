package supabase

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	storage "github.com/supabase-community/storage-go"
	"nut-orders-backend/internal/models"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	baseURL := strings.TrimRight(supabaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("supabase url is required")
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func (s *StorageClient) Bucket() string {
	return s.bucket
}

// Upload stores data at path. Paths are never overwritten; the caller picks
// a unique path.
func (s *StorageClient) Upload(path string, data io.Reader, contentType string) (*models.StorageObject, error) {
	if err := ValidateObjectPath(path); err != nil {
		return nil, err
	}

	upsert := false
	_, err := s.client.UploadFile(s.bucket, path, data, storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: upload %s: %v", models.ErrStorageUnavailable, path, err)
	}

	return &models.StorageObject{Bucket: s.bucket, Path: path}, nil
}

// PublicURL resolves the unsigned public URL of path. The object is not
// checked for existence.
func (s *StorageClient) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, path)
}

// PathFromURL reverses PublicURL. It reports false for URLs that do not
// point into this bucket.
func (s *StorageClient) PathFromURL(publicURL string) (string, bool) {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", s.baseURL, s.bucket)
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	path := strings.TrimPrefix(publicURL, prefix)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if unescaped, err := url.PathUnescape(path); err == nil {
		path = unescaped
	}
	if ValidateObjectPath(path) != nil {
		return "", false
	}
	return path, true
}

func (s *StorageClient) Remove(path string) error {
	if err := ValidateObjectPath(path); err != nil {
		return err
	}
	removed, err := s.client.RemoveFile(s.bucket, []string{path})
	if err != nil {
		return fmt.Errorf("%w: remove %s: %v", models.ErrStorageUnavailable, path, err)
	}
	if len(removed) == 0 {
		return fmt.Errorf("%w: object %s", models.ErrNotFound, path)
	}
	return nil
}

// List returns the full paths of the objects directly under prefix.
func (s *StorageClient) List(prefix string) ([]string, error) {
	prefix = strings.TrimSuffix(prefix, "/")
	if err := ValidateObjectPath(prefix); err != nil {
		return nil, err
	}
	files, err := s.client.ListFiles(s.bucket, prefix, storage.FileSearchOptions{
		Limit: 1000,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", models.ErrStorageUnavailable, prefix, err)
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		if file.Name == "" {
			continue
		}
		paths = append(paths, prefix+"/"+file.Name)
	}
	return paths, nil
}

// ValidateObjectPath rejects empty, absolute and traversing object keys.
func ValidateObjectPath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", models.ErrInvalidPath)
	}
	if strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return fmt.Errorf("%w: %q has a leading or trailing slash", models.ErrInvalidPath, path)
	}
	for _, segment := range strings.Split(path, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return fmt.Errorf("%w: %q has an empty or relative segment", models.ErrInvalidPath, path)
		}
	}
	return nil
}

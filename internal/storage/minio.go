package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"rw-be-svc/internal/config"
)

// MinioStorage keeps photos in an S3 compatible bucket
type MinioStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinioStorage connects to the endpoint and makes sure the bucket exists
func NewMinioStorage(ctx context.Context, cfg config.UploadConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	baseURL := strings.TrimSuffix(cfg.MinioPublicURL, "/")
	if baseURL == "" {
		scheme := "http"
		if cfg.MinioUseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.MinioEndpoint, cfg.MinioBucket)
	}

	return &MinioStorage{
		client:  client,
		bucket:  cfg.MinioBucket,
		baseURL: baseURL,
	}, nil
}

// Save uploads the photo and returns its public URL
func (s *MinioStorage) Save(ctx context.Context, photo *Photo) (string, error) {
	key := ComplaintPrefix + "/" + photo.Name
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(photo.Data), int64(len(photo.Data)), minio.PutObjectOptions{
		ContentType: photo.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

// Delete removes the object behind url
func (s *MinioStorage) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFromURL(url)
	if !ok {
		return ErrForeignURL
	}
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// List returns every stored photo
func (s *MinioStorage) List(ctx context.Context) ([]StoredObject, error) {
	var objects []StoredObject
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    ComplaintPrefix + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		objects = append(objects, StoredObject{
			URL:     s.baseURL + "/" + obj.Key,
			ModTime: obj.LastModified,
		})
	}
	return objects, nil
}

func (s *MinioStorage) keyFromURL(url string) (string, bool) {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

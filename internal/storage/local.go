package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStorage keeps photos on disk under <root>/complaints and serves them
// from the /uploads static route.
type LocalStorage struct {
	dir       string
	urlPrefix string
}

// NewLocalStorage creates the photo directory if needed
func NewLocalStorage(root string) (*LocalStorage, error) {
	dir := filepath.Join(root, ComplaintPrefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		dir:       dir,
		urlPrefix: "/uploads/" + ComplaintPrefix + "/",
	}, nil
}

// Save writes the photo and returns its public URL
func (s *LocalStorage) Save(ctx context.Context, photo *Photo) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	target := filepath.Join(s.dir, path.Base(photo.Name))
	if err := os.WriteFile(target, photo.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	return s.urlPrefix + path.Base(photo.Name), nil
}

// Delete removes the photo behind url. Missing files are not an error.
func (s *LocalStorage) Delete(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, s.urlPrefix) {
		return ErrForeignURL
	}
	name := path.Base(strings.TrimPrefix(url, s.urlPrefix))
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// List returns every stored photo
func (s *LocalStorage) List(ctx context.Context) ([]StoredObject, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var objects []StoredObject
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		objects = append(objects, StoredObject{
			URL:     s.urlPrefix + entry.Name(),
			ModTime: info.ModTime(),
		})
	}
	return objects, nil
}

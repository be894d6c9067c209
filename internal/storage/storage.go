package storage

import (
	"context"
	"errors"
	"time"
)

// ComplaintPrefix groups complaint photos inside the storage backend
const ComplaintPrefix = "complaints"

// ErrForeignURL is returned when a URL does not belong to the backend
var ErrForeignURL = errors.New("url does not belong to this storage")

// StoredObject describes a stored photo
type StoredObject struct {
	URL     string
	ModTime time.Time
}

// PhotoStorage persists complaint photos and exposes them by URL
type PhotoStorage interface {
	Save(ctx context.Context, photo *Photo) (string, error)
	Delete(ctx context.Context, url string) error
	List(ctx context.Context) ([]StoredObject, error)
}

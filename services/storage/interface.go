package storage

import (
	"context"
	"io"

	"wayfarer/models"
)

// StorageService abstracts the image storage provider. Uploads deliver a
// {url, publicId} pair used verbatim as image field values.
type StorageService interface {
	// UploadImage stores an image into the given folder and returns its reference.
	UploadImage(ctx context.Context, file io.Reader, folder string) (*models.ImageRef, error)
	// DeleteImage removes an image by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}

package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"wayfarer/models"
)

// StorageServiceImpl is the Cloudinary-backed StorageService.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &StorageServiceImpl{cld: cld}
}

// UploadImage uploads an image to Cloudinary into the specified folder and
// returns the delivery URL and permanent identifier.
func (s *StorageServiceImpl) UploadImage(ctx context.Context, file io.Reader, folder string) (*models.ImageRef, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("StorageServiceImpl: failed to upload image: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("StorageServiceImpl: no public ID returned")
	}
	return &models.ImageRef{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// DeleteImage deletes an image from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete image: %w", err)
	}
	return nil
}

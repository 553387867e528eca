package handlers

import (
	"encoding/json"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfarer/models"
	"wayfarer/services/storage"
	"wayfarer/utils"
)

// Upload ceilings per request.
const (
	maxUploadImages = 5
	maxImageBytes   = 10 << 20
)

// isMultipart reports whether the request carries a multipart form.
func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// bindBody decodes the request payload into out. Multipart requests carry
// their JSON document in the "data" form field alongside the image files;
// plain requests are straight JSON bodies.
func bindBody(c *gin.Context, out any) error {
	if !isMultipart(c) {
		if err := c.ShouldBindJSON(out); err != nil {
			return utils.NewBadRequest("invalid request body: %v", err)
		}
		return nil
	}

	data := c.PostForm("data")
	if data == "" {
		return utils.NewBadRequest("multipart requests must carry a JSON 'data' field")
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return utils.NewBadRequest("invalid 'data' field: %v", err)
	}
	return nil
}

// uploadFormImage uploads the single file under the given form field, if
// present. Returns nil without error when the field is absent.
func uploadFormImage(c *gin.Context, store storage.StorageService, field, folder string) (*models.ImageRef, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return uploadOne(c, store, fileHeader, folder)
}

// uploadFormImages uploads every file under the given form field.
func uploadFormImages(c *gin.Context, store storage.StorageService, field, folder string) ([]models.ImageRef, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > maxUploadImages {
		return nil, utils.NewBadRequest("at most %d images per request", maxUploadImages)
	}

	refs := make([]models.ImageRef, 0, len(files))
	for _, fileHeader := range files {
		ref, err := uploadOne(c, store, fileHeader, folder)
		if err != nil {
			return nil, err
		}
		refs = append(refs, *ref)
	}
	return refs, nil
}

func uploadOne(c *gin.Context, store storage.StorageService, fileHeader *multipart.FileHeader, folder string) (*models.ImageRef, error) {
	if fileHeader.Size > maxImageBytes {
		return nil, utils.NewBadRequest("image %s exceeds the %dMB limit", fileHeader.Filename, maxImageBytes>>20)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, utils.NewBadRequest("failed to read image %s", fileHeader.Filename)
	}
	defer file.Close()
	return store.UploadImage(c.Request.Context(), file, folder)
}

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"portfolio-backend/internal/domains/upload"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/logger"
)

// Both the extension and the sniffed content type must be on the allowlist.
// The client-sent Content-Type is never trusted.
var (
	allowedExtensions = map[string]struct{}{
		".jpeg": {}, ".jpg": {}, ".png": {}, ".webp": {}, ".pdf": {},
	}
	allowedMimeTypes = map[string]struct{}{
		"image/jpeg": {}, "image/png": {}, "image/webp": {}, "application/pdf": {},
	}
)

type uploadService struct {
	blobs   storage.BlobStorage
	repo    upload.Repository
	images  *storage.ImageProcessor
	maxSize int64
}

// NewUploadService wires the blob backend and metadata store.
func NewUploadService(blobs storage.BlobStorage, repo upload.Repository, images *storage.ImageProcessor, maxSize int64) upload.Service {
	return &uploadService{
		blobs:   blobs,
		repo:    repo,
		images:  images,
		maxSize: maxSize,
	}
}

func (s *uploadService) Store(ctx context.Context, data []byte, originalName string) (*upload.Asset, error) {
	if len(data) == 0 {
		return nil, upload.ErrNoFile
	}

	// 1. VALIDATE, before anything touches durable storage
	if int64(len(data)) > s.maxSize {
		return nil, upload.ErrPayloadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, upload.ErrUnsupportedType
	}

	mime := mimetype.Detect(data).String()
	if _, ok := allowedMimeTypes[baseMime(mime)]; !ok {
		return nil, upload.ErrUnsupportedType
	}

	// 2. GENERATE KEY
	// Timestamp + random suffix, never derived from the original filename,
	// so concurrent uploads of the same name get distinct keys.
	key := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	// 3. PERSIST BLOB
	url, err := s.blobs.Save(ctx, key, data, mime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", upload.ErrStorageFailure, err)
	}

	asset := &upload.Asset{
		ID:           uuid.New(),
		Key:          key,
		OriginalName: originalName,
		MimeType:     baseMime(mime),
		Size:         int64(len(data)),
		URL:          url,
	}

	// 4. THUMBNAIL VARIANT (images only, best effort)
	if s.images != nil && strings.HasPrefix(asset.MimeType, "image/") {
		if thumb, err := s.images.Thumbnail(data); err == nil {
			thumbKey := strings.TrimSuffix(key, ext) + "_thumb.jpg"
			if thumbURL, err := s.blobs.Save(ctx, thumbKey, thumb, "image/jpeg"); err == nil {
				asset.ThumbnailURL = thumbURL
			}
		} else {
			logger.Warn("Thumbnail generation skipped", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}

	// 5. RECORD METADATA
	if err := s.repo.Create(ctx, asset); err != nil {
		// The blob is already durable; the orphan is acceptable, the
		// failed request is not.
		return nil, fmt.Errorf("%w: %v", upload.ErrStorageFailure, err)
	}

	return asset, nil
}

func baseMime(m string) string {
	// mimetype can return parameters, e.g. "text/plain; charset=utf-8"
	if i := strings.IndexByte(m, ';'); i >= 0 {
		return strings.TrimSpace(m[:i])
	}
	return m
}

package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// ImageProcessor produces display variants of uploaded images.
type ImageProcessor struct {
	ThumbnailSize int // bounding box in pixels
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{ThumbnailSize: 300}
}

// Thumbnail decodes the image and re-encodes a fitted JPEG variant, quality 90.
// Returns an error for data that is not a decodable image.
func (p *ImageProcessor) Thumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fit(img, p.ThumbnailSize, p.ThumbnailSize, imaging.Lanczos)

	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("cannot encode thumbnail: %w", err)
	}

	return b.Bytes(), nil
}

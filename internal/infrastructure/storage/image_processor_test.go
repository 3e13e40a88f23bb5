package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestThumbnail(t *testing.T) {
	p := NewImageProcessor()

	thumb, err := p.Thumbnail(testPNG(t, 1200, 800))
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.LessOrEqual(t, cfg.Width, p.ThumbnailSize)
	assert.LessOrEqual(t, cfg.Height, p.ThumbnailSize)
}

func TestThumbnail_NotAnImage(t *testing.T) {
	p := NewImageProcessor()

	_, err := p.Thumbnail([]byte("%PDF-1.4 definitely not pixels"))
	assert.Error(t, err)
}

func TestThumbnail_SmallImageNotUpscaled(t *testing.T) {
	p := NewImageProcessor()

	thumb, err := p.Thumbnail(testPNG(t, 100, 60))
	require.NoError(t, err)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 60, cfg.Height)
}

package storage

import "context"

// BlobStorage is the durable store for uploaded assets.
// Save persists the blob under key and returns the public URL it is served at.
// Keys are generated by the caller and never collide across concurrent uploads.
type BlobStorage interface {
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

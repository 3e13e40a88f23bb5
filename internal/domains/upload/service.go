package upload

import "context"

// Service validates and stores a single uploaded file.
type Service interface {
	// Store validates size and type, persists the blob under a generated
	// collision-free key and records the asset metadata.
	Store(ctx context.Context, data []byte, originalName string) (*Asset, error)
}

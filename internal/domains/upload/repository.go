package upload

import "context"

// Repository persists asset metadata, one row per stored blob.
type Repository interface {
	Create(ctx context.Context, asset *Asset) error
}

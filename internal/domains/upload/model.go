package upload

import (
	"time"

	"github.com/google/uuid"
)

// Asset is the metadata record kept for every stored blob.
// Blobs are immutable: created on upload, never updated, never deleted here.
type Asset struct {
	ID           uuid.UUID `json:"id"`
	Key          string    `json:"key"`           // generated storage key, e.g. 1735689600000-<uuid>.png
	OriginalName string    `json:"original_name"` // client filename, kept for reference only
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

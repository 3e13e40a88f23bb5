package portfolio

import "context"

// Service exposes the content operations the API surface is built on.
type Service interface {
	// Get returns the current document, seeding the store from the fixed
	// default on first access (read-or-create, never an error path).
	Get(ctx context.Context) (*Document, error)

	// Replace validates and persists a full replacement document, assigning
	// ids to new projects, and returns the stored value.
	Replace(ctx context.Context, doc *Document) (*Document, error)
}

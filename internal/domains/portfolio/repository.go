package portfolio

import "context"

// Repository is the document store for the singleton portfolio row.
type Repository interface {
	// Get returns the current document, or ErrNotFound if the row is absent.
	Get(ctx context.Context) (*Document, error)

	// Seed inserts the document only if the row is absent, then returns the
	// stored value. Concurrent seeds are safe; exactly one wins.
	Seed(ctx context.Context, doc *Document) (*Document, error)

	// Replace persists doc as the new current document, creating the row if
	// absent (whole-document upsert), and returns the stored value.
	Replace(ctx context.Context, doc *Document) (*Document, error)
}

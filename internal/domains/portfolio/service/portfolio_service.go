package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/internal/domains/portfolio"
)

type portfolioService struct {
	repo portfolio.Repository
}

// NewPortfolioService wires the document store behind the content operations.
func NewPortfolioService(repo portfolio.Repository) portfolio.Service {
	return &portfolioService{repo: repo}
}

// Get implements read-or-create: an empty store is seeded with the fixed
// default document, so two consecutive reads always return identical data.
func (s *portfolioService) Get(ctx context.Context) (*portfolio.Document, error) {
	doc, err := s.repo.Get(ctx)
	if err == nil {
		return doc, nil
	}

	if !errors.Is(err, portfolio.ErrNotFound) {
		return nil, err
	}

	doc, err = s.repo.Seed(ctx, portfolio.DefaultDocument())
	if err != nil {
		return nil, fmt.Errorf("failed to seed portfolio: %w", err)
	}

	return doc, nil
}

// Replace validates the incoming document, assigns ids to new projects and
// persists the whole document. Full replace, not a merge: the client sends
// complete state, a shallow merge would silently drop nested array edits.
func (s *portfolioService) Replace(ctx context.Context, doc *portfolio.Document) (*portfolio.Document, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	if err := assignProjectIDs(doc); err != nil {
		return nil, err
	}

	return s.repo.Replace(ctx, doc)
}

// assignProjectIDs enforces id uniqueness and hands out max+1 to projects
// arriving without an id (id <= 0). The server owns assignment; a client-side
// max+1 races under concurrent edits.
func assignProjectIDs(doc *portfolio.Document) error {
	seen := make(map[int]struct{}, len(doc.Projects))
	maxID := 0

	for _, p := range doc.Projects {
		if p.ID <= 0 {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: %d", portfolio.ErrDuplicateProjectID, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	for i := range doc.Projects {
		if doc.Projects[i].ID <= 0 {
			maxID++
			doc.Projects[i].ID = maxID
		}
	}

	return nil
}

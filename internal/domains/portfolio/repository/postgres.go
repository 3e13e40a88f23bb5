package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/portfolio"
	"portfolio-backend/pkg/cache"
)

// postgresRepository implements portfolio.Repository on a single JSONB row.
// Reads go through the Redis cache when one is wired; writes invalidate it.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache // may be nil, reads then hit the database directly
}

const (
	documentCacheKey = "portfolio:document"
	cacheTTL         = 15 * time.Minute
)

// NewPostgresRepository creates the repository and ensures the schema exists.
func NewPostgresRepository(ctx context.Context, pool *pgxpool.Pool, cache cache.Cache) (portfolio.Repository, error) {
	r := &postgresRepository{pool: pool, cache: cache}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// ensureSchema bootstraps the singleton table. The CHECK pins the row count to one.
func (r *postgresRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS portfolio (
            id         smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
            data       jsonb NOT NULL,
            created_at timestamptz NOT NULL DEFAULT now(),
            updated_at timestamptz NOT NULL DEFAULT now()
        )
    `)
	if err != nil {
		return fmt.Errorf("failed to create portfolio table: %w", err)
	}
	return nil
}

func (r *postgresRepository) Get(ctx context.Context) (*portfolio.Document, error) {
	// Try cache first
	if r.cache != nil {
		var doc portfolio.Document
		if found, err := r.cache.Get(ctx, documentCacheKey, &doc); err == nil && found {
			return &doc, nil
		}
	}

	doc, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		// Cache failures must not fail the read
		_ = r.cache.Set(ctx, documentCacheKey, doc, cacheTTL)
	}

	return doc, nil
}

func (r *postgresRepository) fetch(ctx context.Context) (*portfolio.Document, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM portfolio WHERE id = 1`).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, portfolio.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read portfolio: %w", err)
	}

	var doc portfolio.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio document: %w", err)
	}

	return &doc, nil
}

func (r *postgresRepository) Seed(ctx context.Context, doc *portfolio.Document) (*portfolio.Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode seed document: %w", err)
	}

	// Insert only if absent; under concurrent first reads exactly one insert
	// wins and everyone reads the same row back.
	_, err = r.pool.Exec(ctx, `
        INSERT INTO portfolio (id, data) VALUES (1, $1)
        ON CONFLICT (id) DO NOTHING
    `, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to seed portfolio: %w", err)
	}

	return r.fetch(ctx)
}

func (r *postgresRepository) Replace(ctx context.Context, doc *portfolio.Document) (*portfolio.Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	// Whole-document upsert: the JSONB value is swapped in one statement, so a
	// failed write leaves the prior document untouched.
	var stored []byte
	err = r.pool.QueryRow(ctx, `
        INSERT INTO portfolio (id, data, updated_at) VALUES (1, $1, now())
        ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
        RETURNING data
    `, raw).Scan(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to replace portfolio: %w", err)
	}

	var result portfolio.Document
	if err := json.Unmarshal(stored, &result); err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Delete(ctx, documentCacheKey)
	}

	return &result, nil
}

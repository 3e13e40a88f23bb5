package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/upload"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the repository and ensures the schema exists.
func NewPostgresRepository(ctx context.Context, pool *pgxpool.Pool) (upload.Repository, error) {
	r := &postgresRepository{pool: pool}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *postgresRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS uploads (
            id            uuid PRIMARY KEY,
            key           text NOT NULL UNIQUE,
            original_name text NOT NULL,
            mime_type     text NOT NULL,
            size          bigint NOT NULL,
            url           text NOT NULL,
            thumbnail_url text,
            created_at    timestamptz NOT NULL DEFAULT now()
        )
    `)
	if err != nil {
		return fmt.Errorf("failed to create uploads table: %w", err)
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, a *upload.Asset) error {
	var thumb *string
	if a.ThumbnailURL != "" {
		thumb = &a.ThumbnailURL
	}

	err := r.pool.QueryRow(ctx, `
        INSERT INTO uploads (id, key, original_name, mime_type, size, url, thumbnail_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at
    `, a.ID, a.Key, a.OriginalName, a.MimeType, a.Size, a.URL, thumb).Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record upload: %w", err)
	}

	return nil
}

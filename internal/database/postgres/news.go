package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghostcity-rp/companion/internal/domain"
)

const (
	listNewsSQL = `SELECT id, title, content, author_id, created_at
FROM web_news ORDER BY created_at DESC`

	createNewsSQL = `INSERT INTO web_news (title, content, author_id, created_at)
VALUES ($1, $2, $3, $4) RETURNING id`

	deleteNewsSQL = "DELETE FROM web_news WHERE id = $1"
)

// NewsRepository persists admin-managed site news in the web_news table.
type NewsRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewNewsRepository creates a new news repository.
func NewNewsRepository(db *pgxpool.Pool, timeout time.Duration) *NewsRepository {
	return &NewsRepository{db: db, timeout: timeout}
}

func (r *NewsRepository) ListNews(ctx context.Context) ([]domain.NewsEntry, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, listNewsSQL)
	if err != nil {
		return nil, storeErr("failed to list news", err)
	}
	defer rows.Close()

	var entries []domain.NewsEntry
	for rows.Next() {
		var entry domain.NewsEntry
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Content, &entry.AuthorID, &entry.CreatedAt); err != nil {
			return nil, storeErr("failed to scan news row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to read news rows", err)
	}
	return entries, nil
}

func (r *NewsRepository) CreateNews(ctx context.Context, entry *domain.NewsEntry) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	err := r.db.QueryRow(ctx, createNewsSQL, entry.Title, entry.Content, entry.AuthorID, entry.CreatedAt).
		Scan(&entry.ID)
	if err != nil {
		return storeErr("failed to create news", err)
	}
	return nil
}

func (r *NewsRepository) DeleteNews(ctx context.Context, id int) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, deleteNewsSQL, id)
	if err != nil {
		return storeErr("failed to delete news", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrNewsNotFound, id)
	}
	return nil
}

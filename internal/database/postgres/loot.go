package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghostcity-rp/companion/internal/domain"
)

const (
	lootColumns   = "id, name, type, price, quality"
	listLootsSQL  = "SELECT " + lootColumns + " FROM server_loots ORDER BY id LIMIT $1"
	getLootSQL    = "SELECT " + lootColumns + " FROM server_loots WHERE id = $1"
	defaultLimit  = 100
	maxLootsLimit = 1000
)

// LootRepository is the read-only view over the server_loots catalog.
type LootRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewLootRepository creates a new loot repository.
func NewLootRepository(db *pgxpool.Pool, timeout time.Duration) *LootRepository {
	return &LootRepository{db: db, timeout: timeout}
}

func (r *LootRepository) ListLoots(ctx context.Context, limit int) ([]domain.Item, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLootsLimit {
		limit = maxLootsLimit
	}

	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, listLootsSQL, limit)
	if err != nil {
		return nil, storeErr("failed to list loots", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Type, &item.Price, &item.Quality); err != nil {
			return nil, storeErr("failed to scan loot row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to read loot rows", err)
	}
	return items, nil
}

func (r *LootRepository) GetLootByID(ctx context.Context, id int) (*domain.Item, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	var item domain.Item
	err := r.db.QueryRow(ctx, getLootSQL, id).
		Scan(&item.ID, &item.Name, &item.Type, &item.Price, &item.Quality)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, storeErr("failed to get loot", err)
	}
	return &item, nil
}

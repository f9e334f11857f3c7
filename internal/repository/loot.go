package repository

import (
	"context"

	"github.com/ghostcity-rp/companion/internal/domain"
)

// Loot is the read-only view over the server_loots item catalog.
type Loot interface {
	// ListLoots returns up to limit catalog rows in insertion order.
	ListLoots(ctx context.Context, limit int) ([]domain.Item, error)
	// GetLootByID fails with domain.ErrItemNotFound for unknown ids.
	GetLootByID(ctx context.Context, id int) (*domain.Item, error)
}

// Cases reads the case catalog. Implementations must not cache across
// requests: admin edits take effect on the next request.
type Cases interface {
	ListCases(ctx context.Context) ([]domain.CaseConfig, error)
	GetCase(ctx context.Context, id int) (*domain.CaseConfig, error)
}

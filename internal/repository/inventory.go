package repository

import (
	"context"

	"github.com/ghostcity-rp/companion/internal/domain"
)

// Players resolves player profiles for authorization and online checks.
type Players interface {
	// GetPlayer fails with domain.ErrUserNotFound for unknown players.
	GetPlayer(ctx context.Context, userID int) (*domain.Player, error)
}

// Inventories is the persistence boundary of the inventory service.
type Inventories interface {
	Players

	// GetInventory returns nil (no error) when the player has no
	// inventory row.
	GetInventory(ctx context.Context, userID int) (*domain.Inventory, error)
	GetLootByID(ctx context.Context, id int) (*domain.Item, error)
	ListLoots(ctx context.Context, limit int) ([]domain.Item, error)
	BeginTx(ctx context.Context) (InventoryTx, error)
}

// InventoryTx spans the slot clear and the money credit of one resale.
type InventoryTx interface {
	Tx

	GetInventoryForUpdate(ctx context.Context, userID int) (inv *domain.Inventory, found bool, err error)
	ClearSlot(ctx context.Context, userID, slot int, emptyValue string) error
	Credit(ctx context.Context, userID int, method domain.PaymentMethod, amount int) error
}

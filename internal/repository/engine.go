package repository

import (
	"context"

	"github.com/ghostcity-rp/companion/internal/domain"
)

// Engine is the persistence boundary of the case engine.
type Engine interface {
	// GetBalance fails with domain.ErrUserNotFound for unknown players.
	GetBalance(ctx context.Context, userID int) (*domain.PlayerBalance, error)
	ListLoots(ctx context.Context, limit int) ([]domain.Item, error)
	BeginTx(ctx context.Context) (EngineTx, error)
}

// EngineTx spans the debit and the inventory write of one case open so
// that both commit or neither does.
type EngineTx interface {
	Tx

	// TryDebit is a single conditional update: the subtraction only
	// happens when the balance covers the amount. Returns
	// domain.ErrInsufficientFunds otherwise.
	TryDebit(ctx context.Context, userID int, method domain.PaymentMethod, amount int) error

	// GetInventoryForUpdate locks the player's inventory row. found is
	// false when the player has no inventory row yet.
	GetInventoryForUpdate(ctx context.Context, userID int) (inv *domain.Inventory, found bool, err error)

	// CreateInventory inserts an all-empty inventory row.
	CreateInventory(ctx context.Context, userID int) error

	// WriteSlot persists an encoded slot value. slot is 1-based.
	WriteSlot(ctx context.Context, userID, slot int, value string) error
}

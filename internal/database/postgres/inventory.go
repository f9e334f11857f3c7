package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghostcity-rp/companion/internal/config"
	"github.com/ghostcity-rp/companion/internal/database"
	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/repository"
)

// InventoryRepository backs the inventory listing and resale flows.
type InventoryRepository struct {
	db      *pgxpool.Pool
	players *PlayerRepository
	loot    *LootRepository
	users   config.FieldMapping
	timeout time.Duration
}

// NewInventoryRepository creates a new inventory repository.
func NewInventoryRepository(db *pgxpool.Pool, players *PlayerRepository, loot *LootRepository, users config.FieldMapping, timeout time.Duration) *InventoryRepository {
	return &InventoryRepository{
		db:      db,
		players: players,
		loot:    loot,
		users:   users,
		timeout: timeout,
	}
}

func (r *InventoryRepository) GetPlayer(ctx context.Context, userID int) (*domain.Player, error) {
	return r.players.GetPlayer(ctx, userID)
}

func (r *InventoryRepository) GetLootByID(ctx context.Context, id int) (*domain.Item, error) {
	return r.loot.GetLootByID(ctx, id)
}

func (r *InventoryRepository) ListLoots(ctx context.Context, limit int) ([]domain.Item, error) {
	return r.loot.ListLoots(ctx, limit)
}

// GetInventory reads the inventory without locking. Returns nil when the
// player has no inventory row yet.
func (r *InventoryRepository) GetInventory(ctx context.Context, userID int) (*domain.Inventory, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE u_id = $1", inventoryColumns(), inventoryTable)
	inv, found, err := scanInventory(r.db.QueryRow(ctx, query, userID), userID)
	if err != nil {
		return nil, storeErr("failed to get inventory", err)
	}
	if !found {
		return nil, nil
	}
	return inv, nil
}

func (r *InventoryRepository) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	return &inventoryTx{tx: tx, users: r.users, timeout: r.timeout}, nil
}

// inventoryTx bounds every statement with the repository timeout, like
// engineTx: the FOR UPDATE read can wait behind a concurrent case open
// holding the same inventory row.
type inventoryTx struct {
	tx      pgx.Tx
	users   config.FieldMapping
	timeout time.Duration
}

func (t *inventoryTx) GetInventoryForUpdate(ctx context.Context, userID int) (*domain.Inventory, bool, error) {
	ctx, cancel := opContext(ctx, t.timeout)
	defer cancel()

	query := fmt.Sprintf("SELECT %s FROM %s WHERE u_id = $1 FOR UPDATE",
		inventoryColumns(), inventoryTable)

	inv, found, err := scanInventory(t.tx.QueryRow(ctx, query, userID), userID)
	if err != nil {
		return nil, false, storeErr("failed to get inventory for update", err)
	}
	return inv, found, nil
}

func (t *inventoryTx) ClearSlot(ctx context.Context, userID, slot int, emptyValue string) error {
	column, err := slotColumn(slot)
	if err != nil {
		return err
	}

	ctx, cancel := opContext(ctx, t.timeout)
	defer cancel()

	query := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE u_id = $2", inventoryTable, column)
	if _, err := t.tx.Exec(ctx, query, emptyValue, userID); err != nil {
		return storeErr("failed to clear slot", err)
	}
	return nil
}

func (t *inventoryTx) Credit(ctx context.Context, userID int, method domain.PaymentMethod, amount int) error {
	ctx, cancel := opContext(ctx, t.timeout)
	defer cancel()

	column := t.users.DonateColumn
	if method == domain.PayMoney {
		column = t.users.MoneyColumn
	}

	query := fmt.Sprintf("UPDATE %s SET %s = %s + $1 WHERE %s = $2",
		t.users.UsersTable, column, column, t.users.IDColumn)

	tag, err := t.tx.Exec(ctx, query, amount, userID)
	if err != nil {
		return storeErr("failed to credit balance", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrUserNotFound, userID)
	}
	return nil
}

func (t *inventoryTx) Commit(ctx context.Context) error {
	ctx, cancel := opContext(ctx, t.timeout)
	defer cancel()

	if err := t.tx.Commit(ctx); err != nil {
		return storeErr("commit", err)
	}
	return nil
}

func (t *inventoryTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

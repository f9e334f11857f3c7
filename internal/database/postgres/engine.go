package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghostcity-rp/companion/internal/config"
	"github.com/ghostcity-rp/companion/internal/database"
	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/repository"
)

// EngineRepository is the case engine's persistence backend: balance
// reads, the loot catalog, and the debit+reward transaction.
type EngineRepository struct {
	db      *pgxpool.Pool
	loot    *LootRepository
	users   config.FieldMapping
	timeout time.Duration

	getBalanceSQL string
}

// NewEngineRepository creates a new engine repository.
func NewEngineRepository(db *pgxpool.Pool, loot *LootRepository, users config.FieldMapping, timeout time.Duration) *EngineRepository {
	return &EngineRepository{
		db:      db,
		loot:    loot,
		users:   users,
		timeout: timeout,
		getBalanceSQL: fmt.Sprintf("SELECT %s, %s, %s, %s FROM %s WHERE %s = $1",
			users.IDColumn, users.NameColumn, users.MoneyColumn, users.DonateColumn,
			users.UsersTable, users.IDColumn),
	}
}

func (r *EngineRepository) GetBalance(ctx context.Context, userID int) (*domain.PlayerBalance, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	var balance domain.PlayerBalance
	err := r.db.QueryRow(ctx, r.getBalanceSQL, userID).
		Scan(&balance.UserID, &balance.Username, &balance.Money, &balance.Donate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, userID)
		}
		return nil, storeErr("failed to get balance", err)
	}
	return &balance, nil
}

func (r *EngineRepository) ListLoots(ctx context.Context, limit int) ([]domain.Item, error) {
	return r.loot.ListLoots(ctx, limit)
}

func (r *EngineRepository) BeginTx(ctx context.Context) (repository.EngineTx, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	return &engineTx{tx: tx, users: r.users, timeout: r.timeout}, nil
}

// engineTx bounds every statement with the repository timeout. The
// FOR UPDATE read can wait behind a concurrent open's row lock, so an
// unbounded call would hang the request for as long as the client is
// willing to wait.
type engineTx struct {
	tx      pgx.Tx
	users   config.FieldMapping
	timeout time.Duration
}

// TryDebit subtracts the amount in a single conditional update. The
// balance check and the subtraction are one statement, so two
// concurrent opens can never both spend the same funds.
func (t *engineTx) TryDebit(ctx context.Context, userID int, method domain.PaymentMethod, amount int) error {
	ctx, cancel := opContext(ctx, t.timeout)
	defer cancel()

	column := t.users.DonateColumn
	if method == domain.PayMoney {
		column = t.users.MoneyColumn
	}

	query := fmt.Sprintf("UPDATE %s SET %s = %s - $1 WHERE %s = $2 AND %s >= $1",
		t.users.UsersTable, column, column, t.users.IDColumn, column)

	tag, err := t.tx.Exec(ctx, query, amount, userID)
	if err != nil {
		return storeErr("failed to debit balance", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: need %d %s", domain.ErrInsufficientFunds, amount, method)
	}
	return nil
}

func (t *engineTx) GetInventoryForUpdate(ctx context.Context, userID int) (*domain.Inventory, bool, error) {
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

func (t *engineTx) CreateInventory(ctx context.Context, userID int) error {
	ctx, cancel := opContext(ctx, t.timeout)
	defer cancel()

	query := fmt.Sprintf("INSERT INTO %s (u_id) VALUES ($1)", inventoryTable)
	if _, err := t.tx.Exec(ctx, query, userID); err != nil {
		return storeErr("failed to create inventory", err)
	}
	return nil
}

func (t *engineTx) WriteSlot(ctx context.Context, userID, slot int, value string) error {
	column, err := slotColumn(slot)
	if err != nil {
		return err
	}

	ctx, cancel := opContext(ctx, t.timeout)
	defer cancel()

	query := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE u_id = $2", inventoryTable, column)
	if _, err := t.tx.Exec(ctx, query, value, userID); err != nil {
		return storeErr("failed to write slot", err)
	}
	return nil
}

func (t *engineTx) Commit(ctx context.Context) error {
	ctx, cancel := opContext(ctx, t.timeout)
	defer cancel()

	if err := t.tx.Commit(ctx); err != nil {
		return storeErr("commit", err)
	}
	return nil
}

func (t *engineTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

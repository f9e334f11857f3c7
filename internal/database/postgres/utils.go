package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ghostcity-rp/companion/internal/domain"
)

// inventoryTable is the game server's fixed-width inventory table. One
// row per player, one text column per slot.
const inventoryTable = "users_inventory"

// opContext bounds one store call. Slow queries against the shared game
// database must fail fast rather than pile up behind the game server's
// own load.
func opContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// storeErr wraps a store failure, surfacing timeouts as the retryable
// domain.ErrStoreUnavailable.
func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, domain.ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// slotColumn renders the column name for a 1-based slot index. Column
// names cannot be bind parameters, so the index is validated before it
// reaches the query text.
func slotColumn(slot int) (string, error) {
	if slot < 1 || slot > domain.InventorySize {
		return "", fmt.Errorf("%w: slot %d out of range", domain.ErrInvalidArgument, slot)
	}
	return fmt.Sprintf("u_i_slot_%d", slot), nil
}

// inventoryColumns is the comma-joined list u_i_slot_1..u_i_slot_50 in
// slot order.
func inventoryColumns() string {
	cols := make([]string, domain.InventorySize)
	for i := range cols {
		cols[i] = fmt.Sprintf("u_i_slot_%d", i+1)
	}
	return strings.Join(cols, ", ")
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanInventory reads all 50 slot columns of one inventory row. NULL
// columns come back as the empty string, which the slot codec already
// treats as an empty sentinel.
func scanInventory(row rowScanner, userID int) (*domain.Inventory, bool, error) {
	raw := make([]pgtype.Text, domain.InventorySize)
	dest := make([]any, domain.InventorySize)
	for i := range raw {
		dest[i] = &raw[i]
	}

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	inv := &domain.Inventory{OwnerID: userID}
	for i, t := range raw {
		if t.Valid {
			inv.Slots[i] = t.String
		}
	}
	return inv, true, nil
}

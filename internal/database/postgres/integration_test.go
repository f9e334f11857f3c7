package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ghostcity-rp/companion/internal/config"
	"github.com/ghostcity-rp/companion/internal/database"
	"github.com/ghostcity-rp/companion/internal/database/schema"
	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/repository"
)

const testStoreTimeout = 5 * time.Second

func testFieldMapping() config.FieldMapping {
	return config.FieldMapping{
		UsersTable:       "users",
		IDColumn:         "u_id",
		NameColumn:       "u_name",
		PasswordColumn:   "u_password",
		MoneyColumn:      "u_money",
		DonateColumn:     "u_donate",
		LevelColumn:      "u_level",
		AdminLevelColumn: "u_admin",
		OnlineColumn:     "u_online",
		LastActionColumn: "u_last_action",
	}
}

// startTestDatabase spins up a throwaway Postgres container and applies
// the schema. Skips when Docker is unavailable.
func startTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test, could not start postgres container: %v", err)
	}
	if pgContainer == nil {
		return nil
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(connStr, database.PoolSettings{MaxConns: 10})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, schema.SchemaSQL); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	return pool
}

func seedUser(t *testing.T, pool *pgxpool.Pool, name string, money, donate int) int {
	t.Helper()
	var id int
	err := pool.QueryRow(context.Background(),
		"INSERT INTO users (u_name, u_password, u_money, u_donate) VALUES ($1, 'pw', $2, $3) RETURNING u_id",
		name, money, donate).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return id
}

func TestEngineRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pool := startTestDatabase(t)
	ctx := context.Background()

	users := testFieldMapping()
	loot := NewLootRepository(pool, testStoreTimeout)
	repo := NewEngineRepository(pool, loot, users, testStoreTimeout)

	t.Run("GetBalanceUnknownUser", func(t *testing.T) {
		_, err := repo.GetBalance(ctx, 999999)
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("TryDebitConcurrent", func(t *testing.T) {
		// Funds for exactly one open: ten concurrent debits must
		// succeed exactly once and the balance must end at zero.
		userID := seedUser(t, pool, "racer", 0, 50)

		const workers = 10
		var wg sync.WaitGroup
		results := make(chan error, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tx, err := repo.BeginTx(ctx)
				if err != nil {
					results <- err
					return
				}
				defer repository.SafeRollback(ctx, tx)

				if err := tx.TryDebit(ctx, userID, domain.PayDonate, 50); err != nil {
					results <- err
					return
				}
				results <- tx.Commit(ctx)
			}()
		}
		wg.Wait()
		close(results)

		succeeded := 0
		for err := range results {
			if err == nil {
				succeeded++
			} else if !errors.Is(err, domain.ErrInsufficientFunds) {
				t.Fatalf("unexpected debit error: %v", err)
			}
		}
		if succeeded != 1 {
			t.Fatalf("expected exactly 1 successful debit, got %d", succeeded)
		}

		balance, err := repo.GetBalance(ctx, userID)
		if err != nil {
			t.Fatalf("GetBalance failed: %v", err)
		}
		if balance.Donate != 0 {
			t.Fatalf("expected donate balance 0, got %d", balance.Donate)
		}
	})

	t.Run("SlotWriteRoundTrip", func(t *testing.T) {
		userID := seedUser(t, pool, "collector", 1000, 0)

		tx, err := repo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		defer repository.SafeRollback(ctx, tx)

		if _, found, err := tx.GetInventoryForUpdate(ctx, userID); err != nil || found {
			t.Fatalf("expected no inventory, found=%v err=%v", found, err)
		}
		if err := tx.CreateInventory(ctx, userID); err != nil {
			t.Fatalf("CreateInventory failed: %v", err)
		}

		record := domain.InventorySlot{LootID: 17, Quality: 85, FromCase: true}
		if err := tx.WriteSlot(ctx, userID, 1, record.Encode(false)); err != nil {
			t.Fatalf("WriteSlot failed: %v", err)
		}
		if err := tx.Commit(ctx); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}

		inventories := NewInventoryRepository(pool, NewPlayerRepository(pool, users, testStoreTimeout), loot, users, testStoreTimeout)
		inv, err := inventories.GetInventory(ctx, userID)
		if err != nil {
			t.Fatalf("GetInventory failed: %v", err)
		}
		if inv == nil {
			t.Fatal("expected inventory row")
		}

		got, ok := domain.DecodeSlot(inv.Slots[0])
		if !ok {
			t.Fatalf("slot 1 did not decode: %q", inv.Slots[0])
		}
		if got != record {
			t.Fatalf("slot round-trip mismatch: got %+v want %+v", got, record)
		}
		if free := inv.FirstFreeSlot(); free != 2 {
			t.Fatalf("expected first free slot 2, got %d", free)
		}
	})

	t.Run("LockWaitTimesOut", func(t *testing.T) {
		// A transaction stalled on the inventory row must not hang a
		// second open forever: the FOR UPDATE wait is bounded by the
		// store timeout and surfaces as ErrStoreUnavailable.
		userID := seedUser(t, pool, "stalled", 0, 0)

		setup, err := repo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		if err := setup.CreateInventory(ctx, userID); err != nil {
			t.Fatalf("CreateInventory failed: %v", err)
		}
		if err := setup.Commit(ctx); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}

		holder, err := repo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		defer repository.SafeRollback(ctx, holder)
		if _, _, err := holder.GetInventoryForUpdate(ctx, userID); err != nil {
			t.Fatalf("GetInventoryForUpdate failed: %v", err)
		}

		impatient := NewEngineRepository(pool, loot, users, 200*time.Millisecond)
		tx, err := impatient.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		defer repository.SafeRollback(ctx, tx)

		if _, _, err := tx.GetInventoryForUpdate(ctx, userID); !errors.Is(err, domain.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable behind the row lock, got %v", err)
		}
	})

	t.Run("ClearSlotAndCredit", func(t *testing.T) {
		userID := seedUser(t, pool, "seller", 100, 0)
		players := NewPlayerRepository(pool, users, testStoreTimeout)
		inventories := NewInventoryRepository(pool, players, loot, users, testStoreTimeout)

		etx, err := repo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		if err := etx.CreateInventory(ctx, userID); err != nil {
			t.Fatalf("CreateInventory failed: %v", err)
		}
		if err := etx.WriteSlot(ctx, userID, 3, "5,100,0,1"); err != nil {
			t.Fatalf("WriteSlot failed: %v", err)
		}
		if err := etx.Commit(ctx); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}

		tx, err := inventories.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		defer repository.SafeRollback(ctx, tx)

		if _, found, err := tx.GetInventoryForUpdate(ctx, userID); err != nil || !found {
			t.Fatalf("expected inventory, found=%v err=%v", found, err)
		}
		if err := tx.ClearSlot(ctx, userID, 3, domain.EmptySlotValue(false)); err != nil {
			t.Fatalf("ClearSlot failed: %v", err)
		}
		if err := tx.Credit(ctx, userID, domain.PayMoney, 140); err != nil {
			t.Fatalf("Credit failed: %v", err)
		}
		if err := tx.Commit(ctx); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}

		inv, err := inventories.GetInventory(ctx, userID)
		if err != nil {
			t.Fatalf("GetInventory failed: %v", err)
		}
		if _, ok := domain.DecodeSlot(inv.Slots[2]); ok {
			t.Fatalf("expected slot 3 cleared, got %q", inv.Slots[2])
		}

		balance, err := repo.GetBalance(ctx, userID)
		if err != nil {
			t.Fatalf("GetBalance failed: %v", err)
		}
		if balance.Money != 240 {
			t.Fatalf("expected money 240, got %d", balance.Money)
		}
	})
}

func TestIPGuardRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pool := startTestDatabase(t)
	ctx := context.Background()
	guard := NewIPGuardRepository(pool, testStoreTimeout)

	const ip = "198.51.100.23"

	if block, err := guard.GetBlock(ctx, ip); err != nil || block != nil {
		t.Fatalf("expected no block, got %+v err=%v", block, err)
	}

	for i := 1; i <= 5; i++ {
		count, err := guard.RecordFailure(ctx, ip, "vasya")
		if err != nil {
			t.Fatalf("RecordFailure failed: %v", err)
		}
		if count != i {
			t.Fatalf("expected count %d, got %d", i, count)
		}
	}

	until := time.Now().Add(30 * time.Minute).UTC()
	if err := guard.SetTempBlock(ctx, ip, until); err != nil {
		t.Fatalf("SetTempBlock failed: %v", err)
	}

	block, err := guard.GetBlock(ctx, ip)
	if err != nil {
		t.Fatalf("GetBlock failed: %v", err)
	}
	if block == nil || !block.Blocked(time.Now()) {
		t.Fatalf("expected active block, got %+v", block)
	}
	if block.AttemptedLogin != "vasya" {
		t.Fatalf("expected attempted login recorded, got %q", block.AttemptedLogin)
	}

	if err := guard.Unblock(ctx, ip); err != nil {
		t.Fatalf("Unblock failed: %v", err)
	}
	block, err = guard.GetBlock(ctx, ip)
	if err != nil {
		t.Fatalf("GetBlock failed: %v", err)
	}
	if block.FailedAttempts != 0 || block.Blocked(time.Now()) {
		t.Fatalf("expected cleared block, got %+v", block)
	}
}

func TestCaseStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pool := startTestDatabase(t)
	ctx := context.Background()
	store := NewCaseStore(pool, testStoreTimeout)

	// Empty table falls back to the built-in catalog.
	configs, err := store.ListCases(ctx)
	if err != nil {
		t.Fatalf("ListCases failed: %v", err)
	}
	if len(configs) != 4 {
		t.Fatalf("expected 4 default cases, got %d", len(configs))
	}

	_, err = pool.Exec(ctx, `INSERT INTO web_cases
		(id, name, price_money, price_donate, min_price, max_price, type_contains)
		VALUES (10, 'Тестовый кейс', 1000, 10, 0, 500, NULL)`)
	if err != nil {
		t.Fatalf("failed to seed case: %v", err)
	}

	cfg, err := store.GetCase(ctx, 10)
	if err != nil {
		t.Fatalf("GetCase failed: %v", err)
	}
	band, ok := cfg.Eligibility.(domain.PriceBand)
	if !ok {
		t.Fatalf("expected price band eligibility, got %T", cfg.Eligibility)
	}
	if band.Max != 500 {
		t.Fatalf("expected max 500, got %d", band.Max)
	}

	if _, err := store.GetCase(ctx, 99); !errors.Is(err, domain.ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}

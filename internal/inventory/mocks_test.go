package inventory

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/repository"
)

// MockInventoryRepo implements repository.Inventories.
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) GetPlayer(ctx context.Context, userID int) (*domain.Player, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockInventoryRepo) GetInventory(ctx context.Context, userID int) (*domain.Inventory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}

func (m *MockInventoryRepo) GetLootByID(ctx context.Context, id int) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockInventoryRepo) ListLoots(ctx context.Context, limit int) ([]domain.Item, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockInventoryRepo) BeginTx(ctx context.Context) (repository.InventoryTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.InventoryTx), args.Error(1)
}

// MockInventoryTx implements repository.InventoryTx.
type MockInventoryTx struct {
	mock.Mock
}

func (m *MockInventoryTx) GetInventoryForUpdate(ctx context.Context, userID int) (*domain.Inventory, bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Inventory), args.Bool(1), args.Error(2)
}

func (m *MockInventoryTx) ClearSlot(ctx context.Context, userID, slot int, emptyValue string) error {
	args := m.Called(ctx, userID, slot, emptyValue)
	return args.Error(0)
}

func (m *MockInventoryTx) Credit(ctx context.Context, userID int, method domain.PaymentMethod, amount int) error {
	args := m.Called(ctx, userID, method, amount)
	return args.Error(0)
}

func (m *MockInventoryTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

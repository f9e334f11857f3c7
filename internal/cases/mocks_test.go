package cases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/repository"
)

// MockEngineRepo implements repository.Engine.
type MockEngineRepo struct {
	mock.Mock
}

func (m *MockEngineRepo) GetBalance(ctx context.Context, userID int) (*domain.PlayerBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerBalance), args.Error(1)
}

func (m *MockEngineRepo) ListLoots(ctx context.Context, limit int) ([]domain.Item, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockEngineRepo) BeginTx(ctx context.Context) (repository.EngineTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.EngineTx), args.Error(1)
}

// MockEngineTx implements repository.EngineTx.
type MockEngineTx struct {
	mock.Mock
}

func (m *MockEngineTx) TryDebit(ctx context.Context, userID int, method domain.PaymentMethod, amount int) error {
	args := m.Called(ctx, userID, method, amount)
	return args.Error(0)
}

func (m *MockEngineTx) GetInventoryForUpdate(ctx context.Context, userID int) (*domain.Inventory, bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Inventory), args.Bool(1), args.Error(2)
}

func (m *MockEngineTx) CreateInventory(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockEngineTx) WriteSlot(ctx context.Context, userID, slot int, value string) error {
	args := m.Called(ctx, userID, slot, value)
	return args.Error(0)
}

func (m *MockEngineTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEngineTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCaseStore implements repository.Cases.
type MockCaseStore struct {
	mock.Mock
}

func (m *MockCaseStore) ListCases(ctx context.Context) ([]domain.CaseConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaseConfig), args.Error(1)
}

func (m *MockCaseStore) GetCase(ctx context.Context, id int) (*domain.CaseConfig, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseConfig), args.Error(1)
}

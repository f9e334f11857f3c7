package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghostcity-rp/companion/internal/cases"
	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/inventory"
)

// MockCasesService implements cases.Service.
type MockCasesService struct {
	mock.Mock
}

func (m *MockCasesService) Open(ctx context.Context, caseID, userID int, paymentMethod string) (*cases.OpenResult, error) {
	args := m.Called(ctx, caseID, userID, paymentMethod)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cases.OpenResult), args.Error(1)
}

func (m *MockCasesService) List(ctx context.Context) ([]cases.CaseView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cases.CaseView), args.Error(1)
}

// MockInventoryService implements inventory.Service.
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) List(ctx context.Context, userID int) ([]inventory.SlotView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.SlotView), args.Error(1)
}

func (m *MockInventoryService) Sell(ctx context.Context, userID, slot int) (*inventory.SellResult, error) {
	args := m.Called(ctx, userID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.SellResult), args.Error(1)
}

// MockAuthService implements auth.Service.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, login, password, ip string) (*domain.Player, error) {
	args := m.Called(ctx, login, password, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockAuthService) Unblock(ctx context.Context, adminID int, ip string) error {
	args := m.Called(ctx, adminID, ip)
	return args.Error(0)
}

func (m *MockAuthService) ListBlocks(ctx context.Context, adminID int) ([]domain.IPBlock, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IPBlock), args.Error(1)
}

// MockNewsService implements news.Service.
type MockNewsService struct {
	mock.Mock
}

func (m *MockNewsService) List(ctx context.Context) ([]domain.NewsEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NewsEntry), args.Error(1)
}

func (m *MockNewsService) Create(ctx context.Context, adminID int, title, content string) (*domain.NewsEntry, error) {
	args := m.Called(ctx, adminID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsEntry), args.Error(1)
}

func (m *MockNewsService) Delete(ctx context.Context, adminID, newsID int) error {
	args := m.Called(ctx, adminID, newsID)
	return args.Error(0)
}

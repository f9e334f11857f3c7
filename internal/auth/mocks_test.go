package auth

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/repository"
)

// MockAuthRepo implements repository.Auth.
type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) GetCredentialsByLogin(ctx context.Context, login string) (*repository.Credentials, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Credentials), args.Error(1)
}

// MockIPGuard implements repository.IPGuard.
type MockIPGuard struct {
	mock.Mock
}

func (m *MockIPGuard) GetBlock(ctx context.Context, ip string) (*domain.IPBlock, error) {
	args := m.Called(ctx, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IPBlock), args.Error(1)
}

func (m *MockIPGuard) RecordFailure(ctx context.Context, ip, attemptedLogin string) (int, error) {
	args := m.Called(ctx, ip, attemptedLogin)
	return args.Int(0), args.Error(1)
}

func (m *MockIPGuard) SetTempBlock(ctx context.Context, ip string, until time.Time) error {
	args := m.Called(ctx, ip, until)
	return args.Error(0)
}

func (m *MockIPGuard) ResetAttempts(ctx context.Context, ip string) error {
	args := m.Called(ctx, ip)
	return args.Error(0)
}

func (m *MockIPGuard) Unblock(ctx context.Context, ip string) error {
	args := m.Called(ctx, ip)
	return args.Error(0)
}

func (m *MockIPGuard) ListBlocks(ctx context.Context) ([]domain.IPBlock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IPBlock), args.Error(1)
}

// MockPlayers implements repository.Players.
type MockPlayers struct {
	mock.Mock
}

func (m *MockPlayers) GetPlayer(ctx context.Context, userID int) (*domain.Player, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

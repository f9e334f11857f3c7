package news

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ghostcity-rp/companion/internal/domain"
)

// MockNewsRepo implements repository.News.
type MockNewsRepo struct {
	mock.Mock
}

func (m *MockNewsRepo) ListNews(ctx context.Context) ([]domain.NewsEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NewsEntry), args.Error(1)
}

func (m *MockNewsRepo) CreateNews(ctx context.Context, entry *domain.NewsEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockNewsRepo) DeleteNews(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

package news

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ghostcity-rp/companion/internal/domain"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func adminPlayer(id int) *domain.Player {
	return &domain.Player{
		PlayerBalance: domain.PlayerBalance{UserID: id, Username: "admin"},
		AdminLevel:    6,
	}
}

func regularPlayer(id int) *domain.Player {
	return &domain.Player{
		PlayerBalance: domain.PlayerBalance{UserID: id, Username: "vasya"},
		AdminLevel:    0,
	}
}

func newTestService(repo *MockNewsRepo, players *MockPlayers) *service {
	return &service{
		repo:    repo,
		players: players,
		now:     func() time.Time { return testNow },
	}
}

func TestListIsPublic(t *testing.T) {
	repo := new(MockNewsRepo)
	repo.On("ListNews", mock.Anything).Return([]domain.NewsEntry{
		{ID: 2, Title: "Вайп сервера", CreatedAt: testNow},
		{ID: 1, Title: "Открытие сезона", CreatedAt: testNow.Add(-time.Hour)},
	}, nil)

	svc := newTestService(repo, new(MockPlayers))
	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Вайп сервера", entries[0].Title)
}

func TestCreateRequiresAdmin(t *testing.T) {
	repo := new(MockNewsRepo)
	players := new(MockPlayers)
	players.On("GetPlayer", mock.Anything, 7).Return(regularPlayer(7), nil)

	svc := newTestService(repo, players)
	_, err := svc.Create(context.Background(), 7, "Заголовок", "Текст")
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	repo.AssertNotCalled(t, "CreateNews", mock.Anything, mock.Anything)
}

func TestCreateStampsAuthorAndTime(t *testing.T) {
	repo := new(MockNewsRepo)
	players := new(MockPlayers)
	players.On("GetPlayer", mock.Anything, 1).Return(adminPlayer(1), nil)
	repo.On("CreateNews", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.NewsEntry).ID = 42
	}).Return(nil)

	svc := newTestService(repo, players)
	entry, err := svc.Create(context.Background(), 1, "Заголовок", "Текст")
	require.NoError(t, err)

	assert.Equal(t, 42, entry.ID)
	assert.Equal(t, 1, entry.AuthorID)
	assert.Equal(t, testNow, entry.CreatedAt)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(new(MockNewsRepo), new(MockPlayers))

	_, err := svc.Create(context.Background(), 1, "", "Текст")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.Create(context.Background(), 1, "Заголовок", "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.Create(context.Background(), 1, strings.Repeat("x", MaxTitleLength+1), "Текст")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDeleteRequiresAdmin(t *testing.T) {
	repo := new(MockNewsRepo)
	players := new(MockPlayers)
	players.On("GetPlayer", mock.Anything, 7).Return(regularPlayer(7), nil)

	svc := newTestService(repo, players)
	err := svc.Delete(context.Background(), 7, 42)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	repo.AssertNotCalled(t, "DeleteNews", mock.Anything, mock.Anything)
}

func TestDeleteUnknownEntry(t *testing.T) {
	repo := new(MockNewsRepo)
	players := new(MockPlayers)
	players.On("GetPlayer", mock.Anything, 1).Return(adminPlayer(1), nil)
	repo.On("DeleteNews", mock.Anything, 404).Return(domain.ErrNewsNotFound)

	svc := newTestService(repo, players)
	err := svc.Delete(context.Background(), 1, 404)
	assert.ErrorIs(t, err, domain.ErrNewsNotFound)
}

func TestDelete(t *testing.T) {
	repo := new(MockNewsRepo)
	players := new(MockPlayers)
	players.On("GetPlayer", mock.Anything, 1).Return(adminPlayer(1), nil)
	repo.On("DeleteNews", mock.Anything, 42).Return(nil)

	svc := newTestService(repo, players)
	require.NoError(t, svc.Delete(context.Background(), 1, 42))
	repo.AssertCalled(t, "DeleteNews", mock.Anything, 42)
}

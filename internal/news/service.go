package news

import (
	"context"
	"fmt"
	"time"

	"github.com/ghostcity-rp/companion/internal/auth"
	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/logger"
	"github.com/ghostcity-rp/companion/internal/repository"
)

// MaxTitleLength bounds news titles; longer values are rejected rather
// than truncated.
const MaxTitleLength = 200

// Service defines the site news interface. Listing is public; creation
// and deletion require the admin policy.
type Service interface {
	List(ctx context.Context) ([]domain.NewsEntry, error)
	Create(ctx context.Context, adminID int, title, content string) (*domain.NewsEntry, error)
	Delete(ctx context.Context, adminID, newsID int) error
}

type service struct {
	repo    repository.News
	players repository.Players
	now     func() time.Time
}

// NewService creates a new news service.
func NewService(repo repository.News, players repository.Players) Service {
	return &service{
		repo:    repo,
		players: players,
		now:     time.Now,
	}
}

func (s *service) List(ctx context.Context) ([]domain.NewsEntry, error) {
	entries, err := s.repo.ListNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return entries, nil
}

func (s *service) Create(ctx context.Context, adminID int, title, content string) (*domain.NewsEntry, error) {
	log := logger.FromContext(ctx)

	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content required", domain.ErrInvalidArgument)
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("%w: title too long", domain.ErrInvalidArgument)
	}

	admin, err := auth.Authorize(ctx, s.players, adminID)
	if err != nil {
		return nil, err
	}

	entry := &domain.NewsEntry{
		Title:     title,
		Content:   content,
		AuthorID:  admin.UserID,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateNews(ctx, entry); err != nil {
		log.Error("Failed to create news", "error", err)
		return nil, fmt.Errorf("failed to create news: %w", err)
	}

	log.Info("News created", "news_id", entry.ID, "author_id", admin.UserID)
	return entry, nil
}

func (s *service) Delete(ctx context.Context, adminID, newsID int) error {
	log := logger.FromContext(ctx)

	if newsID <= 0 {
		return fmt.Errorf("%w: news id required", domain.ErrInvalidArgument)
	}
	admin, err := auth.Authorize(ctx, s.players, adminID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteNews(ctx, newsID); err != nil {
		return err
	}

	log.Info("News deleted", "news_id", newsID, "admin_id", admin.UserID)
	return nil
}

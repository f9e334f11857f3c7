package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/logger"
	"github.com/ghostcity-rp/companion/internal/metrics"
	"github.com/ghostcity-rp/companion/internal/repository"
)

const (
	blockCacheSize = 4096
	blockCacheTTL  = time.Minute
)

// Service defines the authentication and brute-force guard interface.
type Service interface {
	// Login verifies credentials against the game database. Failures
	// count toward the caller address's block threshold; a success
	// resets it.
	Login(ctx context.Context, login, password, ip string) (*domain.Player, error)
	// Unblock lifts all blocks from an address. Admin only.
	Unblock(ctx context.Context, adminID int, ip string) error
	// ListBlocks returns every recorded guard entry. Admin only.
	ListBlocks(ctx context.Context, adminID int) ([]domain.IPBlock, error)
}

type service struct {
	repo          repository.Auth
	guard         repository.IPGuard
	players       repository.Players
	cache         *blockCache
	maxAttempts   int
	blockDuration time.Duration
	now           func() time.Time
}

// NewService creates a new auth service. maxAttempts failed logins from
// one address trigger a temporary block of blockDuration.
func NewService(repo repository.Auth, guard repository.IPGuard, players repository.Players, maxAttempts int, blockDuration time.Duration) Service {
	return &service{
		repo:          repo,
		guard:         guard,
		players:       players,
		cache:         newBlockCache(blockCacheSize, blockCacheTTL),
		maxAttempts:   maxAttempts,
		blockDuration: blockDuration,
		now:           time.Now,
	}
}

func (s *service) Login(ctx context.Context, login, password, ip string) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	log.Info("Login called", "login", login, "ip", ip)

	if login == "" || password == "" {
		return nil, fmt.Errorf("%w: login and password required", domain.ErrInvalidArgument)
	}

	if err := s.checkBlocked(ctx, ip); err != nil {
		return nil, err
	}

	creds, err := s.repo.GetCredentialsByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown logins and wrong passwords are indistinguishable
			// to the caller.
			return nil, s.registerFailure(ctx, ip, login)
		}
		return nil, err
	}

	if !passwordMatches(creds.Password, password) {
		return nil, s.registerFailure(ctx, ip, login)
	}

	if err := s.guard.ResetAttempts(ctx, ip); err != nil {
		log.Error("Failed to reset guard attempts", "error", err, "ip", ip)
		return nil, fmt.Errorf("failed to reset guard attempts: %w", err)
	}
	s.cache.Invalidate(ip)

	log.Info("Login succeeded", "login", login, "user_id", creds.Player.UserID)
	return &creds.Player, nil
}

// checkBlocked consults the cache first so repeated attempts from a
// blocked address skip the database.
func (s *service) checkBlocked(ctx context.Context, ip string) error {
	now := s.now()

	if _, found := s.cache.Get(ip, now); found {
		return fmt.Errorf("%w: try again later", domain.ErrIPBlocked)
	}

	block, err := s.guard.GetBlock(ctx, ip)
	if err != nil {
		return fmt.Errorf("failed to get ip block: %w", err)
	}
	if block != nil && block.Blocked(now) {
		s.cache.Set(ip, block)
		return fmt.Errorf("%w: try again later", domain.ErrIPBlocked)
	}
	return nil
}

// registerFailure counts one failed attempt and arms the temporary
// block when the address reaches the threshold. The returned error is
// always ErrInvalidCredentials; the block takes effect on the NEXT
// attempt.
func (s *service) registerFailure(ctx context.Context, ip, login string) error {
	log := logger.FromContext(ctx)
	metrics.RecordLoginFailure()

	count, err := s.guard.RecordFailure(ctx, ip, login)
	if err != nil {
		log.Error("Failed to record login failure", "error", err, "ip", ip)
		return fmt.Errorf("failed to record login failure: %w", err)
	}

	if count >= s.maxAttempts {
		until := s.now().Add(s.blockDuration)
		if err := s.guard.SetTempBlock(ctx, ip, until); err != nil {
			log.Error("Failed to set temp block", "error", err, "ip", ip)
			return fmt.Errorf("failed to set temp block: %w", err)
		}
		s.cache.Set(ip, &domain.IPBlock{IP: ip, FailedAttempts: count, TempBlockedUntil: &until})
		log.Warn("IP temporarily blocked", "ip", ip, "attempts", count, "until", until)
	}

	return domain.ErrInvalidCredentials
}

func (s *service) Unblock(ctx context.Context, adminID int, ip string) error {
	log := logger.FromContext(ctx)

	if ip == "" {
		return fmt.Errorf("%w: ip required", domain.ErrInvalidArgument)
	}
	admin, err := Authorize(ctx, s.players, adminID)
	if err != nil {
		return err
	}

	if err := s.guard.Unblock(ctx, ip); err != nil {
		log.Error("Failed to unblock ip", "error", err, "ip", ip)
		return fmt.Errorf("failed to unblock ip: %w", err)
	}
	s.cache.Invalidate(ip)

	log.Info("IP unblocked", "ip", ip, "admin_id", admin.UserID)
	return nil
}

func (s *service) ListBlocks(ctx context.Context, adminID int) ([]domain.IPBlock, error) {
	if _, err := Authorize(ctx, s.players, adminID); err != nil {
		return nil, err
	}
	blocks, err := s.guard.ListBlocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ip blocks: %w", err)
	}
	return blocks, nil
}

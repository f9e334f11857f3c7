package repository

import (
	"context"
	"time"

	"github.com/ghostcity-rp/companion/internal/domain"
)

// Credentials couples a player profile with the stored password value
// from the game database. The stored value may be plain text, an md5 hex
// digest or a sha256 hex digest depending on the game-mod version.
type Credentials struct {
	Player   domain.Player
	Password string
}

// Auth resolves login credentials against the existing game database
// through the static field mapping configured at startup.
type Auth interface {
	// GetCredentialsByLogin fails with domain.ErrUserNotFound when no
	// player has that name.
	GetCredentialsByLogin(ctx context.Context, login string) (*Credentials, error)
}

// IPGuard persists the brute-force protection state per client address.
type IPGuard interface {
	// GetBlock returns nil when the address has no record.
	GetBlock(ctx context.Context, ip string) (*domain.IPBlock, error)
	// RecordFailure increments the failure counter, creating the record
	// if needed, and returns the new attempt count.
	RecordFailure(ctx context.Context, ip, attemptedLogin string) (int, error)
	// SetTempBlock sets the temporary block deadline for an address.
	SetTempBlock(ctx context.Context, ip string, until time.Time) error
	// ResetAttempts clears the counter and any temporary block.
	ResetAttempts(ctx context.Context, ip string) error
	// Unblock removes temporary and permanent blocks and resets the
	// counter.
	Unblock(ctx context.Context, ip string) error
	ListBlocks(ctx context.Context) ([]domain.IPBlock, error)
}

// News persists admin-managed site news.
type News interface {
	ListNews(ctx context.Context) ([]domain.NewsEntry, error)
	CreateNews(ctx context.Context, entry *domain.NewsEntry) error
	// DeleteNews fails with domain.ErrNewsNotFound when no row matches.
	DeleteNews(ctx context.Context, id int) error
}

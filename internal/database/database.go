package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the slice of pgxpool.Pool the readiness check needs.
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolSettings sizes the connection pool against the shared game
// database. Zero values fall back to the package defaults; the pool is
// kept small because the game server is the primary writer and must not
// be starved of connections.
type PoolSettings struct {
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
}

func (s PoolSettings) withDefaults() PoolSettings {
	if s.MaxConns <= 0 {
		s.MaxConns = DefaultMaxConnections
	}
	if s.MaxConnIdleTime <= 0 {
		s.MaxConnIdleTime = DefaultMaxConnIdleTime
	}
	if s.MaxConnLifetime <= 0 {
		s.MaxConnLifetime = DefaultMaxConnLifetime
	}
	return s
}

// NewPool creates a PostgreSQL connection pool and verifies
// connectivity before returning it.
func NewPool(connString string, settings PoolSettings) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	settings = settings.withDefaults()
	if settings.MaxConns > math.MaxInt32 {
		settings.MaxConns = math.MaxInt32
	}
	config.MaxConns = int32(settings.MaxConns)
	config.MinConns = DefaultMinConnections
	config.MaxConnIdleTime = settings.MaxConnIdleTime
	config.MaxConnLifetime = settings.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase)
	return pool, nil
}

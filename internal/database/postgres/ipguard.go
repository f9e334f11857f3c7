package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghostcity-rp/companion/internal/domain"
)

const (
	getBlockSQL = `SELECT ip, failed_attempts, attempted_login, temp_blocked_until, permanently_blocked
FROM web_ip_blocks WHERE ip = $1`

	recordFailureSQL = `INSERT INTO web_ip_blocks (ip, failed_attempts, attempted_login)
VALUES ($1, 1, $2)
ON CONFLICT (ip) DO UPDATE
SET failed_attempts = web_ip_blocks.failed_attempts + 1,
    attempted_login = EXCLUDED.attempted_login
RETURNING failed_attempts`

	setTempBlockSQL = "UPDATE web_ip_blocks SET temp_blocked_until = $2 WHERE ip = $1"

	resetAttemptsSQL = "UPDATE web_ip_blocks SET failed_attempts = 0, temp_blocked_until = NULL WHERE ip = $1"

	unblockSQL = `UPDATE web_ip_blocks
SET failed_attempts = 0, temp_blocked_until = NULL, permanently_blocked = FALSE
WHERE ip = $1`

	listBlocksSQL = `SELECT ip, failed_attempts, attempted_login, temp_blocked_until, permanently_blocked
FROM web_ip_blocks ORDER BY failed_attempts DESC, ip`
)

// IPGuardRepository persists the login brute-force state per address in
// the web_ip_blocks table.
type IPGuardRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewIPGuardRepository creates a new IP guard repository.
func NewIPGuardRepository(db *pgxpool.Pool, timeout time.Duration) *IPGuardRepository {
	return &IPGuardRepository{db: db, timeout: timeout}
}

func (r *IPGuardRepository) GetBlock(ctx context.Context, ip string) (*domain.IPBlock, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	block, err := scanBlock(r.db.QueryRow(ctx, getBlockSQL, ip))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("failed to get ip block", err)
	}
	return block, nil
}

func (r *IPGuardRepository) RecordFailure(ctx context.Context, ip, attemptedLogin string) (int, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	var count int
	if err := r.db.QueryRow(ctx, recordFailureSQL, ip, attemptedLogin).Scan(&count); err != nil {
		return 0, storeErr("failed to record login failure", err)
	}
	return count, nil
}

func (r *IPGuardRepository) SetTempBlock(ctx context.Context, ip string, until time.Time) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	if _, err := r.db.Exec(ctx, setTempBlockSQL, ip, until); err != nil {
		return storeErr("failed to set temp block", err)
	}
	return nil
}

func (r *IPGuardRepository) ResetAttempts(ctx context.Context, ip string) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	if _, err := r.db.Exec(ctx, resetAttemptsSQL, ip); err != nil {
		return storeErr("failed to reset attempts", err)
	}
	return nil
}

func (r *IPGuardRepository) Unblock(ctx context.Context, ip string) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	if _, err := r.db.Exec(ctx, unblockSQL, ip); err != nil {
		return storeErr("failed to unblock ip", err)
	}
	return nil
}

func (r *IPGuardRepository) ListBlocks(ctx context.Context) ([]domain.IPBlock, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, listBlocksSQL)
	if err != nil {
		return nil, storeErr("failed to list ip blocks", err)
	}
	defer rows.Close()

	var blocks []domain.IPBlock
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, storeErr("failed to scan ip block row", err)
		}
		blocks = append(blocks, *block)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("failed to read ip block rows", err)
	}
	return blocks, nil
}

func scanBlock(row rowScanner) (*domain.IPBlock, error) {
	var (
		block          domain.IPBlock
		attemptedLogin pgtype.Text
		blockedUntil   pgtype.Timestamptz
	)
	err := row.Scan(&block.IP, &block.FailedAttempts, &attemptedLogin, &blockedUntil, &block.PermanentlyBlocked)
	if err != nil {
		return nil, err
	}
	block.AttemptedLogin = attemptedLogin.String
	if blockedUntil.Valid {
		t := blockedUntil.Time
		block.TempBlockedUntil = &t
	}
	return &block, nil
}

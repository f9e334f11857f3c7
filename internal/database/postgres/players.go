package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghostcity-rp/companion/internal/config"
	"github.com/ghostcity-rp/companion/internal/domain"
	"github.com/ghostcity-rp/companion/internal/repository"
)

// PlayerRepository reads player profiles and credentials from the game
// server's users table. All table and column names come from the static
// field mapping resolved at startup; the query text is built once in the
// constructor.
type PlayerRepository struct {
	db      *pgxpool.Pool
	timeout time.Duration

	getPlayerSQL      string
	getCredentialsSQL string
}

// NewPlayerRepository creates a new player repository bound to the
// configured field mapping.
func NewPlayerRepository(db *pgxpool.Pool, users config.FieldMapping, timeout time.Duration) *PlayerRepository {
	profileColumns := fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		users.IDColumn, users.NameColumn, users.MoneyColumn, users.DonateColumn,
		users.LevelColumn, users.AdminLevelColumn, users.OnlineColumn, users.LastActionColumn)

	return &PlayerRepository{
		db:      db,
		timeout: timeout,
		getPlayerSQL: fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
			profileColumns, users.UsersTable, users.IDColumn),
		getCredentialsSQL: fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s = $1",
			profileColumns, users.PasswordColumn, users.UsersTable, users.NameColumn),
	}
}

func (r *PlayerRepository) GetPlayer(ctx context.Context, userID int) (*domain.Player, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	player, _, err := scanPlayer(r.db.QueryRow(ctx, r.getPlayerSQL, userID), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrUserNotFound, userID)
		}
		return nil, storeErr("failed to get player", err)
	}
	return player, nil
}

func (r *PlayerRepository) GetCredentialsByLogin(ctx context.Context, login string) (*repository.Credentials, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	player, password, err := scanPlayer(r.db.QueryRow(ctx, r.getCredentialsSQL, login), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: login %q", domain.ErrUserNotFound, login)
		}
		return nil, storeErr("failed to get credentials", err)
	}
	return &repository.Credentials{Player: *player, Password: password}, nil
}

// scanPlayer reads one users row. The online flag is stored as an
// integer by the game mod; last action may be NULL for players who
// never logged into the game.
func scanPlayer(row rowScanner, withPassword bool) (*domain.Player, string, error) {
	var (
		player     domain.Player
		online     pgtype.Int4
		lastAction pgtype.Timestamp
		password   string
	)

	dest := []any{
		&player.UserID, &player.Username, &player.Money, &player.Donate,
		&player.Level, &player.AdminLevel, &online, &lastAction,
	}
	if withPassword {
		dest = append(dest, &password)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, "", err
	}

	player.Online = online.Valid && online.Int32 != 0
	if lastAction.Valid {
		t := lastAction.Time
		player.LastAction = &t
	}
	return &player, password, nil
}

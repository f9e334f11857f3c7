package domain

import "time"

// PlayerBalance holds the two per-player currency balances read from the
// users table. Money is the soft in-game currency, Donate the hard one.
// Neither may ever go negative.
type PlayerBalance struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Money    int    `json:"money"`
	Donate   int    `json:"donate"`
}

// OnlineWindow is how recent a player's last action must be for the
// player to count as in-game when the users table has no online flag.
const OnlineWindow = 10 * time.Minute

// Player is the profile resolved during authentication.
type Player struct {
	PlayerBalance
	Level      int        `json:"level"`
	AdminLevel int        `json:"admin_level"`
	Online     bool       `json:"online"`
	LastAction *time.Time `json:"-"`
}

// IsOnline reports whether the player is currently in-game, either via the
// explicit online flag or via recent activity.
func (p Player) IsOnline(now time.Time) bool {
	if p.Online {
		return true
	}
	return p.LastAction != nil && now.Sub(*p.LastAction) < OnlineWindow
}

// AdminLevelRequired is the single authorization threshold for admin
// operations (news management, IP unblocking). Keyed by user ID.
const AdminLevelRequired = 6

// CanAdminister reports whether the player passes the admin policy.
func (p Player) CanAdminister() bool {
	return p.AdminLevel >= AdminLevelRequired
}

package domain

import "time"

// NewsEntry is one admin-published news item shown on the site.
type NewsEntry struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int       `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// IPBlock is the brute-force guard record for one client address.
type IPBlock struct {
	IP                 string     `json:"ip_address"`
	FailedAttempts     int        `json:"failed_attempts"`
	AttemptedLogin     string     `json:"attempted_login,omitempty"`
	TempBlockedUntil   *time.Time `json:"temp_blocked_until,omitempty"`
	PermanentlyBlocked bool       `json:"permanently_blocked"`
}

// Blocked reports whether the address is currently denied access.
func (b IPBlock) Blocked(now time.Time) bool {
	if b.PermanentlyBlocked {
		return true
	}
	return b.TempBlockedUntil != nil && b.TempBlockedUntil.After(now)
}

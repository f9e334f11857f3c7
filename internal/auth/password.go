package auth

import (
	"crypto/md5" //nolint:gosec // legacy game databases store md5 digests
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

const (
	md5HexLen    = 32
	sha256HexLen = 64
)

// passwordMatches compares a supplied password against the stored value
// from the game database. Older game-mod versions store plain text,
// newer ones an md5 or sha256 hex digest; the digest kind is inferred
// from the stored length.
func passwordMatches(stored, supplied string) bool {
	switch {
	case len(stored) == md5HexLen && isHex(stored):
		sum := md5.Sum([]byte(supplied)) //nolint:gosec
		return equalFold(stored, hex.EncodeToString(sum[:]))
	case len(stored) == sha256HexLen && isHex(stored):
		sum := sha256.Sum256([]byte(supplied))
		return equalFold(stored, hex.EncodeToString(sum[:]))
	default:
		return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
	}
}

func isHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') && (r < 'A' || r > 'F') {
			return false
		}
	}
	return true
}

// equalFold compares two hex digests without timing leakage. Stored
// digests vary in case between game-mod versions.
func equalFold(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(a)), []byte(strings.ToLower(b))) == 1
}

package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Lifetimes of the three single-use token kinds.
const (
	InvitationTTL        = 7 * 24 * time.Hour
	PasswordResetTTL     = time.Hour
	EmailVerificationTTL = 7 * 24 * time.Hour
)

// TokenState is derived from the consumption and expiry timestamps at read
// time. Consumption takes priority over expiry so a token that was used and
// has since expired still reports as consumed.
type TokenState int

const (
	TokenActive TokenState = iota
	TokenConsumed
	TokenExpired
)

// Err maps a non-active state to its sentinel error, nil for an active
// token.
func (s TokenState) Err() error {
	switch s {
	case TokenConsumed:
		return ErrTokenConsumed
	case TokenExpired:
		return ErrTokenExpired
	default:
		return nil
	}
}

func tokenState(consumedAt *time.Time, expiresAt, now time.Time) TokenState {
	if consumedAt != nil {
		return TokenConsumed
	}
	if now.After(expiresAt) {
		return TokenExpired
	}
	return TokenActive
}

// NewToken returns 32 random bytes encoded as 64 lowercase hex characters.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// TokenLength is the length of every persisted token value.
const TokenLength = 64

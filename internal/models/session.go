package models

import "time"

// Session binds a signed cookie to a user until logout or expiry.
type Session struct {
	ID        string
	UserID    int
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Identity is the authenticated caller resolved from a session cookie.
type Identity struct {
	UserID    int
	SessionID string
}

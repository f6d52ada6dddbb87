package model

import "time"

// SessionID uniquely identifies an admin browser session
type SessionID string

// Session binds a browser session to the backend credentials obtained at login.
// The access token is the bearer credential for every backend call; the refresh
// token is only sent to the backend's logout/refresh endpoints.
type Session struct {
	ID           SessionID
	Username     string
	AccessToken  string
	RefreshToken string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Expired reports whether the session has passed its expiry at the given time
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

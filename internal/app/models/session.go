package models

import "time"

// Credential is a bcrypt hash enrolled for a user id.
type Credential struct {
	UserID       string `json:"userId"`
	PasswordHash string `json:"passwordHash"`
}

// Session is one signed-in client. The bearer token names it by ID.
type Session struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
	ExpiresAt string `json:"expiresAt"`
}

// ExpiredAt reports whether the session is over at now. A malformed
// expiry counts as expired.
func (s *Session) ExpiredAt(now time.Time) bool {
	expiresAt, err := time.Parse(time.RFC3339Nano, s.ExpiresAt)
	return err != nil || !now.Before(expiresAt)
}

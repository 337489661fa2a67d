package domain

import "time"

// Session is the material created when a device claims an AuthLink. Only the
// fingerprint of the session reference is kept here.
type Session struct {
	ID        string
	RefHash   string
	Claimant  string
	Code      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

package service

import (
	"errors"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/domain"
	"github.com/aussiebroadwan/pairing/internal/pairing/store"
	"github.com/aussiebroadwan/pairing/pkg/cryptox"
)

var (
	ErrCollisionExhausted = errors.New("could not allocate a unique pairing code")
	ErrCodeNotFound       = errors.New("pairing code not found")
	ErrCodeExpired        = errors.New("pairing code has expired")
	ErrCodeAlreadyClaimed = errors.New("pairing code has already been claimed")
	ErrInvalidClaimant    = errors.New("claimant identity is required")
	ErrSessionNotFound    = errors.New("pairing session not found or expired")
)

const (
	DefaultCodeTTL    = 5 * time.Minute
	DefaultSessionTTL = 24 * time.Hour

	// MaxIssueAttempts bounds how many candidate codes IssueCode tries
	// before giving up with ErrCollisionExhausted.
	MaxIssueAttempts = 5
)

// PairingService issues, redeems and reports on one-time pairing codes.
//
// The zero values of the optional fields fall back to the defaults above,
// the wall clock and the crypto/rand generators in pkg/cryptox. Tests replace
// them to pin time and force collisions.
type PairingService struct {
	Store      store.Store
	CodeTTL    time.Duration
	SessionTTL time.Duration
	Cache      *ClaimCache

	Now           func() time.Time
	NewCode       func() (string, error)
	NewSessionRef func() (string, error)
}

// now is truncated to milliseconds, the resolution both drivers persist.
func (s *PairingService) now() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().UTC().Truncate(time.Millisecond)
}

func (s *PairingService) codeTTL() time.Duration {
	if s.CodeTTL > 0 {
		return s.CodeTTL
	}
	return DefaultCodeTTL
}

func (s *PairingService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSessionTTL
}

func (s *PairingService) generateCode() (string, error) {
	if s.NewCode != nil {
		return s.NewCode()
	}
	return cryptox.GenerateCode(domain.CodeAlphabet, domain.CodeLength)
}

func (s *PairingService) generateSessionRef() (string, error) {
	if s.NewSessionRef != nil {
		return s.NewSessionRef()
	}
	return cryptox.GenerateSessionRef()
}

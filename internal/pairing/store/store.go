package store

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Repositories hang off it so a transaction can hand out
// the same repositories bound to the transaction.
type Store interface {
	AuthLinks() AuthLinks
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil and
	// rolling back otherwise. Repositories used inside fn must come from tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type AuthLinks interface {
	// CreateAuthLink inserts a pending link. A row already holding the code
	// is replaced only when it expired at or before link.CreatedAt; a live
	// occupant makes the insert fail with ErrAlreadyExists.
	CreateAuthLink(ctx context.Context, link domain.AuthLink) error

	// GetAuthLink returns the link for code in whatever state it is in.
	GetAuthLink(ctx context.Context, code string) (domain.AuthLink, error)

	// ClaimAuthLink sets claimed_by, claimed_at and session_ref in a single
	// conditional update that only matches an unclaimed link unexpired at now.
	// It reports whether a row was updated.
	ClaimAuthLink(ctx context.Context, code, claimedBy, sessionRef string, now time.Time) (bool, error)

	// DeleteExpiredAuthLinks removes links whose expiry is before now and
	// returns how many were deleted.
	DeleteExpiredAuthLinks(ctx context.Context, now time.Time) (int64, error)
}

type Sessions interface {
	// CreateSession stores session material created by a successful claim.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByRefHash looks a session up by the fingerprint of its reference.
	GetSessionByRefHash(ctx context.Context, refHash string) (domain.Session, error)

	// DeleteExpiredSessions removes sessions whose expiry is before now.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

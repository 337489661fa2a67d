package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/domain"
	"github.com/aussiebroadwan/pairing/internal/pairing/store"
	"github.com/aussiebroadwan/pairing/internal/pairing/store/drivers/sqlite/gen"
)

type authLinksRepo struct {
	q *gen.Queries
}

func (r *authLinksRepo) CreateAuthLink(ctx context.Context, link domain.AuthLink) error {
	n, err := r.q.CreateAuthLink(ctx, gen.CreateAuthLinkParams{
		Code:      link.Code,
		ExpiresAt: toMillis(link.ExpiresAt),
		CreatedAt: toMillis(link.CreatedAt),
	})
	if err != nil {
		return mapConstraint(err)
	}
	// The upsert guard leaves live and claimed occupants untouched.
	if n == 0 {
		return store.ErrAlreadyExists
	}
	return nil
}

func (r *authLinksRepo) GetAuthLink(ctx context.Context, code string) (domain.AuthLink, error) {
	row, err := r.q.GetAuthLink(ctx, code)
	if err != nil {
		return domain.AuthLink{}, mapNotFound(err)
	}
	return mapAuthLink(row), nil
}

func (r *authLinksRepo) ClaimAuthLink(
	ctx context.Context,
	code, claimedBy, sessionRef string,
	now time.Time,
) (bool, error) {
	n, err := r.q.ClaimAuthLink(ctx, gen.ClaimAuthLinkParams{
		ClaimedBy:  mapStringNull(claimedBy),
		ClaimedAt:  sql.NullInt64{Int64: toMillis(now), Valid: true},
		SessionRef: mapStringNull(sessionRef),
		Code:       code,
		ExpiresAt:  toMillis(now),
	})
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *authLinksRepo) DeleteExpiredAuthLinks(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredAuthLinks(ctx, toMillis(now))
}

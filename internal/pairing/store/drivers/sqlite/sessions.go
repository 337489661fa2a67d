package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/domain"
	"github.com/aussiebroadwan/pairing/internal/pairing/store/drivers/sqlite/gen"
)

type sessionsRepo struct {
	q *gen.Queries
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	err := r.q.CreateSession(ctx, gen.CreateSessionParams{
		ID:        s.ID,
		RefHash:   s.RefHash,
		Claimant:  s.Claimant,
		Code:      s.Code,
		CreatedAt: toMillis(s.CreatedAt),
		ExpiresAt: toMillis(s.ExpiresAt),
	})
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSessionByRefHash(ctx context.Context, refHash string) (domain.Session, error) {
	row, err := r.q.GetSessionByRefHash(ctx, refHash)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return mapSession(row), nil
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredSessions(ctx, toMillis(now))
}

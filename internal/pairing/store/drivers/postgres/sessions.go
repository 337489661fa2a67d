package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/domain"
)

type sessionsRepo struct {
	q querier
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	const op = "store.postgres.CreateSession"

	query := `
        INSERT INTO pairing_sessions (id, ref_hash, claimant, code, created_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `

	_, err := r.q.Exec(ctx, query, s.ID, s.RefHash, s.Claimant, s.Code, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return mapError(op, err)
	}

	return nil
}

func (r *sessionsRepo) GetSessionByRefHash(ctx context.Context, refHash string) (domain.Session, error) {
	const op = "store.postgres.GetSessionByRefHash"

	query := `
        SELECT id, ref_hash, claimant, code, created_at, expires_at
        FROM pairing_sessions
        WHERE ref_hash = $1
    `

	var s domain.Session
	err := r.q.QueryRow(ctx, query, refHash).Scan(
		&s.ID,
		&s.RefHash,
		&s.Claimant,
		&s.Code,
		&s.CreatedAt,
		&s.ExpiresAt,
	)
	if err != nil {
		return domain.Session{}, mapError(op, err)
	}

	s.CreatedAt = s.CreatedAt.UTC()
	s.ExpiresAt = s.ExpiresAt.UTC()
	return s, nil
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	const op = "store.postgres.DeleteExpiredSessions"

	tag, err := r.q.Exec(ctx, `DELETE FROM pairing_sessions WHERE expires_at < $1`, now)
	if err != nil {
		return 0, mapError(op, err)
	}

	return tag.RowsAffected(), nil
}

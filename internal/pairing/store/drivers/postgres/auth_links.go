package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/domain"
	"github.com/aussiebroadwan/pairing/internal/pairing/store"
	"github.com/jackc/pgx/v5/pgtype"
)

type authLinksRepo struct {
	q querier
}

func (r *authLinksRepo) CreateAuthLink(ctx context.Context, link domain.AuthLink) error {
	const op = "store.postgres.CreateAuthLink"

	query := `
        INSERT INTO auth_links (code, expires_at, created_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (code) DO UPDATE SET
            expires_at  = EXCLUDED.expires_at,
            claimed_by  = NULL,
            claimed_at  = NULL,
            session_ref = NULL,
            created_at  = EXCLUDED.created_at
        WHERE auth_links.claimed_at IS NULL
          AND auth_links.expires_at <= EXCLUDED.created_at
    `

	tag, err := r.q.Exec(ctx, query, link.Code, link.ExpiresAt, link.CreatedAt)
	if err != nil {
		return mapError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, store.ErrAlreadyExists)
	}

	return nil
}

func (r *authLinksRepo) GetAuthLink(ctx context.Context, code string) (domain.AuthLink, error) {
	const op = "store.postgres.GetAuthLink"

	query := `
        SELECT code, expires_at, claimed_by, claimed_at, session_ref, created_at
        FROM auth_links
        WHERE code = $1
    `

	var (
		link       domain.AuthLink
		claimedBy  pgtype.Text
		claimedAt  pgtype.Timestamptz
		sessionRef pgtype.Text
	)
	err := r.q.QueryRow(ctx, query, code).Scan(
		&link.Code,
		&link.ExpiresAt,
		&claimedBy,
		&claimedAt,
		&sessionRef,
		&link.CreatedAt,
	)
	if err != nil {
		return domain.AuthLink{}, mapError(op, err)
	}

	link.ExpiresAt = link.ExpiresAt.UTC()
	link.CreatedAt = link.CreatedAt.UTC()
	link.ClaimedBy = claimedBy.String
	link.SessionRef = sessionRef.String
	if claimedAt.Valid {
		t := claimedAt.Time.UTC()
		link.ClaimedAt = &t
	}

	return link, nil
}

func (r *authLinksRepo) ClaimAuthLink(
	ctx context.Context,
	code, claimedBy, sessionRef string,
	now time.Time,
) (bool, error) {
	const op = "store.postgres.ClaimAuthLink"

	// Concurrent claimers block on the row lock; the loser re-evaluates the
	// predicate after the winner commits and matches nothing.
	query := `
        UPDATE auth_links
        SET claimed_by = $1, claimed_at = $2, session_ref = $3
        WHERE code = $4
          AND claimed_at IS NULL
          AND expires_at > $2
    `

	tag, err := r.q.Exec(ctx, query, claimedBy, now, sessionRef, code)
	if err != nil {
		return false, mapError(op, err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *authLinksRepo) DeleteExpiredAuthLinks(ctx context.Context, now time.Time) (int64, error) {
	const op = "store.postgres.DeleteExpiredAuthLinks"

	tag, err := r.q.Exec(ctx, `DELETE FROM auth_links WHERE expires_at < $1`, now)
	if err != nil {
		return 0, mapError(op, err)
	}

	return tag.RowsAffected(), nil
}

package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/pairing/internal/pairing/domain"
	"github.com/aussiebroadwan/pairing/internal/pairing/store"
	"github.com/aussiebroadwan/pairing/pkg/slogx"
)

// IssueCode allocates a fresh pending AuthLink. A candidate that collides with
// a live code is discarded and a new one drawn, up to MaxIssueAttempts times.
// Any storage error other than a collision aborts immediately.
func (s *PairingService) IssueCode(ctx context.Context) (domain.AuthLink, error) {
	log := slogx.FromContext(ctx)

	for attempt := 1; attempt <= MaxIssueAttempts; attempt++ {
		code, err := s.generateCode()
		if err != nil {
			log.Error("failed to generate pairing code", slog.Any("error", err))
			return domain.AuthLink{}, err
		}

		now := s.now()
		link := domain.AuthLink{
			Code:      code,
			CreatedAt: now,
			ExpiresAt: now.Add(s.codeTTL()),
		}

		err = s.Store.AuthLinks().CreateAuthLink(ctx, link)
		if err == nil {
			log.Info("pairing code issued",
				slog.String("code", link.Code),
				slog.Time("expires_at", link.ExpiresAt),
				slog.Int("attempt", attempt),
			)
			return link, nil
		}

		if !errors.Is(err, store.ErrAlreadyExists) {
			log.Error("failed to store pairing code", slog.Any("error", err))
			return domain.AuthLink{}, err
		}

		log.Warn("pairing code collision",
			slog.String("code", code),
			slog.Int("attempt", attempt),
		)
	}

	log.Error("pairing code collisions exhausted", slog.Int("attempts", MaxIssueAttempts))
	return domain.AuthLink{}, ErrCollisionExhausted
}

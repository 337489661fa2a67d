package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/domain"
	"github.com/aussiebroadwan/pairing/internal/pairing/store"
	"github.com/aussiebroadwan/pairing/pkg/slogx"
)

// ClaimStatus is what the waiting web client learns about its code. The
// claimant identity is never part of it.
type ClaimStatus struct {
	Claimed    bool
	SessionRef string
	ExpiresAt  time.Time
}

// CheckClaim reports whether code has been claimed and, once it has, the
// session reference created for the claim.
func (s *PairingService) CheckClaim(ctx context.Context, rawCode string) (ClaimStatus, error) {
	log := slogx.FromContext(ctx)

	code, ok := domain.NormalizeCode(rawCode)
	if !ok {
		return ClaimStatus{}, ErrCodeNotFound
	}

	now := s.now()
	if cached, ok := s.Cache.Get(code); ok && now.Before(cached.ExpiresAt) {
		return cached, nil
	}

	link, err := s.Store.AuthLinks().GetAuthLink(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ClaimStatus{}, ErrCodeNotFound
		}
		log.Error("failed to load pairing code",
			slog.String("code", code),
			slog.Any("error", err),
		)
		return ClaimStatus{}, err
	}

	status := ClaimStatus{
		Claimed:   link.IsClaimed(),
		ExpiresAt: link.ExpiresAt,
	}
	if status.Claimed {
		status.SessionRef = link.SessionRef
		s.Cache.Add(code, status)
	}

	return status, nil
}

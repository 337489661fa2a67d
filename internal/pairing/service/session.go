package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/pairing/internal/pairing/domain"
	"github.com/aussiebroadwan/pairing/internal/pairing/store"
	"github.com/aussiebroadwan/pairing/pkg/cryptox"
	"github.com/aussiebroadwan/pairing/pkg/slogx"
)

// ResolveSession looks up the session a reference was issued for. Unknown
// and expired references both report ErrSessionNotFound.
func (s *PairingService) ResolveSession(ctx context.Context, ref string) (domain.Session, error) {
	log := slogx.FromContext(ctx)

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Session{}, ErrSessionNotFound
	}

	session, err := s.Store.Sessions().GetSessionByRefHash(ctx, cryptox.FingerprintToken(ref))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrSessionNotFound
		}
		log.Error("failed to load pairing session", slog.Any("error", err))
		return domain.Session{}, err
	}

	if session.IsExpired(s.now()) {
		return domain.Session{}, ErrSessionNotFound
	}

	return session, nil
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/domain"
	"github.com/aussiebroadwan/pairing/internal/pairing/store"
	"github.com/aussiebroadwan/pairing/pkg/cryptox"
	"github.com/aussiebroadwan/pairing/pkg/idx"
	"github.com/aussiebroadwan/pairing/pkg/slogx"
)

// RedeemCode claims code for claimant and returns the reference of the session
// created for the claim. The claim is a single conditional update, so of any
// number of concurrent redeemers exactly one wins.
func (s *PairingService) RedeemCode(ctx context.Context, rawCode, claimant string) (string, error) {
	log := slogx.FromContext(ctx)

	claimant = strings.TrimSpace(claimant)
	if claimant == "" {
		return "", ErrInvalidClaimant
	}

	code, ok := domain.NormalizeCode(rawCode)
	if !ok {
		log.Debug("rejected malformed pairing code")
		return "", ErrCodeNotFound
	}

	ref, err := s.generateSessionRef()
	if err != nil {
		log.Error("failed to generate session reference", slog.Any("error", err))
		return "", err
	}

	now := s.now()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		claimed, err := tx.AuthLinks().ClaimAuthLink(ctx, code, claimant, ref, now)
		if err != nil {
			return err
		}
		if !claimed {
			return classifyMiss(ctx, tx, code, now)
		}

		session := domain.Session{
			ID:        idx.NewAt(now).String(),
			RefHash:   cryptox.FingerprintToken(ref),
			Claimant:  claimant,
			Code:      code,
			CreatedAt: now,
			ExpiresAt: now.Add(s.sessionTTL()),
		}
		return tx.Sessions().CreateSession(ctx, session)
	})

	switch {
	case err == nil:
		log.Info("pairing code redeemed",
			slog.String("code", code),
			slog.String("claimant", claimant),
		)
		return ref, nil

	case errors.Is(err, ErrCodeNotFound),
		errors.Is(err, ErrCodeExpired),
		errors.Is(err, ErrCodeAlreadyClaimed):
		log.Info("pairing code redemption refused",
			slog.String("code", code),
			slog.String("reason", err.Error()),
		)
		return "", err

	default:
		log.Error("failed to redeem pairing code",
			slog.String("code", code),
			slog.Any("error", err),
		)
		return "", err
	}
}

// classifyMiss explains why the conditional claim matched no row.
func classifyMiss(ctx context.Context, tx store.Tx, code string, now time.Time) error {
	link, err := tx.AuthLinks().GetAuthLink(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCodeNotFound
		}
		return err
	}

	switch link.State(now) {
	case domain.LinkClaimed:
		return ErrCodeAlreadyClaimed
	case domain.LinkExpired:
		return ErrCodeExpired
	default:
		// Issued after the update ran; the code did not exist for this request.
		return ErrCodeNotFound
	}
}

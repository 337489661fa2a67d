package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/pairing/pkg/slogx"
)

type SweepResult struct {
	Links    int64
	Sessions int64
}

// SweepExpired deletes expired links and sessions. The two deletions are
// independent: a failure in one does not stop the other, and the errors are
// joined.
func (s *PairingService) SweepExpired(ctx context.Context) (SweepResult, error) {
	log := slogx.FromContext(ctx)
	now := s.now()

	var (
		result SweepResult
		errs   []error
	)

	n, err := s.Store.AuthLinks().DeleteExpiredAuthLinks(ctx, now)
	if err != nil {
		log.Error("failed to delete expired pairing codes", slog.Any("error", err))
		errs = append(errs, err)
	} else {
		result.Links = n
	}

	n, err = s.Store.Sessions().DeleteExpiredSessions(ctx, now)
	if err != nil {
		log.Error("failed to delete expired pairing sessions", slog.Any("error", err))
		errs = append(errs, err)
	} else {
		result.Sessions = n
	}

	log.Info("expired pairing records swept",
		slog.Int64("links", result.Links),
		slog.Int64("sessions", result.Sessions),
	)

	return result, errors.Join(errs...)
}

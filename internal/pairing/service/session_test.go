package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveSession(t *testing.T) {
	ctx := context.Background()
	c := newClock(t0)
	svc := newSQLiteService(t, c)
	svc.SessionTTL = time.Hour

	link, err := svc.IssueCode(ctx)
	require.NoError(t, err)
	ref, err := svc.RedeemCode(ctx, link.Code, "device-42")
	require.NoError(t, err)

	session, err := svc.ResolveSession(ctx, ref)
	require.NoError(t, err)
	require.Equal(t, "device-42", session.Claimant)
	require.Equal(t, link.Code, session.Code)
	require.NotEqual(t, ref, session.RefHash)

	_, err = svc.ResolveSession(ctx, "sess_unknown")
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.ResolveSession(ctx, "")
	require.ErrorIs(t, err, ErrSessionNotFound)

	c.Advance(time.Hour)
	_, err = svc.ResolveSession(ctx, ref)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

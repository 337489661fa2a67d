package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/domain"
	"github.com/aussiebroadwan/pairing/internal/pairing/store"
	"github.com/aussiebroadwan/pairing/internal/pairing/store/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newMockService(t *testing.T) (*PairingService, *mocks.MockAuthLinks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	links := mocks.NewMockAuthLinks(ctrl)
	st.EXPECT().AuthLinks().Return(links).AnyTimes()

	return &PairingService{
		Store: st,
		Now:   newClock(t0).Now,
	}, links
}

func TestIssueCode(t *testing.T) {
	ctx := context.Background()

	t.Run("generated code is well formed", func(t *testing.T) {
		svc := newSQLiteService(t, newClock(t0))

		link, err := svc.IssueCode(ctx)
		require.NoError(t, err)
		require.Len(t, link.Code, domain.CodeLength)
		for _, r := range link.Code {
			require.Contains(t, domain.CodeAlphabet, string(r))
		}
		require.True(t, link.ExpiresAt.Equal(t0.Add(DefaultCodeTTL)))
		require.False(t, link.IsClaimed())
	})

	t.Run("honours configured ttl", func(t *testing.T) {
		svc := newSQLiteService(t, newClock(t0))
		svc.CodeTTL = time.Minute

		link, err := svc.IssueCode(ctx)
		require.NoError(t, err)
		require.True(t, link.ExpiresAt.Equal(t0.Add(time.Minute)))
	})

	t.Run("retries after a collision", func(t *testing.T) {
		svc, links := newMockService(t)
		svc.NewCode = fixedCodes("A7KQX2M9PLRT", "B7KQX2M9PLRT")

		gomock.InOrder(
			links.EXPECT().
				CreateAuthLink(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, link domain.AuthLink) error {
					require.Equal(t, "A7KQX2M9PLRT", link.Code)
					return store.ErrAlreadyExists
				}),
			links.EXPECT().
				CreateAuthLink(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, link domain.AuthLink) error {
					require.Equal(t, "B7KQX2M9PLRT", link.Code)
					return nil
				}),
		)

		link, err := svc.IssueCode(ctx)
		require.NoError(t, err)
		require.Equal(t, "B7KQX2M9PLRT", link.Code)
	})

	t.Run("gives up after the attempt bound", func(t *testing.T) {
		svc, links := newMockService(t)

		links.EXPECT().
			CreateAuthLink(gomock.Any(), gomock.Any()).
			Return(store.ErrAlreadyExists).
			Times(MaxIssueAttempts)

		_, err := svc.IssueCode(ctx)
		require.ErrorIs(t, err, ErrCollisionExhausted)
	})

	t.Run("storage fault aborts without retry", func(t *testing.T) {
		svc, links := newMockService(t)
		boom := errors.New("disk full")

		links.EXPECT().
			CreateAuthLink(gomock.Any(), gomock.Any()).
			Return(boom).
			Times(1)

		_, err := svc.IssueCode(ctx)
		require.ErrorIs(t, err, boom)
		require.NotErrorIs(t, err, ErrCollisionExhausted)
	})

	t.Run("generator failure aborts", func(t *testing.T) {
		svc, _ := newMockService(t)
		boom := errors.New("entropy unavailable")
		svc.NewCode = func() (string, error) { return "", boom }

		_, err := svc.IssueCode(ctx)
		require.ErrorIs(t, err, boom)
	})

	t.Run("reissues a code whose previous occupant expired", func(t *testing.T) {
		c := newClock(t0)
		svc := newSQLiteService(t, c)
		svc.NewCode = fixedCodes("A7KQX2M9PLRT")

		_, err := svc.IssueCode(ctx)
		require.NoError(t, err)

		_, err = svc.IssueCode(ctx)
		require.ErrorIs(t, err, ErrCollisionExhausted)

		c.Advance(DefaultCodeTTL)
		link, err := svc.IssueCode(ctx)
		require.NoError(t, err)
		require.Equal(t, "A7KQX2M9PLRT", link.Code)
		require.True(t, link.ExpiresAt.Equal(t0.Add(2*DefaultCodeTTL)))
	})
}

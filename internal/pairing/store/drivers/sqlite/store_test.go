package sqlite_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/domain"
	"github.com/aussiebroadwan/pairing/internal/pairing/store"
	"github.com/aussiebroadwan/pairing/internal/pairing/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func pendingLink(code string, createdAt time.Time) domain.AuthLink {
	return domain.AuthLink{
		Code:      code,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(5 * time.Minute),
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))
}

func TestCreateAndGetAuthLink(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.AuthLinks().CreateAuthLink(ctx, pendingLink("A7KQX2M9PLRT", t0)))

	got, err := st.AuthLinks().GetAuthLink(ctx, "A7KQX2M9PLRT")
	require.NoError(t, err)
	require.Equal(t, "A7KQX2M9PLRT", got.Code)
	require.True(t, got.CreatedAt.Equal(t0))
	require.True(t, got.ExpiresAt.Equal(t0.Add(5*time.Minute)))
	require.False(t, got.IsClaimed())
	require.Empty(t, got.ClaimedBy)
	require.Empty(t, got.SessionRef)

	_, err = st.AuthLinks().GetAuthLink(ctx, "ZZZZZZZZZZZZ")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateAuthLinkCollision(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	links := st.AuthLinks()

	require.NoError(t, links.CreateAuthLink(ctx, pendingLink("A7KQX2M9PLRT", t0)))

	t.Run("live occupant rejects the insert", func(t *testing.T) {
		err := links.CreateAuthLink(ctx, pendingLink("A7KQX2M9PLRT", t0.Add(time.Minute)))
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		got, err := links.GetAuthLink(ctx, "A7KQX2M9PLRT")
		require.NoError(t, err)
		require.True(t, got.CreatedAt.Equal(t0), "occupant must be untouched")
	})

	t.Run("expired occupant is taken over", func(t *testing.T) {
		later := t0.Add(10 * time.Minute)
		require.NoError(t, links.CreateAuthLink(ctx, pendingLink("A7KQX2M9PLRT", later)))

		got, err := links.GetAuthLink(ctx, "A7KQX2M9PLRT")
		require.NoError(t, err)
		require.True(t, got.CreatedAt.Equal(later))
		require.True(t, got.ExpiresAt.Equal(later.Add(5*time.Minute)))
	})
}

func TestCreateAuthLinkKeepsClaimedOccupant(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	links := st.AuthLinks()

	require.NoError(t, links.CreateAuthLink(ctx, pendingLink("A7KQX2M9PLRT", t0)))
	ok, err := links.ClaimAuthLink(ctx, "A7KQX2M9PLRT", "device-42", "sess_abc", t0.Add(10*time.Second))
	require.NoError(t, err)
	require.True(t, ok)

	// even after expiry the claimed row is immutable until swept
	err = links.CreateAuthLink(ctx, pendingLink("A7KQX2M9PLRT", t0.Add(time.Hour)))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := links.GetAuthLink(ctx, "A7KQX2M9PLRT")
	require.NoError(t, err)
	require.Equal(t, "sess_abc", got.SessionRef)
}

func TestClaimAuthLink(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	links := st.AuthLinks()

	require.NoError(t, links.CreateAuthLink(ctx, pendingLink("A7KQX2M9PLRT", t0)))

	t.Run("unknown code matches nothing", func(t *testing.T) {
		ok, err := links.ClaimAuthLink(ctx, "ZZZZZZZZZZZZ", "device-42", "sess_x", t0)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("first claim wins", func(t *testing.T) {
		ok, err := links.ClaimAuthLink(ctx, "A7KQX2M9PLRT", "device-42", "sess_abc", t0.Add(10*time.Second))
		require.NoError(t, err)
		require.True(t, ok)

		got, err := links.GetAuthLink(ctx, "A7KQX2M9PLRT")
		require.NoError(t, err)
		require.Equal(t, "device-42", got.ClaimedBy)
		require.Equal(t, "sess_abc", got.SessionRef)
		require.NotNil(t, got.ClaimedAt)
		require.True(t, got.ClaimedAt.Equal(t0.Add(10*time.Second)))
	})

	t.Run("second claim matches nothing", func(t *testing.T) {
		ok, err := links.ClaimAuthLink(ctx, "A7KQX2M9PLRT", "device-99", "sess_def", t0.Add(12*time.Second))
		require.NoError(t, err)
		require.False(t, ok)

		got, err := links.GetAuthLink(ctx, "A7KQX2M9PLRT")
		require.NoError(t, err)
		require.Equal(t, "device-42", got.ClaimedBy)
		require.Equal(t, "sess_abc", got.SessionRef)
	})
}

func TestClaimAuthLinkAtExpiry(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	links := st.AuthLinks()

	require.NoError(t, links.CreateAuthLink(ctx, pendingLink("A7KQX2M9PLRT", t0)))

	ok, err := links.ClaimAuthLink(ctx, "A7KQX2M9PLRT", "device-42", "sess_abc", t0.Add(5*time.Minute))
	require.NoError(t, err)
	require.False(t, ok, "expiry is exclusive")
}

func TestClaimAuthLinkConcurrent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	for round := range 5 {
		code := []string{"AAAAAAAAAAAA", "BBBBBBBBBBBB", "CCCCCCCCCCCC", "DDDDDDDDDDDD", "EEEEEEEEEEEE"}[round]
		require.NoError(t, st.AuthLinks().CreateAuthLink(ctx, pendingLink(code, t0)))

		const claimants = 16
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins int
		)
		errs := make(chan error, claimants)
		for range claimants {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- st.WithTx(ctx, func(tx store.Tx) error {
					ok, err := tx.AuthLinks().ClaimAuthLink(ctx, code, "device", "sess", t0.Add(time.Second))
					if err != nil {
						return err
					}
					if ok {
						mu.Lock()
						wins++
						mu.Unlock()
					}
					return nil
				})
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}
		require.Equal(t, 1, wins, "round %d", round)
	}
}

func TestDeleteExpired(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	links := st.AuthLinks()
	sessions := st.Sessions()

	require.NoError(t, links.CreateAuthLink(ctx, pendingLink("AAAAAAAAAAAA", t0)))
	require.NoError(t, links.CreateAuthLink(ctx, pendingLink("BBBBBBBBBBBB", t0.Add(10*time.Minute))))

	require.NoError(t, sessions.CreateSession(ctx, domain.Session{
		ID:        "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
		RefHash:   "hash-old",
		Claimant:  "device-42",
		Code:      "AAAAAAAAAAAA",
		CreatedAt: t0,
		ExpiresAt: t0.Add(time.Hour),
	}))

	now := t0.Add(6 * time.Minute)
	n, err := links.DeleteExpiredAuthLinks(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = links.GetAuthLink(ctx, "AAAAAAAAAAAA")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = links.GetAuthLink(ctx, "BBBBBBBBBBBB")
	require.NoError(t, err)

	// second pass finds nothing
	n, err = links.DeleteExpiredAuthLinks(ctx, now)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = sessions.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = sessions.DeleteExpiredSessions(ctx, t0.Add(2*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	s := domain.Session{
		ID:        "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
		RefHash:   "hash-1",
		Claimant:  "device-42",
		Code:      "A7KQX2M9PLRT",
		CreatedAt: t0,
		ExpiresAt: t0.Add(24 * time.Hour),
	}
	require.NoError(t, st.Sessions().CreateSession(ctx, s))

	got, err := st.Sessions().GetSessionByRefHash(ctx, "hash-1")
	require.NoError(t, err)
	require.Equal(t, s.ID, got.ID)
	require.Equal(t, "device-42", got.Claimant)
	require.True(t, got.ExpiresAt.Equal(s.ExpiresAt))

	s.ID = "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZW"
	require.ErrorIs(t, st.Sessions().CreateSession(ctx, s), store.ErrAlreadyExists)

	_, err = st.Sessions().GetSessionByRefHash(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	err := st.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.AuthLinks().CreateAuthLink(ctx, pendingLink("A7KQX2M9PLRT", t0)))
		return store.ErrNotFound
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.AuthLinks().GetAuthLink(ctx, "A7KQX2M9PLRT")
	require.ErrorIs(t, err, store.ErrNotFound)
}

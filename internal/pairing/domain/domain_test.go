package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/domain"
	"github.com/stretchr/testify/require"
)

func TestCodeAlphabet(t *testing.T) {
	require.Len(t, domain.CodeAlphabet, 33)
	require.NotContains(t, domain.CodeAlphabet, "0")
	require.NotContains(t, domain.CodeAlphabet, "O")
	require.NotContains(t, domain.CodeAlphabet, "1")
}

func TestNormalizeCode(t *testing.T) {
	t.Run("accepts canonical code", func(t *testing.T) {
		code, ok := domain.NormalizeCode("A7KQX2M9PLRT")
		require.True(t, ok)
		require.Equal(t, "A7KQX2M9PLRT", code)
	})

	t.Run("trims and upper-cases", func(t *testing.T) {
		code, ok := domain.NormalizeCode("  a7kqx2m9plrt\n")
		require.True(t, ok)
		require.Equal(t, "A7KQX2M9PLRT", code)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, ok := domain.NormalizeCode("A7KQX2M9PLR")
		require.False(t, ok)

		_, ok = domain.NormalizeCode("")
		require.False(t, ok)
	})

	t.Run("rejects excluded characters", func(t *testing.T) {
		_, ok := domain.NormalizeCode("A7KQX2M9PLR0")
		require.False(t, ok)

		_, ok = domain.NormalizeCode("A7KQX2M9PLRO")
		require.False(t, ok)

		_, ok = domain.NormalizeCode("A7KQX2M9PL-T")
		require.False(t, ok)
	})
}

func TestAuthLinkState(t *testing.T) {
	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	link := domain.AuthLink{
		Code:      "A7KQX2M9PLRT",
		CreatedAt: t0,
		ExpiresAt: t0.Add(5 * time.Minute),
	}

	require.Equal(t, domain.LinkPending, link.State(t0))
	require.True(t, link.IsRedeemable(t0.Add(299*time.Second)))

	// expiry is exclusive: at expiresAt the link is no longer redeemable
	require.False(t, link.IsRedeemable(t0.Add(5*time.Minute)))
	require.Equal(t, domain.LinkExpired, link.State(t0.Add(5*time.Minute)))

	claimedAt := t0.Add(10 * time.Second)
	link.ClaimedAt = &claimedAt
	link.ClaimedBy = "device-42"
	require.Equal(t, domain.LinkClaimed, link.State(t0.Add(11*time.Second)))
	require.Equal(t, domain.LinkClaimed, link.State(t0.Add(time.Hour)))
	require.False(t, link.IsRedeemable(t0.Add(12*time.Second)))
}

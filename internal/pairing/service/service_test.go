package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// clock is a settable time source for PairingService.Now.
type clock struct{ now time.Time }

func newClock(t time.Time) *clock { return &clock{now: t} }

func (c *clock) Now() time.Time          { return c.now }
func (c *clock) Set(t time.Time)         { c.now = t }
func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fixedCodes hands out codes in order, repeating the last once exhausted.
func fixedCodes(codes ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		code := codes[min(i, len(codes)-1)]
		i++
		return code, nil
	}
}

func newSQLiteService(t *testing.T, c *clock) *PairingService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return &PairingService{
		Store: st,
		Now:   c.Now,
	}
}

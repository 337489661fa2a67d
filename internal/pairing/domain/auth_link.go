package domain

import "time"

// LinkState is the derived lifecycle position of an AuthLink at a point in time.
type LinkState string

const (
	LinkPending LinkState = "pending"
	LinkClaimed LinkState = "claimed"
	LinkExpired LinkState = "expired"
)

// AuthLink is a single pairing code issued to a waiting web client.
type AuthLink struct {
	Code       string
	ExpiresAt  time.Time
	ClaimedBy  string // empty until redeemed
	ClaimedAt  *time.Time
	SessionRef string // empty until redeemed
	CreatedAt  time.Time
}

// IsClaimed reports whether the link has been redeemed.
func (l AuthLink) IsClaimed() bool {
	return l.ClaimedAt != nil
}

// IsExpired reports whether the link's lifetime has elapsed at now.
func (l AuthLink) IsExpired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}

// IsRedeemable reports whether a redemption at now may still claim the link.
func (l AuthLink) IsRedeemable(now time.Time) bool {
	return !l.IsClaimed() && !l.IsExpired(now)
}

// State returns the lifecycle state at now. A claimed link stays claimed
// after its expiry passes.
func (l AuthLink) State(now time.Time) LinkState {
	switch {
	case l.IsClaimed():
		return LinkClaimed
	case l.IsExpired(now):
		return LinkExpired
	default:
		return LinkPending
	}
}

package pairingsdk

import "time"

// ErrorResponse is the error body every endpoint answers with.
type ErrorResponse struct {
	Error            string `json:"error" example:"code_expired"`
	ErrorDescription string `json:"error_description" example:"pairing code has expired"`
}

// IssueCodeResponse is returned by POST /v1/pairing/codes.
type IssueCodeResponse struct {
	Code      string    `json:"code" example:"A7KQX2M9PLRT"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RedeemRequest is the body of POST /v1/pairing/redeem. ClaimantIdentity
// defaults to the bearer token subject and, when given, must equal it.
type RedeemRequest struct {
	Code             string `json:"code" example:"A7KQX2M9PLRT"`
	ClaimantIdentity string `json:"claimantIdentity,omitempty" example:"device-42"`
}

// RedeemResponse is returned by a successful redemption.
type RedeemResponse struct {
	SessionRef string `json:"sessionRef" example:"sess_abc"`
}

// ClaimStatusResponse is returned by GET /v1/pairing/codes/{code}.
type ClaimStatusResponse struct {
	Claimed    bool      `json:"claimed"`
	SessionRef string    `json:"sessionRef,omitempty" example:"sess_abc"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// IntrospectRequest is the body of POST /v1/pairing/sessions/introspect.
type IntrospectRequest struct {
	SessionRef string `json:"sessionRef" example:"sess_abc"`
}

// IntrospectResponse describes a session reference. Only Active is set when
// the reference is unknown or expired.
type IntrospectResponse struct {
	Active    bool       `json:"active"`
	Claimant  string     `json:"claimant,omitempty" example:"device-42"`
	Code      string     `json:"code,omitempty" example:"A7KQX2M9PLRT"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// HealthResponse is returned by /livez and /readyz. Checks is only set by /readyz.
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime,omitempty" example:"1h23m45s"`
	Version string        `json:"version,omitempty" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the dependencies /readyz looks at.
type HealthChecks struct {
	Database string `json:"database"`
	Keys     string `json:"keys"`
}

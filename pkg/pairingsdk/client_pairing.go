package pairingsdk

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"
)

// IssueCode asks the service for a fresh pairing code.
func (c *SDKClient) IssueCode(ctx context.Context) (*IssueCodeResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/pairing/codes", "", nil)
	if err != nil {
		return nil, err
	}

	var out IssueCodeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckClaim polls the claim status of code once.
func (c *SDKClient) CheckClaim(ctx context.Context, code string) (*ClaimStatusResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/pairing/codes/"+url.PathEscape(code), "", nil)
	if err != nil {
		return nil, err
	}

	var out ClaimStatusResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// WaitForClaim polls until code is claimed, the code reaches expiresAt
// (ErrClaimWaitExpired) or ctx is done. Rate-limited polls back off and retry.
func (c *SDKClient) WaitForClaim(ctx context.Context, code string, expiresAt time.Time) (*ClaimStatusResponse, error) {
	interval := c.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}

		status, err := c.CheckClaim(ctx, code)
		switch {
		case err == nil && status.Claimed:
			return status, nil
		case err == nil:
			if !status.ExpiresAt.IsZero() {
				expiresAt = status.ExpiresAt
			}
		case errors.Is(err, ErrRateLimited):
			// keep polling
		default:
			return nil, err
		}

		if !time.Now().Before(expiresAt) {
			return nil, ErrClaimWaitExpired
		}

		wait := min(interval, time.Until(expiresAt))
		timer.Reset(wait)
	}
}

// Redeem claims a code on behalf of the bearer of accessToken.
func (c *SDKClient) Redeem(ctx context.Context, accessToken string, req RedeemRequest) (*RedeemResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/pairing/redeem", accessToken, req)
	if err != nil {
		return nil, err
	}

	var out RedeemResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// IntrospectSession resolves a session reference. accessToken must carry
// the pairing:introspect scope.
func (c *SDKClient) IntrospectSession(ctx context.Context, accessToken, sessionRef string) (*IntrospectResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/pairing/sessions/introspect", accessToken,
		IntrospectRequest{SessionRef: sessionRef})
	if err != nil {
		return nil, err
	}

	var out IntrospectResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

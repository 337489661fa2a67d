package jwtx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultMinRefreshInterval bounds how often an unknown kid may trigger a fetch.
const DefaultMinRefreshInterval = 30 * time.Second

// RemoteKeySet keeps a KeySet in sync with a JWKS endpoint published by the
// auth service. A token signed with a kid the set has not seen yet triggers
// a refresh, rate limited so forged kids cannot hammer the endpoint.
type RemoteKeySet struct {
	url     string
	client  *http.Client
	keys    *KeySet
	limiter *rate.Limiter
}

// NewRemoteKeySet returns an empty set for url. Call Refresh before use.
func NewRemoteKeySet(url string, client *http.Client, minRefresh time.Duration) *RemoteKeySet {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if minRefresh <= 0 {
		minRefresh = DefaultMinRefreshInterval
	}

	return &RemoteKeySet{
		url:     url,
		client:  client,
		keys:    NewKeySet(),
		limiter: rate.NewLimiter(rate.Every(minRefresh), 1),
	}
}

// Refresh fetches the JWKS and replaces the cached keys.
func (r *RemoteKeySet) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return fmt.Errorf("jwtx: build jwks request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("jwtx: fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwtx: fetch jwks: unexpected status %d", resp.StatusCode)
	}

	var jwks JWKS
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&jwks); err != nil {
		return fmt.Errorf("jwtx: decode jwks: %w", err)
	}
	if len(jwks.Keys) == 0 {
		return errors.New("jwtx: jwks has no keys")
	}

	return r.keys.ResetFromJWKS(jwks)
}

// Key implements KeySource. A miss triggers at most one refresh per
// minimum refresh interval.
func (r *RemoteKeySet) Key(ctx context.Context, kid string) (any, error) {
	key, err := r.keys.Get(kid)
	if err == nil {
		return key, nil
	}

	if !r.limiter.Allow() {
		return nil, ErrNoKey
	}
	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}

	return r.keys.Get(kid)
}

func (r *RemoteKeySet) IsReady() bool {
	return r.keys.IsReady()
}

// JWKS returns a snapshot of the currently cached keys.
func (r *RemoteKeySet) JWKS() JWKS {
	return r.keys.PublicJWKS()
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpapi "github.com/aussiebroadwan/pairing/internal/pairing/http"
	"github.com/aussiebroadwan/pairing/pkg/jwtx"
)

// devTokenTTL bounds the token printed at startup in dev mode.
const devTokenTTL = 12 * time.Hour

// AuthKeys bundles what the router needs to verify bearer tokens.
type AuthKeys struct {
	Source   jwtx.KeySource
	Verifier *jwtx.TokenVerifier

	// Remote is nil when running on an ephemeral dev key.
	Remote *jwtx.RemoteKeySet
}

// InitAuthKeys sets up token verification.
//
// With AUTH_JWKS_URL set, keys come from the upstream auth service and are
// refreshed by housekeeping and on unknown kids. A failed first fetch is
// logged, not fatal: /readyz reports it until a refresh succeeds.
//
// Without it (dev only), an ephemeral EdDSA key is generated and a token for
// a "dev-device" subject is logged so redeem can be exercised locally.
func InitAuthKeys(ctx context.Context, cfg Config, logger *slog.Logger) (*AuthKeys, error) {
	opts := jwtx.VerifyOptions{
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
		Leeway:   30 * time.Second,
	}
	if cfg.Algorithm != "" {
		opts.Algorithms = []string{cfg.Algorithm}
	}

	if cfg.JWKSURL != "" {
		remote := jwtx.NewRemoteKeySet(cfg.JWKSURL, nil, 0)
		if err := remote.Refresh(ctx); err != nil {
			logger.Warn("initial jwks fetch failed, will retry", "url", cfg.JWKSURL, "error", err)
		} else {
			logger.Info("jwks loaded", "url", cfg.JWKSURL, "keys", len(remote.JWKS().Keys))
		}

		return &AuthKeys{
			Source:   remote,
			Verifier: jwtx.NewVerifier(remote, opts),
			Remote:   remote,
		}, nil
	}

	signer, err := jwtx.NewEphemeralEdDSASigner("dev-" + jwtx.NewJTI()[:8])
	if err != nil {
		return nil, fmt.Errorf("failed to generate dev signing key: %w", err)
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, fmt.Errorf("failed to register dev signing key: %w", err)
	}

	opts.Algorithms = []string{signer.Alg()}
	logger.Warn("AUTH_JWKS_URL not set: verifying tokens with an ephemeral dev key",
		"kid", signer.KID(),
	)

	claims := jwtx.NewClaims(
		"dev-device",
		[]string{httpapi.IntrospectScope},
		devTokenTTL,
		cfg.Issuer,
		cfg.Audience,
		time.Now().UTC(),
	)
	token, err := signer.Sign(claims)
	if err != nil {
		return nil, fmt.Errorf("failed to sign dev token: %w", err)
	}
	logger.Warn("dev bearer token", "sub", claims.Subject, "token", token)

	return &AuthKeys{
		Source:   keys,
		Verifier: jwtx.NewVerifier(keys, opts),
	}, nil
}

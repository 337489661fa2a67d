package jwtx_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/aussiebroadwan/pairing/pkg/cryptox"
	"github.com/aussiebroadwan/pairing/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	exampleIssuer   = "https://auth.example.com"
	exampleAudience = "pairing"
)

func newEdDSA(t *testing.T, kid string) *jwtx.EdDSASigner {
	t.Helper()
	signer, err := jwtx.NewEphemeralEdDSASigner(kid)
	require.NoError(t, err)
	return signer
}

func claimsFor(subject string, ttl time.Duration, scopes ...string) jwtx.Claims {
	return jwtx.NewClaims(subject, scopes, ttl, exampleIssuer, []string{exampleAudience}, time.Now().UTC())
}

func newVerifier(keys jwtx.KeySource) *jwtx.TokenVerifier {
	return jwtx.NewVerifier(keys, jwtx.VerifyOptions{
		Issuer:   exampleIssuer,
		Audience: []string{exampleAudience},
		Leeway:   5 * time.Second,
	})
}

func TestVerifyEdDSA(t *testing.T) {
	ctx := context.Background()
	signer := newEdDSA(t, "ed-1")
	require.Equal(t, "EdDSA", signer.Alg())

	keys := jwtx.NewKeySet()
	require.False(t, keys.IsReady())
	require.NoError(t, keys.AddSigner(signer))
	require.True(t, keys.IsReady())

	token, err := signer.Sign(claimsFor("device-42", time.Minute, "pairing:introspect"))
	require.NoError(t, err)

	claims, err := newVerifier(keys).Verify(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "device-42", claims.Subject)
	require.True(t, claims.HasScope("pairing:introspect"))
	require.False(t, claims.HasScope("pairing:admin"))
}

func TestVerifyES256(t *testing.T) {
	pemKey, err := cryptox.GenerateES256Key()
	require.NoError(t, err)
	priv, err := cryptox.ParsePrivateKey(pemKey)
	require.NoError(t, err)
	key := priv.(*ecdsa.PrivateKey)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(jwtx.NewES256JWK("ec-1", "sig", "ES256", &key.PublicKey)))

	tok := jwt.NewWithClaims(jwt.SigningMethodES256, claimsFor("device-7", time.Minute))
	tok.Header["kid"] = "ec-1"
	token, err := tok.SignedString(key)
	require.NoError(t, err)

	claims, err := newVerifier(keys).Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "device-7", claims.Subject)
}

func TestVerifyRS256(t *testing.T) {
	pemKey, err := cryptox.GenerateRSAKey(2048)
	require.NoError(t, err)
	priv, err := cryptox.ParsePrivateKey(pemKey)
	require.NoError(t, err)
	key := priv.(*rsa.PrivateKey)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddJWK(jwtx.NewRSAJWK("rsa-1", "sig", "RS256", &key.PublicKey)))

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claimsFor("device-9", time.Minute))
	tok.Header["kid"] = "rsa-1"
	token, err := tok.SignedString(key)
	require.NoError(t, err)

	claims, err := newVerifier(keys).Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "device-9", claims.Subject)

	t.Run("rejected when algorithm not allowed", func(t *testing.T) {
		v := jwtx.NewVerifier(keys, jwtx.VerifyOptions{Algorithms: []string{"EdDSA"}})
		_, err := v.Verify(context.Background(), token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})
}

func TestVerifyRejects(t *testing.T) {
	ctx := context.Background()
	signer := newEdDSA(t, "ed-1")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))
	verifier := newVerifier(keys)

	sign := func(c jwtx.Claims) string {
		token, err := signer.Sign(c)
		require.NoError(t, err)
		return token
	}

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("expired", func(t *testing.T) {
		c := jwtx.NewClaims("device-42", nil, time.Minute, exampleIssuer,
			[]string{exampleAudience}, time.Now().Add(-time.Hour))
		_, err := verifier.Verify(ctx, sign(c))
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := claimsFor("device-42", time.Minute)
		c.Issuer = "https://evil.example.com"
		_, err := verifier.Verify(ctx, sign(c))
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		c := claimsFor("device-42", time.Minute)
		c.Audience = jwt.ClaimStrings{"chat"}
		_, err := verifier.Verify(ctx, sign(c))
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("missing subject", func(t *testing.T) {
		_, err := verifier.Verify(ctx, sign(claimsFor("", time.Minute)))
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("unknown kid", func(t *testing.T) {
		other := newEdDSA(t, "ed-2")
		token, err := other.Sign(claimsFor("device-42", time.Minute))
		require.NoError(t, err)

		_, err = verifier.Verify(ctx, token)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("same kid different key", func(t *testing.T) {
		imposter := newEdDSA(t, "ed-1")
		token, err := imposter.Sign(claimsFor("device-42", time.Minute))
		require.NoError(t, err)

		_, err = verifier.Verify(ctx, token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("key type does not match alg", func(t *testing.T) {
		pemKey, err := cryptox.GenerateES256Key()
		require.NoError(t, err)
		priv, err := cryptox.ParsePrivateKey(pemKey)
		require.NoError(t, err)

		// ES256 token claiming the Ed25519 kid
		tok := jwt.NewWithClaims(jwt.SigningMethodES256, claimsFor("device-42", time.Minute))
		tok.Header["kid"] = "ed-1"
		token, err := tok.SignedString(priv.(*ecdsa.PrivateKey))
		require.NoError(t, err)

		_, err = verifier.Verify(ctx, token)
		require.ErrorIs(t, err, jwtx.ErrAlgMismatch)
	})

	t.Run("missing kid", func(t *testing.T) {
		pemKey, err := cryptox.GenerateEd25519Key()
		require.NoError(t, err)
		priv, err := cryptox.ParsePrivateKey(pemKey)
		require.NoError(t, err)

		tok := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claimsFor("device-42", time.Minute))
		token, err := tok.SignedString(priv)
		require.NoError(t, err)

		_, err = verifier.Verify(ctx, token)
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestKeySet(t *testing.T) {
	a := newEdDSA(t, "a")
	b := newEdDSA(t, "b")

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(a))
	require.NoError(t, keys.AddSigner(b))
	require.Len(t, keys.PublicJWKS().Keys, 2)

	// re-adding a kid replaces it rather than duplicating
	require.NoError(t, keys.AddSigner(newEdDSA(t, "a")))
	require.Len(t, keys.PublicJWKS().Keys, 2)

	_, err := keys.Get("c")
	require.ErrorIs(t, err, jwtx.ErrNoKey)

	t.Run("reset is all or nothing", func(t *testing.T) {
		bad := jwtx.JWKS{Keys: []jwtx.JWK{
			b.PublicJWK(),
			{Kty: "OKP", Crv: "X448", Kid: "x"},
		}}
		require.Error(t, keys.ResetFromJWKS(bad))
		require.Len(t, keys.PublicJWKS().Keys, 2)

		require.NoError(t, keys.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{b.PublicJWK()}}))
		require.Len(t, keys.PublicJWKS().Keys, 1)
		_, err := keys.Get("a")
		require.ErrorIs(t, err, jwtx.ErrNoKey)
	})

	t.Run("rejects keys without kid", func(t *testing.T) {
		jwk := a.PublicJWK()
		jwk.Kid = ""
		require.Error(t, keys.AddJWK(jwk))
	})
}

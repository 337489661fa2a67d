package pairing_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/app"
	"github.com/aussiebroadwan/pairing/pkg/jwtx"
	"github.com/aussiebroadwan/pairing/pkg/pairingsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * End-to-end tests drive the fully wired service (postgres store, remote JWKS
 * verification, router and middleware) through the Go SDK.
 *
 * Run with:
 *   GO_TEST_INTEGRATION=1 go test ./test/e2e/... -count=1
 */

const (
	testIssuer   = "https://auth.example.com"
	testAudience = "pairing"
	upstreamKID  = "upstream-key-001"
)

type env struct {
	client *pairingsdk.SDKClient
	signer *jwtx.EdDSASigner
}

// token mints a bearer token as the upstream auth service would.
func (e *env) token(t *testing.T, subject string, scopes ...string) string {
	t.Helper()
	tok, err := e.signer.Sign(jwtx.NewClaims(subject, scopes, time.Hour,
		testIssuer, []string{testAudience}, time.Now().UTC()))
	require.NoError(t, err)
	return tok
}

// setupPairingService starts postgres in a container, a stub upstream JWKS
// endpoint, and the service itself behind an httptest server.
func setupPairingService(t *testing.T) *env {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "pairing",
			"POSTGRES_PASSWORD": "pairing",
			"POSTGRES_DB":       "pairing",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	signer, err := jwtx.NewEphemeralEdDSASigner(upstreamKID)
	require.NoError(t, err)

	jwks := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jwtx.JWKS{Keys: []jwtx.JWK{signer.PublicJWK()}})
	}))
	t.Cleanup(jwks.Close)

	cfg := app.Config{
		Env:                  "test",
		LogLevel:             "warn",
		LogFormat:            "json",
		Port:                 8080,
		ShutdownGracePeriod:  5 * time.Second,
		HousekeepingInterval: time.Minute,
		StoreDriver:          "postgres",
		DatabaseURL: fmt.Sprintf("postgres://pairing:pairing@%s:%s/pairing?sslmode=disable",
			host, mappedPort.Port()),
		CodeTTL:        5 * time.Minute,
		SessionTTL:     24 * time.Hour,
		ClaimCacheSize: 128,
		Issuer:         testIssuer,
		Audience:       []string{testAudience},
		JWKSURL:        jwks.URL,
		JWKSRefresh:    time.Minute,
	}
	require.NoError(t, cfg.Validate())

	application, err := app.New(ctx, cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = application.Shutdown()
	})

	client := pairingsdk.NewSDKClient(srv.URL)
	client.PollInterval = 50 * time.Millisecond

	return &env{client: client, signer: signer}
}

// assertHealthy checks if the health response indicates a healthy service.
func assertHealthy(t *testing.T, health *pairingsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
	require.NotEmpty(t, health.Uptime)
}

package pairingsdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSDKClient(t *testing.T) {
	t.Parallel()

	client := NewSDKClient("https://pairing.example.com/")
	require.Equal(t, "https://pairing.example.com", client.BaseURL)
	require.Equal(t, 10*time.Second, client.HTTPClient.Timeout)
	require.Equal(t, DefaultPollInterval, client.PollInterval)
}

func TestIssueCode(t *testing.T) {
	t.Parallel()

	expires := time.Date(2026, 1, 2, 3, 9, 5, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/pairing/codes", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(IssueCodeResponse{Code: "A7KQX2M9PLRT", ExpiresAt: expires})
	}))
	defer srv.Close()

	got, err := NewSDKClient(srv.URL).IssueCode(context.Background())
	require.NoError(t, err)
	require.Equal(t, "A7KQX2M9PLRT", got.Code)
	require.True(t, expires.Equal(got.ExpiresAt))
}

func TestRedeem(t *testing.T) {
	t.Parallel()

	t.Run("sends bearer token and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/pairing/redeem", r.URL.Path)
			require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req RedeemRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "A7KQX2M9PLRT", req.Code)
			require.Equal(t, "device-42", req.ClaimantIdentity)

			_ = json.NewEncoder(w).Encode(RedeemResponse{SessionRef: "sess_abc"})
		}))
		defer srv.Close()

		got, err := NewSDKClient(srv.URL).Redeem(context.Background(), "tok",
			RedeemRequest{Code: "A7KQX2M9PLRT", ClaimantIdentity: "device-42"})
		require.NoError(t, err)
		require.Equal(t, "sess_abc", got.SessionRef)
	})

	for _, want := range []*APIError{ErrCodeNotFound, ErrCodeExpired, ErrCodeAlreadyClaimed} {
		t.Run("maps "+want.Code, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				want.WriteError(w)
			}))
			defer srv.Close()

			_, err := NewSDKClient(srv.URL).Redeem(context.Background(), "tok", RedeemRequest{Code: "A7KQX2M9PLRT"})
			require.ErrorIs(t, err, want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, want.StatusCode, apiErr.StatusCode)
		})
	}
}

func TestParseErrorResponseWithoutBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := NewSDKClient(srv.URL).CheckClaim(context.Background(), "A7KQX2M9PLRT")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
}

func TestAPIErrorIs(t *testing.T) {
	t.Parallel()

	custom := ErrCodeExpired.WithDescription("gone")
	require.ErrorIs(t, custom, ErrCodeExpired)
	require.NotErrorIs(t, custom, ErrCodeNotFound)
	require.Equal(t, "pairing code has expired", ErrCodeExpired.Description)
}

func TestWaitForClaim(t *testing.T) {
	t.Parallel()

	t.Run("returns once claimed", func(t *testing.T) {
		var polls atomic.Int32
		expires := time.Now().Add(time.Minute)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/pairing/codes/A7KQX2M9PLRT", r.URL.Path)
			n := polls.Add(1)
			resp := ClaimStatusResponse{ExpiresAt: expires}
			if n >= 3 {
				resp.Claimed = true
				resp.SessionRef = "sess_abc"
			}
			_ = json.NewEncoder(w).Encode(resp)
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL)
		client.PollInterval = 10 * time.Millisecond

		got, err := client.WaitForClaim(context.Background(), "A7KQX2M9PLRT", expires)
		require.NoError(t, err)
		require.True(t, got.Claimed)
		require.Equal(t, "sess_abc", got.SessionRef)
		require.EqualValues(t, 3, polls.Load())
	})

	t.Run("stops at expiry", func(t *testing.T) {
		expires := time.Now().Add(50 * time.Millisecond)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(ClaimStatusResponse{ExpiresAt: expires})
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL)
		client.PollInterval = 10 * time.Millisecond

		_, err := client.WaitForClaim(context.Background(), "A7KQX2M9PLRT", expires)
		require.ErrorIs(t, err, ErrClaimWaitExpired)
	})

	t.Run("keeps polling through rate limits", func(t *testing.T) {
		var polls atomic.Int32
		expires := time.Now().Add(time.Minute)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if polls.Add(1) == 1 {
				ErrRateLimited.WriteError(w)
				return
			}
			_ = json.NewEncoder(w).Encode(ClaimStatusResponse{Claimed: true, SessionRef: "sess_abc", ExpiresAt: expires})
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL)
		client.PollInterval = 10 * time.Millisecond

		got, err := client.WaitForClaim(context.Background(), "A7KQX2M9PLRT", expires)
		require.NoError(t, err)
		require.True(t, got.Claimed)
	})

	t.Run("aborts on unknown code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ErrCodeNotFound.WriteError(w)
		}))
		defer srv.Close()

		_, err := NewSDKClient(srv.URL).WaitForClaim(context.Background(), "A7KQX2M9PLRT", time.Now().Add(time.Minute))
		require.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("honours context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(ClaimStatusResponse{ExpiresAt: time.Now().Add(time.Minute)})
		}))
		defer srv.Close()

		client := NewSDKClient(srv.URL)
		client.PollInterval = 10 * time.Millisecond

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.WaitForClaim(ctx, "A7KQX2M9PLRT", time.Now().Add(time.Minute))
		require.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/livez":
			_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Version: "dev"})
		case "/readyz":
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(HealthResponse{Status: "degraded"})
		}
	}))
	defer srv.Close()

	client := NewSDKClient(srv.URL)

	live, err := client.GetLiveness(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	_, err = client.GetReadiness(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

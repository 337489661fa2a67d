package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/pairing/internal/pairing/store"
	"github.com/aussiebroadwan/pairing/pkg/httpx"
	"github.com/aussiebroadwan/pairing/pkg/jwtx"
	"github.com/aussiebroadwan/pairing/pkg/pairingsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the code store connection and that token verification keys are loaded
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	pairingsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	pairingsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys jwtx.KeySource,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &pairingsdk.HealthChecks{
			Database: "ok",
			Keys:     "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if !keys.IsReady() {
			checks.Keys = "error: no verification keys loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, pairingsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

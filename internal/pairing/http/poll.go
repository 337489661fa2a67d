package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/pairing/internal/pairing/service"
	"github.com/aussiebroadwan/pairing/pkg/httpx"
	"github.com/aussiebroadwan/pairing/pkg/pairingsdk"
	"github.com/aussiebroadwan/pairing/pkg/slogx"
)

// ClaimStatusHandler serves the endpoint a waiting web client polls.
type ClaimStatusHandler struct {
	PairingService *service.PairingService
}

// ServeHTTP godoc
//
//	@Summary		Check Claim Status
//	@Description	Reports whether a pairing code has been claimed and, once it has, the session reference created for the claim.
//	@Description	Expired but unclaimed codes still answer claimed=false until they are swept.
//	@Tags			Pairing
//	@Produce		json
//	@Param			code	path		string							true	"Pairing code"
//	@Success		200		{object}	pairingsdk.ClaimStatusResponse	"claimed, sessionRef, expiresAt"
//	@Failure		404		{object}	pairingsdk.ErrorResponse		"error, error_description"
//	@Failure		429		{object}	pairingsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	pairingsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/pairing/codes/{code} [get].
func (h *ClaimStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	status, err := h.PairingService.CheckClaim(ctx, r.PathValue("code"))
	if err != nil {
		if errors.Is(err, service.ErrCodeNotFound) {
			pairingsdk.ErrCodeNotFound.WriteError(w)
			return
		}
		log.Error("failed to check claim status", "err", err)
		pairingsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pairingsdk.ClaimStatusResponse{
		Claimed:    status.Claimed,
		SessionRef: status.SessionRef,
		ExpiresAt:  status.ExpiresAt,
	})
}

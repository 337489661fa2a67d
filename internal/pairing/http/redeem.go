package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/pairing/internal/pairing/service"
	"github.com/aussiebroadwan/pairing/pkg/httpx"
	"github.com/aussiebroadwan/pairing/pkg/pairingsdk"
	"github.com/aussiebroadwan/pairing/pkg/slogx"
)

// RedeemHandler lets an authenticated device claim a scanned code. The
// claimant is the bearer token subject.
type RedeemHandler struct {
	PairingService *service.PairingService
}

// ServeHTTP godoc
//
//	@Summary		Redeem Pairing Code
//	@Description	Claims a pairing code for the authenticated device and creates the session the waiting web client picks up.
//	@Description	Exactly one of any number of concurrent redemptions of the same code succeeds.
//	@Tags			Pairing
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		pairingsdk.RedeemRequest	true	"code and optional claimantIdentity"
//	@Success		200		{object}	pairingsdk.RedeemResponse	"sessionRef"
//	@Failure		400		{object}	pairingsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	pairingsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	pairingsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	pairingsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	pairingsdk.ErrorResponse	"error, error_description"
//	@Failure		410		{object}	pairingsdk.ErrorResponse	"error, error_description"
//	@Failure		429		{object}	pairingsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	pairingsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/pairing/redeem [post].
func (h *RedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	subject, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		pairingsdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req pairingsdk.RedeemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		pairingsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		pairingsdk.ErrInvalidRequest.WithDescription("code is required").WriteError(w)
		return
	}

	claimant := strings.TrimSpace(req.ClaimantIdentity)
	if claimant == "" {
		claimant = subject
	}
	if claimant != subject {
		log.Warn("claimant identity does not match token subject", "claimant", claimant)
		pairingsdk.ErrAccessDenied.WriteError(w)
		return
	}

	ref, err := h.PairingService.RedeemCode(ctx, req.Code, claimant)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCodeNotFound):
			pairingsdk.ErrCodeNotFound.WriteError(w)
		case errors.Is(err, service.ErrCodeExpired):
			pairingsdk.ErrCodeExpired.WriteError(w)
		case errors.Is(err, service.ErrCodeAlreadyClaimed):
			pairingsdk.ErrCodeAlreadyClaimed.WriteError(w)
		case errors.Is(err, service.ErrInvalidClaimant):
			pairingsdk.ErrInvalidRequest.WithDescription("claimant identity is required").WriteError(w)
		default:
			log.Error("failed to redeem pairing code", "err", err)
			pairingsdk.ErrServerError.WithDescription("Failed to redeem pairing code").WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pairingsdk.RedeemResponse{SessionRef: ref})
}

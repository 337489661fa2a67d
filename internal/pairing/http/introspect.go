package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/pairing/internal/pairing/service"
	"github.com/aussiebroadwan/pairing/pkg/httpx"
	"github.com/aussiebroadwan/pairing/pkg/pairingsdk"
	"github.com/aussiebroadwan/pairing/pkg/slogx"
)

// IntrospectHandler serves POST /v1/pairing/sessions/introspect, modelled on
// RFC 7662: an unknown or expired reference answers only {"active": false}.
type IntrospectHandler struct {
	PairingService *service.PairingService
}

// ServeHTTP godoc
//
//	@Summary		Introspect Pairing Session
//	@Description	Resolves a session reference to the claimant it is bound to. Requires the pairing:introspect scope.
//	@Tags			Pairing
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		pairingsdk.IntrospectRequest	true	"sessionRef"
//	@Success		200		{object}	pairingsdk.IntrospectResponse	"active, claimant, code, expiresAt"
//	@Failure		400		{object}	pairingsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	pairingsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	pairingsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	pairingsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/pairing/sessions/introspect [post].
func (h *IntrospectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req pairingsdk.IntrospectRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		pairingsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	if req.SessionRef == "" {
		pairingsdk.ErrInvalidRequest.WithDescription("sessionRef is required").WriteError(w)
		return
	}

	session, err := h.PairingService.ResolveSession(ctx, req.SessionRef)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			httpx.WriteJSON(w, http.StatusOK, pairingsdk.IntrospectResponse{Active: false})
			return
		}
		log.Error("failed to introspect pairing session", "err", err)
		pairingsdk.ErrServerError.WriteError(w)
		return
	}

	expiresAt := session.ExpiresAt
	httpx.WriteJSON(w, http.StatusOK, pairingsdk.IntrospectResponse{
		Active:    true,
		Claimant:  session.Claimant,
		Code:      session.Code,
		ExpiresAt: &expiresAt,
	})
}

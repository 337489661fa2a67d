package http

import (
	"net/http"

	"github.com/aussiebroadwan/pairing/internal/pairing/service"
	"github.com/aussiebroadwan/pairing/pkg/httpx"
	"github.com/aussiebroadwan/pairing/pkg/pairingsdk"
	"github.com/aussiebroadwan/pairing/pkg/slogx"
)

type IssueCodeHandler struct {
	PairingService *service.PairingService
}

// ServeHTTP godoc
//
//	@Summary		Issue Pairing Code
//	@Description	Generates a fresh one-time pairing code for a web client to render as a QR image.
//	@Description	The code expires five minutes after issue.
//	@Tags			Pairing
//	@Produce		json
//	@Success		200	{object}	pairingsdk.IssueCodeResponse	"code, expiresAt"
//	@Failure		429	{object}	pairingsdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	pairingsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/pairing/codes [post].
func (h *IssueCodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	link, err := h.PairingService.IssueCode(ctx)
	if err != nil {
		// Collisions past the retry bound and storage faults are both
		// transient from the client's point of view.
		log.Error("failed to issue pairing code", "err", err)
		pairingsdk.ErrServerError.WithDescription("Failed to issue pairing code").WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pairingsdk.IssueCodeResponse{
		Code:      link.Code,
		ExpiresAt: link.ExpiresAt,
	})
}

package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/skip2/go-qrcode"

	"github.com/lodgeline/lodgeline/internal/invites/backend"
	"github.com/lodgeline/lodgeline/pkg/httpx"
	"github.com/lodgeline/lodgeline/pkg/invitesdk"
	"github.com/lodgeline/lodgeline/pkg/slogx"
)

type InviteQRHandler struct {
	Backend backend.CodeStore

	// PublicBaseURL is the externally reachable join URL prefix encoded
	// into the QR image.
	PublicBaseURL string
}

// ServeHTTP godoc
//
//	@Summary		Invite Code QR Image
//	@Description	Render a PNG QR of the public join link for a code, so landlords can print or message it. Owner-only.
//	@Tags			Invites
//	@Produce		png
//	@Param			id	path		string	true	"Invite code id"
//	@Success		200	{file}		binary
//	@Failure		404	{object}	invitesdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/invites/{id}/qr [get].
func (h *InviteQRHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	code, err := h.Backend.GetOwned(ctx, r.PathValue("id"), httpx.AccountID(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	joinURL := fmt.Sprintf("%s/join?code=%s", h.PublicBaseURL, url.QueryEscape(code.Code))
	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		log.Error("qr encoding failed", "error", err)
		invitesdk.NewAPIError(http.StatusInternalServerError, invitesdk.ErrorCodeServerError,
			"internal server error").WriteError(w)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

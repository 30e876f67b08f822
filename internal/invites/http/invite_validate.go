package http

import (
	"encoding/json"
	"net/http"

	"github.com/lodgeline/lodgeline/internal/invites/backend"
	"github.com/lodgeline/lodgeline/pkg/httpx"
	"github.com/lodgeline/lodgeline/pkg/invitesdk"
)

type InviteValidateHandler struct {
	Backend backend.CodeStore
}

// ServeHTTP godoc
//
//	@Summary		Validate Invite Code
//	@Description	Check whether a code would redeem right now, without consuming it. Invalid codes are a 200 with is_valid=false and a reason; only infrastructure faults produce error statuses.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invitesdk.ValidateRequest	true	"Validate request"
//	@Success		200		{object}	invitesdk.ValidateResponse
//	@Failure		400		{object}	invitesdk.APIError
//	@Failure		503		{object}	invitesdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/invites/validate [post].
func (h *InviteValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req invitesdk.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	res, err := h.Backend.Validate(ctx, req.Code, httpx.Email(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := invitesdk.ValidateResponse{
		IsValid: res.Valid,
		Reason:  res.Reason,
	}
	if res.Valid {
		resp.Code = res.Code
		resp.PropertyID = res.PropertyID
		resp.PropertyName = res.PropertyName
		resp.UnitID = res.UnitID
		resp.RestrictedEmail = res.RestrictedEmail
		expires := res.ExpiresAt
		resp.ExpiresAt = &expires
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

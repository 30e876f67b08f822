package http

import (
	"encoding/json"
	"net/http"

	"github.com/lodgeline/lodgeline/internal/invites/backend"
	"github.com/lodgeline/lodgeline/pkg/httpx"
	"github.com/lodgeline/lodgeline/pkg/invitesdk"
)

type InviteRedeemHandler struct {
	Backend backend.CodeStore
}

// ServeHTTP godoc
//
//	@Summary		Redeem Invite Code
//	@Description	Consume a code for the authenticated tenant: marks it used, creates the tenancy, and updates the tenant's current-property pointer, atomically. A used code fails with already_used and a used_by_you hint so a retry after a timeout can recognise its own earlier success.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invitesdk.RedeemRequest	true	"Redeem request"
//	@Success		200		{object}	invitesdk.RedeemResponse
//	@Failure		400		{object}	invitesdk.APIError
//	@Failure		403		{object}	invitesdk.APIError
//	@Failure		404		{object}	invitesdk.APIError
//	@Failure		409		{object}	invitesdk.APIError
//	@Failure		410		{object}	invitesdk.APIError
//	@Failure		503		{object}	invitesdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/invites/redeem [post].
func (h *InviteRedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req invitesdk.RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	outcome, err := h.Backend.Redeem(ctx, req.Code, httpx.AccountID(ctx), httpx.Email(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitesdk.RedeemResponse{
		Invite:  toWireInvite(outcome.Code),
		Tenancy: toWireTenancy(outcome.Tenancy),
	})
}

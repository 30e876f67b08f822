package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lodgeline/lodgeline/internal/invites/backend"
	"github.com/lodgeline/lodgeline/pkg/httpx"
	"github.com/lodgeline/lodgeline/pkg/invitesdk"
)

type InviteRevokeHandler struct {
	Backend backend.CodeStore
}

// ServeHTTP godoc
//
//	@Summary		Revoke Invite Code
//	@Description	Invalidate an active code the landlord issued. Terminal codes are left as they are: a used code cannot be un-used by revoking it.
//	@Tags			Invites
//	@Produce		json
//	@Param			id	path		string	true	"Invite code id"
//	@Success		200	{object}	invitesdk.InviteCode
//	@Failure		404	{object}	invitesdk.APIError
//	@Failure		409	{object}	invitesdk.APIError
//	@Failure		410	{object}	invitesdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/invites/{id}/revoke [post].
func (h *InviteRevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code, err := h.Backend.Revoke(ctx, r.PathValue("id"), httpx.AccountID(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireInvite(code))
}

type InviteExtendHandler struct {
	Backend backend.CodeStore
}

// ServeHTTP godoc
//
//	@Summary		Extend Invite Code
//	@Description	Push an active code's deadline out by the given number of days, counted from the later of now and the current deadline.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Invite code id"
//	@Param			request	body		invitesdk.ExtendRequest	true	"Extend request"
//	@Success		200		{object}	invitesdk.InviteCode
//	@Failure		400		{object}	invitesdk.APIError
//	@Failure		404		{object}	invitesdk.APIError
//	@Failure		409		{object}	invitesdk.APIError
//	@Failure		410		{object}	invitesdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/invites/{id}/extend [post].
func (h *InviteExtendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req invitesdk.ExtendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	code, err := h.Backend.Extend(ctx, r.PathValue("id"), httpx.AccountID(ctx), req.Days)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireInvite(code))
}

type InvitePurgeHandler struct {
	Backend backend.CodeStore
}

// ServeHTTP godoc
//
//	@Summary		Purge Terminal Invite Codes
//	@Description	Delete used, expired, and revoked codes untouched for at least older_than_days days. This is the only operation that deletes code records.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invitesdk.PurgeRequest	true	"Purge request"
//	@Success		200		{object}	invitesdk.PurgeResponse
//	@Failure		400		{object}	invitesdk.APIError
//	@Failure		503		{object}	invitesdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/invites/purge [post].
func (h *InvitePurgeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req invitesdk.PurgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}
	if req.OlderThanDays < 0 {
		invitesdk.NewAPIError(http.StatusBadRequest, invitesdk.ErrorCodeInvalidRequest,
			"older_than_days must not be negative").WriteError(w)
		return
	}

	before := time.Now().UTC().AddDate(0, 0, -req.OlderThanDays)
	deleted, err := h.Backend.Purge(ctx, before)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitesdk.PurgeResponse{Deleted: deleted})
}

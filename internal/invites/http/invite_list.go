package http

import (
	"net/http"

	"github.com/lodgeline/lodgeline/internal/invites/backend"
	"github.com/lodgeline/lodgeline/pkg/httpx"
	"github.com/lodgeline/lodgeline/pkg/invitesdk"
)

type InviteListHandler struct {
	Backend backend.CodeStore
}

// ServeHTTP godoc
//
//	@Summary		List Invite Codes
//	@Description	List every code the authenticated landlord has issued, newest first.
//	@Tags			Invites
//	@Produce		json
//	@Success		200	{object}	invitesdk.InviteListResponse
//	@Failure		503	{object}	invitesdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/invites [get].
func (h *InviteListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	codes, err := h.Backend.ListByLandlord(ctx, httpx.AccountID(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitesdk.InviteListResponse{Invites: toWireInvites(codes)})
}

type PropertyInviteListHandler struct {
	Backend backend.CodeStore
}

// ServeHTTP godoc
//
//	@Summary		List Property Invite Codes
//	@Description	List a property's codes, newest first. Owner-only.
//	@Tags			Invites
//	@Produce		json
//	@Param			id	path		string	true	"Property id"
//	@Success		200	{object}	invitesdk.InviteListResponse
//	@Failure		404	{object}	invitesdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/invites [get].
func (h *PropertyInviteListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	codes, err := h.Backend.ListByProperty(ctx, r.PathValue("id"), httpx.AccountID(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitesdk.InviteListResponse{Invites: toWireInvites(codes)})
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/lodgeline/lodgeline/internal/invites/backend"
	"github.com/lodgeline/lodgeline/internal/invites/service"
	"github.com/lodgeline/lodgeline/pkg/httpx"
	"github.com/lodgeline/lodgeline/pkg/invitesdk"
)

type InviteMintHandler struct {
	Backend backend.CodeStore
}

// ServeHTTP godoc
//
//	@Summary		Mint Invite Code
//	@Description	Generate a short invite code a tenant can redeem to join one of the landlord's properties. Codes default to a 7-day expiry and may optionally be bound to a unit and a tenant email.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invitesdk.MintRequest	true	"Mint request"
//	@Success		201		{object}	invitesdk.InviteCode
//	@Failure		400		{object}	invitesdk.APIError
//	@Failure		404		{object}	invitesdk.APIError
//	@Failure		503		{object}	invitesdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InviteMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req invitesdk.MintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	code, err := h.Backend.Generate(ctx, service.GenerateParams{
		PropertyID:      req.PropertyID,
		LandlordID:      httpx.AccountID(ctx),
		UnitID:          req.UnitID,
		RestrictedEmail: req.RestrictedEmail,
		ExpirationDays:  req.ExpirationDays,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWireInvite(code))
}

type InviteBulkMintHandler struct {
	Backend backend.CodeStore
}

// ServeHTTP godoc
//
//	@Summary		Bulk Mint Invite Codes
//	@Description	Generate up to 50 invite codes sharing the same parameters. Items succeed or fail independently; the response reports every position.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invitesdk.BulkMintRequest	true	"Bulk mint request"
//	@Success		207		{object}	invitesdk.BulkMintResponse
//	@Failure		400		{object}	invitesdk.APIError
//	@Failure		404		{object}	invitesdk.APIError
//	@Failure		503		{object}	invitesdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/invites/bulk [post].
func (h *InviteBulkMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req invitesdk.BulkMintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	items, err := h.Backend.GenerateBulk(ctx, service.GenerateParams{
		PropertyID:      req.PropertyID,
		LandlordID:      httpx.AccountID(ctx),
		UnitID:          req.UnitID,
		RestrictedEmail: req.RestrictedEmail,
		ExpirationDays:  req.ExpirationDays,
	}, req.Count)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := invitesdk.BulkMintResponse{Items: make([]invitesdk.BulkMintItem, len(items))}
	for i, item := range items {
		if item.Code != nil {
			wire := toWireInvite(*item.Code)
			resp.Items[i] = invitesdk.BulkMintItem{Invite: &wire}
			resp.Succeeded++
		} else {
			resp.Items[i] = invitesdk.BulkMintItem{Error: item.Err.Error()}
			resp.Failed++
		}
	}

	httpx.WriteJSON(w, http.StatusMultiStatus, resp)
}

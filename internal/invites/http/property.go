package http

import (
	"encoding/json"
	"net/http"

	"github.com/lodgeline/lodgeline/internal/invites/service"
	"github.com/lodgeline/lodgeline/pkg/httpx"
	"github.com/lodgeline/lodgeline/pkg/invitesdk"
)

type PropertyCreateHandler struct {
	PropertyService *service.PropertyService
}

// ServeHTTP godoc
//
//	@Summary		Create Property
//	@Description	Register a property under the authenticated landlord. Codes may only be minted for registered properties.
//	@Tags			Properties
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invitesdk.CreatePropertyRequest	true	"Create request"
//	@Success		201		{object}	invitesdk.Property
//	@Failure		400		{object}	invitesdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/properties [post].
func (h *PropertyCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req invitesdk.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	p, err := h.PropertyService.Create(ctx, httpx.AccountID(ctx), req.Name, req.Address)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWireProperty(p))
}

type PropertyGetHandler struct {
	PropertyService *service.PropertyService
}

// ServeHTTP godoc
//
//	@Summary		Get Property
//	@Description	Fetch one of the authenticated landlord's properties.
//	@Tags			Properties
//	@Produce		json
//	@Param			id	path		string	true	"Property id"
//	@Success		200	{object}	invitesdk.Property
//	@Failure		404	{object}	invitesdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/properties/{id} [get].
func (h *PropertyGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.PropertyService.Get(ctx, r.PathValue("id"), httpx.AccountID(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireProperty(p))
}

type PropertyListHandler struct {
	PropertyService *service.PropertyService
}

// ServeHTTP godoc
//
//	@Summary		List Properties
//	@Description	List the authenticated landlord's properties, newest first.
//	@Tags			Properties
//	@Produce		json
//	@Success		200	{object}	invitesdk.PropertyListResponse
//	@Security		BearerAuth
//	@Router			/v1/properties [get].
func (h *PropertyListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ps, err := h.PropertyService.ListByLandlord(ctx, httpx.AccountID(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitesdk.PropertyListResponse{Properties: toWireProperties(ps)})
}

type PropertyTenancyListHandler struct {
	PropertyService *service.PropertyService
}

// ServeHTTP godoc
//
//	@Summary		List Property Tenancies
//	@Description	List the tenancies on one of the authenticated landlord's properties, newest first.
//	@Tags			Tenancies
//	@Produce		json
//	@Param			id	path		string	true	"Property id"
//	@Success		200	{object}	invitesdk.TenancyListResponse
//	@Failure		404	{object}	invitesdk.APIError
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/tenancies [get].
func (h *PropertyTenancyListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ts, err := h.PropertyService.ListTenanciesByProperty(ctx, r.PathValue("id"), httpx.AccountID(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitesdk.TenancyListResponse{Tenancies: toWireTenancies(ts)})
}

type TenancyListHandler struct {
	PropertyService *service.PropertyService
}

// ServeHTTP godoc
//
//	@Summary		List My Tenancies
//	@Description	List the authenticated tenant's tenancies, newest first.
//	@Tags			Tenancies
//	@Produce		json
//	@Success		200	{object}	invitesdk.TenancyListResponse
//	@Security		BearerAuth
//	@Router			/v1/tenancies [get].
func (h *TenancyListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ts, err := h.PropertyService.ListTenanciesByTenant(ctx, httpx.AccountID(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invitesdk.TenancyListResponse{Tenancies: toWireTenancies(ts)})
}

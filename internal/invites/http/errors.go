package http

import (
	"errors"
	"net/http"

	"github.com/lodgeline/lodgeline/internal/invites/service"
	"github.com/lodgeline/lodgeline/internal/invites/store"
	"github.com/lodgeline/lodgeline/pkg/invitesdk"
	"github.com/lodgeline/lodgeline/pkg/slogx"
)

// writeServiceError maps a service error onto the wire taxonomy. Business
// outcomes keep their short non-leaking messages; anything unexpected is a
// 500 with no detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var used *service.AlreadyUsedError
	if errors.As(err, &used) {
		apiErr := invitesdk.NewAPIError(http.StatusConflict, invitesdk.ErrorCodeAlreadyUsed, used.Error())
		apiErr.UsedByYou = used.UsedByYou
		apiErr.WriteError(w)
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		invitesdk.NewAPIError(http.StatusBadRequest, invitesdk.ErrorCodeInvalidRequest, err.Error()).WriteError(w)
	case errors.Is(err, service.ErrCodeNotFound), errors.Is(err, service.ErrPropertyNotFound):
		invitesdk.NewAPIError(http.StatusNotFound, invitesdk.ErrorCodeNotFound, err.Error()).WriteError(w)
	case errors.Is(err, service.ErrCodeExpired):
		invitesdk.NewAPIError(http.StatusGone, invitesdk.ErrorCodeExpired, err.Error()).WriteError(w)
	case errors.Is(err, service.ErrCodeRevoked):
		invitesdk.NewAPIError(http.StatusGone, invitesdk.ErrorCodeRevoked, err.Error()).WriteError(w)
	case errors.Is(err, service.ErrEmailMismatch):
		invitesdk.NewAPIError(http.StatusForbidden, invitesdk.ErrorCodeEmailMismatch, err.Error()).WriteError(w)
	case errors.Is(err, service.ErrTenancyExists):
		invitesdk.NewAPIError(http.StatusConflict, invitesdk.ErrorCodeTenancyExists, err.Error()).WriteError(w)
	case errors.Is(err, store.ErrUnavailable):
		invitesdk.NewAPIError(http.StatusServiceUnavailable, invitesdk.ErrorCodeUnavailable, "service temporarily unavailable").WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", "error", err)
		invitesdk.NewAPIError(http.StatusInternalServerError, invitesdk.ErrorCodeServerError, "internal server error").WriteError(w)
	}
}

func writeInvalidBody(w http.ResponseWriter) {
	invitesdk.NewAPIError(http.StatusBadRequest, invitesdk.ErrorCodeInvalidRequest, "invalid JSON body").WriteError(w)
}

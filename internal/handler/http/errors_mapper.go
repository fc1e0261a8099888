package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/idea-brand-coach/internal/app"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/service"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
	"github.com/MKhiriev/idea-brand-coach/internal/utils"
	"github.com/MKhiriev/idea-brand-coach/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order, so specific validation causes come
// before the generic ErrInvalidDataProvided they are wrapped in.
var errorResponses = []errorResponse{
	{validators.ErrInvalidFieldIdentifier, http.StatusBadRequest, app.MsgInvalidFieldIdentifier},
	{validators.ErrInvalidCategory, http.StatusBadRequest, app.MsgUnknownFieldCategory},
	{validators.ErrEmptyContent, http.StatusBadRequest, app.MsgEmptyMessage},
	{validators.ErrInvalidMetadata, http.StatusBadRequest, app.MsgInvalidMetadata},
	{validators.ErrInvalidTitle, http.StatusBadRequest, app.MsgEmptyTitle},
	{service.ErrUnknownChatbotType, http.StatusBadRequest, app.MsgUnknownChatbotType},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{utils.ErrEmptyBody, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{store.ErrInvalidRecord, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrFieldNotFound, http.StatusNotFound, app.MsgFieldNotFound},
	{store.ErrSessionNotFound, http.StatusNotFound, app.MsgSessionNotFound},

	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},

	{service.ErrAssistantUnavailable, http.StatusBadGateway, app.MsgAssistantUnavailable},
	{service.ErrUnhealthy, http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable)},
}

// responseFromError returns the status and the body message for err.
// Anything unknown, including the store's SQL errors, is a 500.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

// writeError logs err with the request logger and answers with the mapped
// status and message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, funcName, msg string) {
	status, message := responseFromError(err)

	logger.FromRequest(r).Err(err).
		Str("func", funcName).
		Int("status", status).
		Msg(msg)

	http.Error(w, message, status)
}

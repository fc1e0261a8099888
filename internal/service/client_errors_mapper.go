// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/idea-brand-coach/internal/adapter"
	"github.com/MKhiriev/idea-brand-coach/internal/app"
	"github.com/MKhiriev/idea-brand-coach/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if mapped := businessError(err); mapped != nil {
		return fmt.Errorf("%w: %w", mapped, err)
	}
	return err
}

func businessError(err error) error {
	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgUnknownChatbotType:
			return ErrUnknownChatbotType
		case app.MsgInvalidDataProvided, app.MsgEmptyMessage, app.MsgInvalidMetadata,
			app.MsgEmptyTitle, app.MsgUnknownFieldCategory, app.MsgInvalidFieldIdentifier, app.MsgHashMismatch:
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsExpiredOrInvalid, app.MsgNoUserIDProvided:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgSessionNotFound:
			return store.ErrSessionNotFound
		case app.MsgFieldNotFound:
			return store.ErrFieldNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return store.ErrLoginAlreadyExists
		}

	case errors.Is(err, adapter.ErrBadGateway):
		switch msg {
		case app.MsgAssistantUnavailable:
			return ErrAssistantUnavailable
		case app.MsgRegistrationFailed:
			return ErrRegisterOnServer
		case app.MsgLoginFailed:
			return ErrLoginOnServer
		}

	case errors.Is(err, adapter.ErrNotAuthenticated):
		return ErrNotLoggedIn
	}

	return nil
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

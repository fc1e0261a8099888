// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// brand coach server handlers and the client error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. The client matches on them to recover the business
// error, so the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID but
	// none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgRegistrationFailed is returned when account creation fails for a
	// reason other than a taken login.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when issuing a token fails.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgHashMismatch is returned when the HashSHA256 header does not match
	// the request body.
	MsgHashMismatch = "request hash mismatch"
)

// Brand field messages.
const (
	MsgFieldNotFound          = "field not found"
	MsgUnknownFieldCategory   = "unknown field category"
	MsgInvalidFieldIdentifier = "invalid field identifier"
)

// Chat messages.
const (
	MsgSessionNotFound    = "chat session not found"
	MsgUnknownChatbotType = "unknown chatbot type"
	MsgEmptyMessage       = "message content is empty"
	MsgInvalidMetadata    = "invalid message metadata"
	MsgEmptyTitle         = "title is empty"

	// MsgAssistantUnavailable is returned when the AI provider failed; no
	// message of the turn was stored.
	MsgAssistantUnavailable = "assistant is unavailable"
)

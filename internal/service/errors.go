package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrUnhealthy             = errors.New("service is unhealthy")
)

// Brand fields and chat.
var (
	ErrUnknownChatbotType   = errors.New("unknown chatbot type")
	ErrAssistantUnavailable = errors.New("assistant is unavailable")
	ErrNoCompletionService  = errors.New("no completion service configured")
)

// Client side.
var (
	ErrRegisterOnServer = errors.New("error registering user on server")
	ErrLoginOnServer    = errors.New("error logging in on server")
	ErrNotLoggedIn      = errors.New("not logged in")

	// ErrSendInProgress is returned when a send for the same session has
	// not settled yet.
	ErrSendInProgress = errors.New("a message is already being sent in this session")

	// ErrNoSessionSelected is returned by operations that act on the
	// current session when there is none.
	ErrNoSessionSelected = errors.New("no chat session selected")

	ErrAutoCreateDisabled = errors.New("no chat session and automatic creation is disabled")
	ErrEngineClosed       = errors.New("field engine is closed")
)

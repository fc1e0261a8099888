package client

import "errors"

var (
	// ErrUsage is returned when the command line does not match any command.
	ErrUsage = errors.New("invalid command line")
)

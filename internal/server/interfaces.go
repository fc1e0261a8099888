package server

import "context"

// Server is the lifecycle of the brand coach backend.
type Server interface {
	// RunServer serves HTTP and runs the workers until ctx is cancelled or
	// one of them fails, then shuts everything down.
	RunServer(ctx context.Context) error

	// Shutdown stops the HTTP listener, waiting for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}

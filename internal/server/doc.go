// Package server runs the brand coach backend: the HTTP listener and the
// background workers share one errgroup and stop together on SIGINT,
// SIGTERM or SIGQUIT.
package server

// Package http serves the brand coach REST API: auth, brand fields and chat
// sessions under /api.
//
// Authenticated routes expect a bearer token and, when a hash key is
// configured, a HashSHA256 header over the request body. Errors are answered
// with a status and one of the internal/app message texts, which the client
// adapter maps back to sentinel errors.
package http

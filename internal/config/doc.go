// Package config loads, merges and validates the brand coach configuration.
//
// Sources, lowest priority first:
//  1. Built-in defaults
//  2. JSON config file (-c / CONFIG)
//  3. Environment variables, plus an optional .env file
//  4. Command-line flags
//
// [GetStructuredConfig] returns the server view, [GetClientConfig] the
// client view together with the remaining command-line arguments.
package config

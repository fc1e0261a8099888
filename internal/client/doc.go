// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the brand coach command line client.
//
// Every invocation runs one command against the local-first services:
// field edits land in the local SQLite store before they are pushed, and
// chat commands go through the session orchestrator.
package client

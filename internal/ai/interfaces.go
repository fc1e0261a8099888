// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ai talks to an OpenAI compatible API: chat completions for the
// coach personas and session titles, and the files and vector store
// endpoints backing the knowledge index.
package ai

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/ai_mock.go -package=mock

// CompletionService produces assistant replies.
type CompletionService interface {
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
}

// KnowledgeIndex stores documents in a vector store for retrieval.
type KnowledgeIndex interface {
	// UploadDocument stores content under name and returns the file id.
	UploadDocument(ctx context.Context, name, content string) (string, error)
	// RemoveDocument deletes a previously uploaded file. Missing files are
	// not an error.
	RemoveDocument(ctx context.Context, fileID string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/utils"
)

const openAIBetaHeader = "OpenAI-Beta"

// Client implements [CompletionService] and [KnowledgeIndex] over the
// OpenAI REST API.
type Client struct {
	client *utils.HTTPClient

	model         string
	titleModel    string
	vectorStoreID string

	logger *logger.Logger
}

// NewClient builds a client from the AI configuration group.
func NewClient(cfg config.AI, log *logger.Logger) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("ai client: empty base url")
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	titleModel := cfg.TitleModel
	if titleModel == "" {
		titleModel = cfg.Model
	}

	log.Debug().Str("func", "ai.NewClient").Str("base_url", baseURL).Str("model", cfg.Model).Msg("ai client created")

	return &Client{
		client:        client,
		model:         cfg.Model,
		titleModel:    titleModel,
		vectorStoreID: cfg.VectorStoreID,
		logger:        log,
	}, nil
}

func (c *Client) modelFor(p Purpose) string {
	if p == PurposeTitle {
		return c.titleModel
	}
	return c.model
}

// Complete implements [CompletionService].
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (Completion, error) {
	log := logger.FromContext(ctx)

	body := chatCompletionRequest{
		Model:       c.modelFor(req.Purpose),
		Messages:    req.Messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	var result chatCompletionResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		log.Err(err).Str("func", "Client.Complete").Str("model", body.Model).Msg("completion request failed")
		return Completion{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "Client.Complete").Str("model", body.Model).Int("status", resp.StatusCode()).Msg("completion rejected")
		return Completion{}, err
	}

	if len(result.Choices) == 0 {
		return Completion{}, ErrEmptyCompletion
	}

	return Completion{
		Content:      result.Choices[0].Message.Content,
		FinishReason: result.Choices[0].FinishReason,
		Model:        result.Model,
	}, nil
}

// KnowledgeEnabled reports whether a vector store is configured.
func (c *Client) KnowledgeEnabled() bool {
	return c.vectorStoreID != ""
}

// UploadDocument implements [KnowledgeIndex]: the content is uploaded as a
// file and then attached to the configured vector store.
func (c *Client) UploadDocument(ctx context.Context, name, content string) (string, error) {
	if !c.KnowledgeEnabled() {
		return "", ErrKnowledgeIndexDisabled
	}
	log := logger.FromContext(ctx)

	var file fileObject
	resp, err := c.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{"purpose": "assistants"}).
		SetFileReader("file", name, strings.NewReader(content)).
		SetResult(&file).
		Post("/files")
	if err != nil {
		log.Err(err).Str("func", "Client.UploadDocument").Str("name", name).Msg("file upload failed")
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if file.ID == "" {
		return "", fmt.Errorf("%w: file upload returned no id", ErrRequestRejected)
	}

	resp, err = c.client.R().
		SetContext(ctx).
		SetHeader(openAIBetaHeader, "assistants=v2").
		SetHeader("Content-Type", "application/json").
		SetBody(vectorStoreFileRequest{FileID: file.ID}).
		Post("/vector_stores/" + c.vectorStoreID + "/files")
	if err == nil {
		err = mapHTTPError(resp)
	}
	if err != nil {
		log.Err(err).Str("func", "Client.UploadDocument").Str("file_id", file.ID).Msg("attaching file to vector store failed")
		// drop the unattached file
		if rmErr := c.deleteFile(ctx, file.ID); rmErr != nil {
			log.Warn().Err(rmErr).Str("file_id", file.ID).Msg("failed to remove orphaned file")
		}
		return "", err
	}

	return file.ID, nil
}

// RemoveDocument implements [KnowledgeIndex].
func (c *Client) RemoveDocument(ctx context.Context, fileID string) error {
	if !c.KnowledgeEnabled() {
		return ErrKnowledgeIndexDisabled
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader(openAIBetaHeader, "assistants=v2").
		Delete("/vector_stores/" + c.vectorStoreID + "/files/" + fileID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if resp.StatusCode() != http.StatusNotFound {
		if err = mapHTTPError(resp); err != nil {
			return err
		}
	}

	return c.deleteFile(ctx, fileID)
}

func (c *Client) deleteFile(ctx context.Context, fileID string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete("/files/" + fileID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}
	return mapHTTPError(resp)
}

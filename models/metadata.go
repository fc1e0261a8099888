// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MetadataKind discriminates the payload carried by [MessageMetadata].
type MetadataKind string

const (
	MetadataImageAttachments MetadataKind = "image_attachments"
	MetadataExtractedFields  MetadataKind = "extracted_fields"
)

var (
	ErrUnknownMetadataKind = errors.New("unknown message metadata kind")
	ErrEmptyMetadata       = errors.New("message metadata has no payload")
)

// ImageAttachment references an image uploaded alongside a user message.
type ImageAttachment struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type,omitempty"`
	Name     string `json:"name,omitempty"`
}

// ExtractedField is a field value the assistant proposed during a chat.
type ExtractedField struct {
	FieldIdentifier string        `json:"field_identifier"`
	Category        FieldCategory `json:"category"`
	Value           string        `json:"value"`
}

// MessageMetadata is a tagged variant: Kind selects which payload slice is
// meaningful. The zero value is invalid; use the constructors.
type MessageMetadata struct {
	Kind   MetadataKind
	Images []ImageAttachment
	Fields []ExtractedField
}

// NewImageAttachments builds image attachment metadata.
func NewImageAttachments(images ...ImageAttachment) *MessageMetadata {
	return &MessageMetadata{Kind: MetadataImageAttachments, Images: images}
}

// NewExtractedFields builds extracted field metadata.
func NewExtractedFields(fields ...ExtractedField) *MessageMetadata {
	return &MessageMetadata{Kind: MetadataExtractedFields, Fields: fields}
}

// Validate checks that the payload matches the kind.
func (m *MessageMetadata) Validate() error {
	switch m.Kind {
	case MetadataImageAttachments:
		if len(m.Images) == 0 || len(m.Fields) != 0 {
			return fmt.Errorf("%w: %s", ErrEmptyMetadata, m.Kind)
		}
	case MetadataExtractedFields:
		if len(m.Fields) == 0 || len(m.Images) != 0 {
			return fmt.Errorf("%w: %s", ErrEmptyMetadata, m.Kind)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMetadataKind, m.Kind)
	}
	return nil
}

type metadataEnvelope struct {
	Kind   MetadataKind      `json:"kind"`
	Images []ImageAttachment `json:"images,omitempty"`
	Fields []ExtractedField  `json:"fields,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
func (m MessageMetadata) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(metadataEnvelope{Kind: m.Kind, Images: m.Images, Fields: m.Fields})
}

// UnmarshalJSON implements [json.Unmarshaler]. Unknown kinds are rejected.
func (m *MessageMetadata) UnmarshalJSON(data []byte) error {
	var env metadataEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	decoded := MessageMetadata{Kind: env.Kind, Images: env.Images, Fields: env.Fields}
	if err := decoded.Validate(); err != nil {
		return err
	}

	*m = decoded
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FieldCategory groups brand fields by the IDEA framework step (or tool)
// that owns them.
type FieldCategory string

const (
	CategoryInsight     FieldCategory = "insight"
	CategoryDistinctive FieldCategory = "distinctive"
	CategoryEmpathy     FieldCategory = "empathy"
	CategoryAuthentic   FieldCategory = "authentic"
	CategoryAvatar      FieldCategory = "avatar"
	CategoryCanvas      FieldCategory = "canvas"
)

var fieldCategories = []FieldCategory{
	CategoryInsight,
	CategoryDistinctive,
	CategoryEmpathy,
	CategoryAuthentic,
	CategoryAvatar,
	CategoryCanvas,
}

// FieldCategories returns every known category in a stable order.
func FieldCategories() []FieldCategory {
	out := make([]FieldCategory, len(fieldCategories))
	copy(out, fieldCategories)
	return out
}

// Valid reports whether c is one of the known categories.
func (c FieldCategory) Valid() bool {
	for _, known := range fieldCategories {
		if c == known {
			return true
		}
	}
	return false
}

// FieldRecord is one persisted piece of user content as stored in the
// remote brand_fields table.
//
// At most one record per (UserID, FieldIdentifier) has IsCurrent set. An
// upsert rewrites that record in place; rows with IsCurrent == false are
// never returned to clients.
type FieldRecord struct {
	ID              string        `json:"id"`
	UserID          int64         `json:"-"`
	FieldIdentifier string        `json:"field_identifier"`
	Category        FieldCategory `json:"category"`
	Content         string        `json:"content"`
	IsCurrent       bool          `json:"is_current"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	// ExternalFileID and SyncedAt are maintained by the knowledge index
	// worker. Both are nil until the record was pushed at least once.
	ExternalFileID *string    `json:"external_file_id,omitempty"`
	SyncedAt       *time.Time `json:"synced_at,omitempty"`
}

// FieldUpsert is the payload of a replace-if-current-else-insert write.
type FieldUpsert struct {
	UserID          int64         `json:"-"`
	FieldIdentifier string        `json:"field_identifier"`
	Category        FieldCategory `json:"category"`
	Content         string        `json:"content"`
}

// ClearFieldsResponse is returned by the bulk clear endpoint.
type ClearFieldsResponse struct {
	Deleted int64 `json:"deleted"`
}

// SyncStatus is the state of a field's remote reconciliation.
type SyncStatus string

const (
	// SyncStatusSynced means the latest local revision is confirmed remotely.
	SyncStatusSynced SyncStatus = "synced"
	// SyncStatusSyncing means a remote write is in flight.
	SyncStatusSyncing SyncStatus = "syncing"
	// SyncStatusOffline means the remote store could not be reached.
	SyncStatusOffline SyncStatus = "offline"
	// SyncStatusError means the remote store rejected the write.
	SyncStatusError SyncStatus = "error"
)

// FieldState is a point-in-time snapshot of one field engine.
type FieldState struct {
	FieldIdentifier string
	Category        FieldCategory
	Content         string
	Status          SyncStatus
	Revision        uint64
	AckedRevision   uint64
	LastError       error
}

// Pending reports whether a local revision has not been confirmed yet.
func (s FieldState) Pending() bool {
	return s.Revision > s.AckedRevision
}

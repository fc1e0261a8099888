// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotificationLevel ranks a user-facing notification.
type NotificationLevel string

const (
	NotificationInfo  NotificationLevel = "info"
	NotificationError NotificationLevel = "error"
)

// Notification is a message surfaced to the user by the client runtime,
// typically after a failed chat operation.
type Notification struct {
	Level       NotificationLevel
	Title       string
	Description string
}

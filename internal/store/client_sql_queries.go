// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getLocalValue = `SELECT value FROM local_fields WHERE storage_key = ?;`

	setLocalValue = `
		INSERT INTO local_fields (storage_key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (storage_key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at;`

	deleteLocalValue = `DELETE FROM local_fields WHERE storage_key = ?;`

	deleteLocalPrefix = `DELETE FROM local_fields WHERE substr(storage_key, 1, length(?)) = ?;`

	saveLocalSession = `
		INSERT INTO local_session (id, user_id, token, saved_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE
		SET user_id = excluded.user_id, token = excluded.token, saved_at = excluded.saved_at;`

	loadLocalSession = `SELECT user_id, token FROM local_session WHERE id = 1;`

	clearLocalSession = `DELETE FROM local_session;`
)

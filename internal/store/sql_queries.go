package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/idea-brand-coach/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, name, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, created_at
    FROM users
    WHERE login = $1;`
)

const fieldColumns = `id, user_id, field_identifier, category, content, is_current,
		created_at, updated_at, external_file_id, synced_at`

var (
	replaceCurrentField = `
		UPDATE brand_fields
		SET category = $3, content = $4, updated_at = NOW()
		WHERE user_id = $1 AND field_identifier = $2 AND is_current
		RETURNING ` + fieldColumns + `;`

	insertCurrentField = `
		INSERT INTO brand_fields (id, user_id, field_identifier, category, content, is_current)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING ` + fieldColumns + `;`

	getCurrentField = `
		SELECT ` + fieldColumns + `
		FROM brand_fields
		WHERE user_id = $1 AND field_identifier = $2 AND is_current;`

	listUnsyncedFields = `
		SELECT ` + fieldColumns + `
		FROM brand_fields
		WHERE is_current AND (synced_at IS NULL OR synced_at < updated_at)
		ORDER BY updated_at ASC
		LIMIT $1;`
)

const (
	clearFields = `DELETE FROM brand_fields WHERE user_id = $1;`

	markFieldSynced = `
		UPDATE brand_fields
		SET external_file_id = $2, synced_at = GREATEST($3, updated_at)
		WHERE id = $1 AND updated_at = $4;`
)

const sessionColumns = `id, user_id, chatbot_type, title, conversation_type,
		field_id, field_label, page_context, created_at, updated_at`

var (
	createSession = `
		INSERT INTO chat_sessions (id, user_id, chatbot_type, title, conversation_type,
			field_id, field_label, page_context)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + sessionColumns + `;`

	getSession = `
		SELECT ` + sessionColumns + `
		FROM chat_sessions
		WHERE id = $1 AND user_id = $2;`

	updateSessionTitle = `
		UPDATE chat_sessions
		SET title = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + sessionColumns + `;`
)

const (
	deleteSession = `DELETE FROM chat_sessions WHERE id = $1 AND user_id = $2;`

	touchSession = `UPDATE chat_sessions SET updated_at = NOW() WHERE id = $1;`

	listMessages = `
		SELECT id, session_id, role, content, metadata, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at ASC, id ASC;`

	insertMessage = `
		INSERT INTO chat_messages (id, session_id, role, content, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at;`

	clearMessages = `DELETE FROM chat_messages WHERE session_id = $1;`
)

// buildListFieldsQuery selects the current fields of a user, optionally
// narrowed to one category.
func buildListFieldsQuery(userID int64, category models.FieldCategory) (string, []any, error) {
	builder := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(fieldColumns).
		From("brand_fields").
		Where(sq.Eq{"user_id": userID}).
		Where("is_current")

	if category != "" {
		builder = builder.Where(sq.Eq{"category": string(category)})
	}

	query, args, err := builder.OrderBy("category ASC", "field_identifier ASC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListSessionsQuery selects the sessions of a user for one chatbot
// type, most recently updated first.
func buildListSessionsQuery(userID int64, chatbotType models.ChatbotType) (string, []any, error) {
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(sessionColumns).
		From("chat_sessions").
		Where(sq.Eq{"user_id": userID, "chatbot_type": string(chatbotType)}).
		OrderBy("updated_at DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

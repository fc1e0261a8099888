// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ChatbotType selects the assistant persona a session belongs to.
type ChatbotType string

const (
	ChatbotIdeaFrameworkConsultant ChatbotType = "idea-framework-consultant"
	ChatbotBrandCoach              ChatbotType = "brand-coach"
	ChatbotFieldAssistant          ChatbotType = "field-assistant"
)

const (
	// DefaultSessionTitle is assigned to sessions created without a title.
	// A session still carrying it is eligible for generated titles.
	DefaultSessionTitle = "New Chat"

	// DefaultConversationType is assigned when the creator does not pass one.
	DefaultConversationType = "general"
)

// ChatSession is one conversation thread.
type ChatSession struct {
	ID               string      `json:"id"`
	UserID           int64       `json:"-"`
	ChatbotType      ChatbotType `json:"chatbot_type"`
	Title            string      `json:"title"`
	ConversationType string      `json:"conversation_type"`
	FieldID          *string     `json:"field_id,omitempty"`
	FieldLabel       *string     `json:"field_label,omitempty"`
	PageContext      *string     `json:"page_context,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// SessionCreate carries the optional attributes of a new session.
type SessionCreate struct {
	Title            string  `json:"title,omitempty"`
	ConversationType string  `json:"conversation_type,omitempty"`
	FieldID          *string `json:"field_id,omitempty"`
	FieldLabel       *string `json:"field_label,omitempty"`
	PageContext      *string `json:"page_context,omitempty"`
}

// CreateSessionRequest is the body of POST /api/chat/sessions.
type CreateSessionRequest struct {
	ChatbotType ChatbotType `json:"chatbot_type"`
	SessionCreate
}

// SessionUpdate lists the mutable attributes of a session. Only the title
// can change; chatbot type is fixed at creation.
type SessionUpdate struct {
	Title *string `json:"title,omitempty"`
}

// Role is the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// ChatMessage is one turn of a session. Messages are never mutated.
type ChatMessage struct {
	ID        string           `json:"id"`
	SessionID string           `json:"session_id"`
	Role      Role             `json:"role"`
	Content   string           `json:"content"`
	Metadata  *MessageMetadata `json:"metadata,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// SendOptions is the per-send configuration of the chat orchestration layer.
type SendOptions struct {
	// UseSystemKnowledgeBase adds the persona's system knowledge to the
	// prompt for this send only.
	UseSystemKnowledgeBase bool

	// Metadata is attached to the user message (e.g. image attachments).
	Metadata *MessageMetadata
}

// SendMessageRequest is the body of POST /api/chat/sessions/{id}/messages.
type SendMessageRequest struct {
	Content                string           `json:"content"`
	Metadata               *MessageMetadata `json:"metadata,omitempty"`
	UseSystemKnowledgeBase bool             `json:"use_system_knowledge_base"`
}

// SendMessageResponse holds both persisted messages of one round-trip.
type SendMessageResponse struct {
	UserMessage      ChatMessage `json:"user_message"`
	AssistantMessage ChatMessage `json:"assistant_message"`
}

// SendResult is what the orchestration layer hands back after a send.
//
// TitleDone is closed once the background title task settled, or right
// away when no task was started.
type SendResult struct {
	Session          ChatSession
	UserMessage      ChatMessage
	AssistantMessage ChatMessage
	TitleDone        <-chan struct{}
}

// TitleRequest is the body of POST /api/chat/title.
type TitleRequest struct {
	UserMessage       string `json:"user_message"`
	AssistantResponse string `json:"assistant_response"`
}

// TitleResponse carries a generated title. Empty means no title could be produced.
type TitleResponse struct {
	Title string `json:"title"`
}

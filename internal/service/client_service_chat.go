// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/idea-brand-coach/internal/cache"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/models"
	"golang.org/x/sync/singleflight"
)

const titleTaskTimeout = 30 * time.Second

// SessionsCacheKey is the cached session list of one chatbot type.
func SessionsCacheKey(chatbotType models.ChatbotType) cache.Key {
	return cache.NewKey("chat-sessions", string(chatbotType))
}

// MessagesCacheKey is the cached message list of one session.
func MessagesCacheKey(chatbotType models.ChatbotType, sessionID string) cache.Key {
	return cache.NewKey("chat-messages", string(chatbotType), sessionID)
}

// ChatOrchestratorOptions configures a [ChatOrchestrator].
type ChatOrchestratorOptions struct {
	UserID      int64
	ChatbotType models.ChatbotType

	// AutoCreate creates a session on the first send when none exists.
	AutoCreate bool

	// Fields receives extracted field values. Optional.
	Fields FieldApplier
	// Notifier receives failure notifications. Optional.
	Notifier Notifier
}

// ChatOrchestrator drives the chat of one chatbot type: current session,
// its messages, sends and housekeeping. Lists are read through the cache
// and invalidated by exact key after each confirmed change.
//
// Nothing is shown before the server confirmed it; a failed operation
// leaves the selection and the cached lists as they were.
type ChatOrchestrator struct {
	userID      int64
	chatbotType models.ChatbotType
	autoCreate  bool

	store    *ChatSessionStore
	titles   TitleGenerator
	fields   FieldApplier
	notifier Notifier
	cache    cache.Cache
	logger   *logger.Logger

	create singleflight.Group

	mu         sync.Mutex
	selectedID string
	sending    map[string]struct{}

	titleTasks sync.WaitGroup
}

func NewChatOrchestrator(store *ChatSessionStore, titles TitleGenerator, queryCache cache.Cache, opts ChatOrchestratorOptions, logger *logger.Logger) *ChatOrchestrator {
	return &ChatOrchestrator{
		userID:      opts.UserID,
		chatbotType: opts.ChatbotType,
		autoCreate:  opts.AutoCreate,
		store:       store,
		titles:      titles,
		fields:      opts.Fields,
		notifier:    opts.Notifier,
		cache:       queryCache,
		logger:      logger,
		sending:     make(map[string]struct{}),
	}
}

// Sessions returns the sessions of the chatbot type, newest first.
func (o *ChatOrchestrator) Sessions(ctx context.Context) ([]models.ChatSession, error) {
	key := SessionsCacheKey(o.chatbotType)

	var sessions []models.ChatSession
	if found, err := o.cache.Get(ctx, key, &sessions); err == nil && found {
		// the user id is not part of the cached JSON
		for i := range sessions {
			sessions[i].UserID = o.userID
		}
		return sessions, nil
	} else if err != nil {
		o.logger.Warn().Err(err).Str("func", "ChatOrchestrator.Sessions").Str("key", key.String()).Msg("cache read failed")
	}

	sessions, err := o.store.GetSessions(ctx, o.userID, o.chatbotType)
	if err != nil {
		return nil, err
	}
	o.cacheSet(ctx, key, sessions)
	return sessions, nil
}

// CurrentSession returns the selected session, selecting the most recently
// updated one when nothing is selected. nil means there are no sessions.
func (o *ChatOrchestrator) CurrentSession(ctx context.Context) (*models.ChatSession, error) {
	sessions, err := o.Sessions(ctx)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.selectedID != "" {
		for i := range sessions {
			if sessions[i].ID == o.selectedID {
				return &sessions[i], nil
			}
		}
	}

	if len(sessions) == 0 {
		o.selectedID = ""
		return nil, nil
	}
	o.selectedID = sessions[0].ID
	return &sessions[0], nil
}

// Select makes sessionID the current session.
func (o *ChatOrchestrator) Select(ctx context.Context, sessionID string) error {
	sessions, err := o.Sessions(ctx)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		if s.ID == sessionID {
			o.mu.Lock()
			o.selectedID = sessionID
			o.mu.Unlock()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoSessionSelected, sessionID)
}

// Messages returns the messages of the current session, oldest first.
func (o *ChatOrchestrator) Messages(ctx context.Context) ([]models.ChatMessage, error) {
	session, err := o.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return []models.ChatMessage{}, nil
	}

	key := MessagesCacheKey(o.chatbotType, session.ID)
	var messages []models.ChatMessage
	if found, err := o.cache.Get(ctx, key, &messages); err == nil && found {
		return messages, nil
	}

	messages, err = o.store.GetMessages(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	o.cacheSet(ctx, key, messages)
	return messages, nil
}

// SendMessage sends content to the current session, creating one first when
// allowed. A second send to the same session fails with ErrSendInProgress
// until the first one settled.
func (o *ChatOrchestrator) SendMessage(ctx context.Context, content string, opts models.SendOptions) (models.SendResult, error) {
	session, err := o.ensureSession(ctx)
	if err != nil {
		o.notify("Could not start a chat", err)
		return models.SendResult{}, err
	}

	if !o.beginSend(session.ID) {
		return models.SendResult{}, ErrSendInProgress
	}
	defer o.endSend(session.ID)

	resp, err := o.store.SendMessage(ctx, session.ID, models.SendMessageRequest{
		Content:                content,
		Metadata:               opts.Metadata,
		UseSystemKnowledgeBase: opts.UseSystemKnowledgeBase,
	})
	if err != nil {
		o.notify("Message not sent", err)
		return models.SendResult{}, err
	}

	o.invalidate(ctx, MessagesCacheKey(o.chatbotType, session.ID))
	o.applyExtracted(ctx, resp.AssistantMessage)

	done := make(chan struct{})
	if session.Title == models.DefaultSessionTitle && o.titles != nil {
		o.startTitleTask(ctx, session.ID, content, resp.AssistantMessage.Content, done)
	} else {
		// the send moved the session's updated_at
		o.invalidate(ctx, SessionsCacheKey(o.chatbotType))
		close(done)
	}

	return models.SendResult{
		Session:          session,
		UserMessage:      resp.UserMessage,
		AssistantMessage: resp.AssistantMessage,
		TitleDone:        done,
	}, nil
}

// ClearChat deletes the messages of the current session and keeps the session.
func (o *ChatOrchestrator) ClearChat(ctx context.Context) error {
	session, err := o.CurrentSession(ctx)
	if err != nil {
		o.notify("Could not clear the chat", err)
		return err
	}
	if session == nil {
		return ErrNoSessionSelected
	}

	if err = o.store.ClearMessages(ctx, session.ID); err != nil {
		o.notify("Could not clear the chat", err)
		return err
	}

	o.invalidate(ctx, MessagesCacheKey(o.chatbotType, session.ID))
	return nil
}

// NewSession creates a session and selects it.
func (o *ChatOrchestrator) NewSession(ctx context.Context, data *models.SessionCreate) (models.ChatSession, error) {
	session, err := o.store.CreateSession(ctx, o.userID, o.chatbotType, data)
	if err != nil {
		o.notify("Could not create a chat", err)
		return models.ChatSession{}, err
	}

	o.invalidate(ctx, SessionsCacheKey(o.chatbotType))
	o.mu.Lock()
	o.selectedID = session.ID
	o.mu.Unlock()
	return session, nil
}

// RenameSession changes the title of a session.
func (o *ChatOrchestrator) RenameSession(ctx context.Context, sessionID, title string) (models.ChatSession, error) {
	session, err := o.store.UpdateSession(ctx, sessionID, o.userID, models.SessionUpdate{Title: &title})
	if err != nil {
		o.notify("Could not rename the chat", err)
		return models.ChatSession{}, err
	}

	o.invalidate(ctx, SessionsCacheKey(o.chatbotType))
	return session, nil
}

// DeleteSession removes a session with its messages. When it was selected
// the next most recent session becomes current, if any.
func (o *ChatOrchestrator) DeleteSession(ctx context.Context, sessionID string) error {
	if err := o.store.DeleteSession(ctx, sessionID, o.userID); err != nil {
		o.notify("Could not delete the chat", err)
		return err
	}

	o.invalidate(ctx, SessionsCacheKey(o.chatbotType))
	o.invalidate(ctx, MessagesCacheKey(o.chatbotType, sessionID))

	o.mu.Lock()
	wasSelected := o.selectedID == sessionID
	if wasSelected {
		o.selectedID = ""
	}
	o.mu.Unlock()

	if !wasSelected {
		return nil
	}

	sessions, err := o.Sessions(ctx)
	if err != nil {
		// selection is resolved lazily by CurrentSession
		o.logger.Warn().Err(err).Str("func", "ChatOrchestrator.DeleteSession").Msg("reloading sessions failed")
		return nil
	}
	o.mu.Lock()
	for _, s := range sessions {
		if s.ID != sessionID {
			o.selectedID = s.ID
			break
		}
	}
	o.mu.Unlock()
	return nil
}

// Wait blocks until every background title task finished.
func (o *ChatOrchestrator) Wait() {
	o.titleTasks.Wait()
}

func (o *ChatOrchestrator) ensureSession(ctx context.Context) (models.ChatSession, error) {
	current, err := o.CurrentSession(ctx)
	if err != nil {
		return models.ChatSession{}, err
	}
	if current != nil {
		return *current, nil
	}
	if !o.autoCreate {
		return models.ChatSession{}, ErrAutoCreateDisabled
	}

	v, err, _ := o.create.Do(string(o.chatbotType), func() (any, error) {
		// a caller that finished creating just before this one joined
		o.invalidate(ctx, SessionsCacheKey(o.chatbotType))
		existing, err := o.CurrentSession(ctx)
		if err != nil {
			return models.ChatSession{}, err
		}
		if existing != nil {
			return *existing, nil
		}

		session, err := o.store.CreateSession(ctx, o.userID, o.chatbotType, nil)
		if err != nil {
			return models.ChatSession{}, err
		}

		o.invalidate(ctx, SessionsCacheKey(o.chatbotType))
		o.mu.Lock()
		o.selectedID = session.ID
		o.mu.Unlock()
		return session, nil
	})
	if err != nil {
		return models.ChatSession{}, err
	}
	return v.(models.ChatSession), nil
}

func (o *ChatOrchestrator) beginSend(sessionID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, busy := o.sending[sessionID]; busy {
		return false
	}
	o.sending[sessionID] = struct{}{}
	return true
}

func (o *ChatOrchestrator) endSend(sessionID string) {
	o.mu.Lock()
	delete(o.sending, sessionID)
	o.mu.Unlock()
}

func (o *ChatOrchestrator) applyExtracted(ctx context.Context, msg models.ChatMessage) {
	if o.fields == nil || msg.Metadata == nil {
		return
	}

	switch msg.Metadata.Kind {
	case models.MetadataExtractedFields:
		if err := o.fields.ApplyExtracted(ctx, o.userID, msg.Metadata.Fields); err != nil {
			o.logger.Warn().Err(err).Str("func", "ChatOrchestrator.applyExtracted").Str("message_id", msg.ID).Msg("applying extracted fields failed")
		}
	case models.MetadataImageAttachments:
	}
}

// startTitleTask names a fresh session in the background. The sessions
// list is invalidated once the task settled, whatever the outcome.
func (o *ChatOrchestrator) startTitleTask(ctx context.Context, sessionID, userMessage, assistantResponse string, done chan struct{}) {
	o.titleTasks.Add(1)
	taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), titleTaskTimeout)

	go func() {
		defer o.titleTasks.Done()
		defer close(done)
		defer cancel()
		defer o.invalidate(taskCtx, SessionsCacheKey(o.chatbotType))

		if err := o.generateTitle(taskCtx, sessionID, userMessage, assistantResponse); err != nil {
			o.logger.Info().Err(err).Str("func", "ChatOrchestrator.startTitleTask").Str("session_id", sessionID).Msg("session keeps its title")
		}
	}()
}

var errNoTitle = errors.New("no title generated")

func (o *ChatOrchestrator) generateTitle(ctx context.Context, sessionID, userMessage, assistantResponse string) error {
	resp, err := o.titles.GenerateTitle(ctx, models.TitleRequest{UserMessage: userMessage, AssistantResponse: assistantResponse})
	if err != nil {
		return mapAdapterError(err)
	}
	if resp.Title == "" {
		return errNoTitle
	}

	_, err = o.store.UpdateSession(ctx, sessionID, o.userID, models.SessionUpdate{Title: &resp.Title})
	return err
}

func (o *ChatOrchestrator) cacheSet(ctx context.Context, key cache.Key, value any) {
	if err := o.cache.Set(ctx, key, value); err != nil {
		o.logger.Warn().Err(err).Str("func", "ChatOrchestrator.cacheSet").Str("key", key.String()).Msg("cache write failed")
	}
}

func (o *ChatOrchestrator) invalidate(ctx context.Context, key cache.Key) {
	if _, err := o.cache.Invalidate(ctx, key); err != nil {
		o.logger.Warn().Err(err).Str("func", "ChatOrchestrator.invalidate").Str("key", key.String()).Msg("cache invalidation failed")
	}
}

func (o *ChatOrchestrator) notify(title string, err error) {
	if o.notifier == nil {
		return
	}
	o.notifier.Notify(models.Notification{
		Level:       models.NotificationError,
		Title:       title,
		Description: err.Error(),
	})
}

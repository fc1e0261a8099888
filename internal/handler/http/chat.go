package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/service"
	"github.com/MKhiriev/idea-brand-coach/internal/utils"
	"github.com/MKhiriev/idea-brand-coach/models"
	"github.com/go-chi/chi/v5"
)

const sessionIDParam = "sessionID"

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	chatbotType := models.ChatbotType(r.URL.Query().Get("chatbot_type"))
	sessions, err := h.services.ChatService.ListSessions(r.Context(), userID, chatbotType)
	if err != nil {
		h.writeError(w, r, err, "Handler.listSessions", "listing sessions failed")
		return
	}
	if sessions == nil {
		sessions = []models.ChatSession{}
	}

	utils.WriteJSON(w, sessions, http.StatusOK)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateSessionRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "Handler.createSession", "invalid JSON was passed")
		return
	}

	session, err := h.services.ChatService.CreateSession(r.Context(), userID, req)
	if err != nil {
		h.writeError(w, r, err, "Handler.createSession", "creating session failed")
		return
	}

	utils.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	session, err := h.services.ChatService.GetSession(r.Context(), userID, chi.URLParam(r, sessionIDParam))
	if err != nil {
		h.writeError(w, r, err, "Handler.getSession", "getting session failed")
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) updateSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var update models.SessionUpdate
	if err := utils.ReadJSON(r, &update); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "Handler.updateSession", "invalid JSON was passed")
		return
	}

	session, err := h.services.ChatService.UpdateSession(r.Context(), userID, chi.URLParam(r, sessionIDParam), update)
	if err != nil {
		h.writeError(w, r, err, "Handler.updateSession", "updating session failed")
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.ChatService.DeleteSession(r.Context(), userID, chi.URLParam(r, sessionIDParam)); err != nil {
		h.writeError(w, r, err, "Handler.deleteSession", "deleting session failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	messages, err := h.services.ChatService.ListMessages(r.Context(), userID, chi.URLParam(r, sessionIDParam))
	if err != nil {
		h.writeError(w, r, err, "Handler.listMessages", "listing messages failed")
		return
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.SendMessageRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "Handler.sendMessage", "invalid JSON was passed")
		return
	}

	sessionID := chi.URLParam(r, sessionIDParam)
	res, err := h.services.ChatService.SendMessage(r.Context(), userID, sessionID, req)
	if err != nil {
		h.writeError(w, r, err, "Handler.sendMessage", "sending message failed")
		return
	}

	logger.FromRequest(r).Debug().
		Str("session_id", sessionID).
		Bool("knowledge_base", req.UseSystemKnowledgeBase).
		Msg("chat turn stored")

	utils.WriteJSON(w, res, http.StatusCreated)
}

func (h *Handler) clearMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.ChatService.ClearMessages(r.Context(), userID, chi.URLParam(r, sessionIDParam)); err != nil {
		h.writeError(w, r, err, "Handler.clearMessages", "clearing messages failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) generateTitle(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.userIDFromRequest(w, r); !ok {
		return
	}

	var req models.TitleRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "Handler.generateTitle", "invalid JSON was passed")
		return
	}

	res, err := h.services.ChatService.GenerateTitle(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "Handler.generateTitle", "title generation failed")
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

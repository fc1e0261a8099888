package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/idea-brand-coach/internal/service"
	"github.com/MKhiriev/idea-brand-coach/internal/utils"
	"github.com/MKhiriev/idea-brand-coach/models"
	"github.com/go-chi/chi/v5"
)

const fieldIdentifierParam = "fieldIdentifier"

// upsertFieldRequest is the PUT body; the identifier travels in the path.
type upsertFieldRequest struct {
	Category models.FieldCategory `json:"category"`
	Content  string               `json:"content"`
}

func (h *Handler) listFields(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	category := models.FieldCategory(r.URL.Query().Get("category"))
	records, err := h.services.FieldService.List(r.Context(), userID, category)
	if err != nil {
		h.writeError(w, r, err, "Handler.listFields", "listing fields failed")
		return
	}
	if records == nil {
		records = []models.FieldRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getField(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	record, err := h.services.FieldService.Get(r.Context(), userID, chi.URLParam(r, fieldIdentifierParam))
	if err != nil {
		h.writeError(w, r, err, "Handler.getField", "getting field failed")
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) upsertField(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req upsertFieldRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "Handler.upsertField", "invalid JSON was passed")
		return
	}

	record, err := h.services.FieldService.Upsert(r.Context(), models.FieldUpsert{
		UserID:          userID,
		FieldIdentifier: chi.URLParam(r, fieldIdentifierParam),
		Category:        req.Category,
		Content:         req.Content,
	})
	if err != nil {
		h.writeError(w, r, err, "Handler.upsertField", "upserting field failed")
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) clearFields(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	deleted, err := h.services.FieldService.Clear(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "Handler.clearFields", "clearing fields failed")
		return
	}

	utils.WriteJSON(w, models.ClearFieldsResponse{Deleted: deleted}, http.StatusOK)
}

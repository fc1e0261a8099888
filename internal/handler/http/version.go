package http

import (
	"net/http"

	"github.com/MKhiriev/idea-brand-coach/internal/utils"
	"github.com/MKhiriev/idea-brand-coach/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())
	utils.WriteJSON(w, models.VersionResponse{Version: version}, http.StatusOK)
}

// health answers 503 while the database is unreachable.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Health(r.Context()); err != nil {
		h.writeError(w, r, err, "Handler.health", "health check failed")
		return
	}
	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}

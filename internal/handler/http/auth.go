package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/service"
	"github.com/MKhiriev/idea-brand-coach/internal/utils"
	"github.com/MKhiriev/idea-brand-coach/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := utils.ReadJSON(r, &user); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "Handler.register", "invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err, "Handler.register", "user registration failed")
		return
	}

	h.issueToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := utils.ReadJSON(r, &user); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "Handler.login", "invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err, "Handler.login", "user login failed")
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.issueToken(w, r, foundUser)
}

// issueToken answers 200 with the signed token in the Authorization header.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err, "Handler.issueToken", "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

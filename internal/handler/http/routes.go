package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)

		r.With(h.verifyHash).Post("/api/user/register", h.register)
		r.With(h.verifyHash).Post("/api/user/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.verifyHash)

		r.Get("/api/fields", h.listFields)
		r.Delete("/api/fields", h.clearFields)
		r.Get("/api/fields/{fieldIdentifier}", h.getField)
		r.Put("/api/fields/{fieldIdentifier}", h.upsertField)

		r.Get("/api/chat/sessions", h.listSessions)
		r.Post("/api/chat/sessions", h.createSession)
		r.Get("/api/chat/sessions/{sessionID}", h.getSession)
		r.Patch("/api/chat/sessions/{sessionID}", h.updateSession)
		r.Delete("/api/chat/sessions/{sessionID}", h.deleteSession)

		r.Get("/api/chat/sessions/{sessionID}/messages", h.listMessages)
		r.Post("/api/chat/sessions/{sessionID}/messages", h.sendMessage)
		r.Delete("/api/chat/sessions/{sessionID}/messages", h.clearMessages)

		r.Post("/api/chat/title", h.generateTitle)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

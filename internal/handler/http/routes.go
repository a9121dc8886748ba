package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.greeting)
		r.Post("/api/accounts/register", h.register)
		r.Post("/api/accounts/login", h.login)
		r.Post("/api/accounts/verify/request", h.requestVerification)
		r.Post("/api/accounts/verify/confirm", h.confirmVerification)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/accounts", h.listAccounts)
		r.Put("/api/accounts/location", h.setLocation)
		r.Put("/api/accounts/profile", h.updateProfile)
		r.Put("/api/accounts/online", h.toggleOnline)
		r.Delete("/api/accounts/{id}", h.deleteAccount)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

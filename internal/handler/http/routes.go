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
	router.Use(h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/google", h.loginGoogle)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/reset-password", h.resetPassword)
		r.Post("/api/create-order", h.createOrder)
		r.Post("/api/verify-payment", h.verifyPayment)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/auth/me", h.me)
		r.Post("/api/auth/track-download", h.trackDownload)
	})

	// reporting routes, kept open until an admin role lands on the account model
	router.Group(func(r chi.Router) {
		r.Get("/api/admin/users", h.adminUsers)
		r.Get("/api/admin/stats", h.adminStats)
	})

	return router
}

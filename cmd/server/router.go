package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkozlov/outreach/internal/handler"
	"github.com/pkozlov/outreach/internal/middleware"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	// Provider callbacks are unauthenticated; the provider does not carry
	// tenant headers.
	r.Post("/webhooks/status", h.ProviderStatusCallback)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CompanyScope)

		r.Route("/broadcasts", func(r chi.Router) {
			r.Get("/", h.ListBroadcasts)
			r.Post("/", h.CreateBroadcast)
			r.Get("/{id}", h.GetBroadcast)
			r.Delete("/{id}", h.DeleteBroadcast)
			r.Post("/{id}/send", h.SendBroadcast)
			r.Post("/{id}/cancel", h.CancelBroadcast)
			r.Get("/{id}/stats", h.GetBroadcastStats)
		})

		r.Route("/sequences", func(r chi.Router) {
			r.Get("/", h.ListSequences)
			r.Post("/", h.CreateSequence)
			r.Post("/auto-enroll", h.AutoEnroll)
			r.Get("/{id}", h.GetSequence)
			r.Put("/{id}", h.UpdateSequence)
			r.Delete("/{id}", h.DeleteSequence)
			r.Post("/{id}/enroll", h.EnrollLead)
			r.Post("/{id}/unenroll", h.UnenrollLead)
			r.Get("/{id}/enrollments", h.ListEnrollments)
		})

		r.Route("/scheduler", func(r chi.Router) {
			r.Post("/start", h.StartScheduler)
			r.Post("/stop", h.StopScheduler)
			r.Post("/sweep", h.RunSweep)
		})
	})

	return r
}

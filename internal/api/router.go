package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/items", h.ListItems)
		r.Post("/orders", h.PlaceOrder)
		r.Get("/orders/{id}", h.GetOrder)
		r.Post("/payment", h.ProcessPayment)
		r.Get("/analytics", h.GetAnalytics)
	})

	return r
}

/*
server.go - HTTP router and middleware configuration

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests from the calculator frontend

ROUTE GROUPS:
  /api/health            Liveness and cache counters
  /api/defaults          Default inputs, slabs and perquisite amounts
  /api/slabs/*           Slab tables
  /api/projections       Run a projection (JSON body or share-link query)
  /api/reports/*         Formatted reports (console, csv, html, json, pdf)
  /api/scenarios/*       Saved scenarios

SECURITY NOTE:
  No authentication middleware. All endpoints are public.
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// DefaultAllowedOrigins are the origins of the local calculator frontend.
var DefaultAllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   DefaultAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/defaults", h.GetDefaults)
		r.Get("/slabs/default", h.GetDefaultSlabs)

		r.Route("/projections", func(r chi.Router) {
			r.Get("/", h.ProjectFromQuery)
			r.Post("/", h.Project)
		})

		r.Post("/reports/{format}", h.Report)

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/", h.SaveScenario)
			r.Get("/{id}", h.GetScenario)
			r.Get("/{id}/projection", h.ProjectScenario)
			r.Delete("/{id}", h.DeleteScenario)
		})
	})

	return r
}

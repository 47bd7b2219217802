// Package httpadapter is the inbound HTTP adapter. It exposes the plan
// operations over chi routes and maps domain error kinds onto status
// codes.
package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"audience-intel/internal/core/port"
)

// Handler contains dependencies and routes. It holds the plan usecase,
// the injectable rate-limit store and a logger. Routes are registered on
// a chi.Router for convenient method handling.
type Handler struct {
	svc     port.PlanUseCase
	limiter port.LimitStore
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. Only plan
// generation is rate limited; reads are not.
func NewHandler(svc port.PlanUseCase, limiter port.LimitStore, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, limiter: limiter, logger: logger}
	r := chi.NewRouter()

	r.Use(h.requestID)
	r.Post("/plan", h.rateLimited(h.handleGeneratePlan))
	r.Get("/plans/{id}", h.handleGetPlan)
	r.Get("/files/{id}/{filename}", h.handleGetFile)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

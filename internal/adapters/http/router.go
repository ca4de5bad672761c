// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"huntboard/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	columnHandler *handlers.ColumnHandler,
	cardHandler *handlers.CardHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Full board read.
		r.Get("/board", columnHandler.GetBoard)

		// Column CRUD.
		r.Get("/columns", columnHandler.ListColumns)
		r.Post("/columns", columnHandler.CreateColumn)
		r.Patch("/columns/{id}", columnHandler.RenameColumn)
		r.Delete("/columns/{id}", columnHandler.DeleteColumn)

		// Cards nested under their column.
		r.Get("/columns/{id}/cards", cardHandler.ListCards)
		r.Post("/columns/{id}/cards", cardHandler.CreateCard)

		// Flat card operations.
		r.Get("/cards/{id}", cardHandler.GetCard)
		r.Patch("/cards/{id}", cardHandler.UpdateCard)
		r.Delete("/cards/{id}", cardHandler.DeleteCard)
		r.Post("/cards/{id}/move", cardHandler.MoveCard)
	})

	return r
}

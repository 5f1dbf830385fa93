// internal/app/features/ingest/routes.go
package ingest

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the router for the ingestion triggers.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Upload)
	r.Post("/refresh", h.Refresh)

	return r
}

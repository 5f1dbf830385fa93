// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns the router for the dashboard consumption API.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeOverview)
	r.Get("/records", h.ServeRecords)
	r.Get("/kpis", h.ServeKPIs)
	r.Get("/store-totals", h.ServeStoreTotals)
	r.Get("/daily-summary", h.ServeDailySummary)
	r.Get("/groups", h.ServeGroups)
	r.Get("/export.csv", h.ServeExportCSV)

	r.Get("/filters", h.ServeFilters)
	r.Put("/filters", h.UpdateFilters)
	r.Delete("/filters", h.ClearFilters)
	r.Post("/filters/stores/toggle", h.ToggleStore)

	return r
}

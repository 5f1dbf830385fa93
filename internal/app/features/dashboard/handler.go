// internal/app/features/dashboard/handler.go
package dashboard

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/storepulse/internal/app/store/dataset"
	"github.com/dalemusser/storepulse/internal/app/system/jsonutil"
	"github.com/dalemusser/storepulse/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the dashboard consumption API: read-only access to the
// current snapshot and its derived views, plus the filter mutations the
// presentation layer may request. Every mutation goes through the dataset
// store, which recomputes all derived structures in full.
type Handler struct {
	Data *dataset.Store
	Log  *zap.Logger
}

// NewHandler creates a new dashboard handler.
func NewHandler(data *dataset.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Data: data,
		Log:  logger,
	}
}

// ServeOverview handles GET /api/dashboard - the full snapshot payload.
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, newSnapshotVM(h.Data.Snapshot()))
}

// ServeRecords handles GET /api/dashboard/records - the filtered view.
func (h *Handler) ServeRecords(w http.ResponseWriter, r *http.Request) {
	snap := h.Data.Snapshot()
	jsonutil.OK(w, map[string]any{
		"version": snap.Version.String(),
		"records": snap.Filtered,
	})
}

// ServeKPIs handles GET /api/dashboard/kpis.
func (h *Handler) ServeKPIs(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.Data.Snapshot().KPIs)
}

// ServeStoreTotals handles GET /api/dashboard/store-totals.
func (h *Handler) ServeStoreTotals(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.Data.Snapshot().StoreTotals)
}

// ServeDailySummary handles GET /api/dashboard/daily-summary.
func (h *Handler) ServeDailySummary(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.Data.Snapshot().DailySummary)
}

// ServeGroups handles GET /api/dashboard/groups - per-store record lists.
func (h *Handler) ServeGroups(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, h.Data.Snapshot().Groups)
}

// ServeFilters handles GET /api/dashboard/filters.
func (h *Handler) ServeFilters(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, newFiltersVM(h.Data.Snapshot().Filters))
}

// UpdateFilters handles PUT /api/dashboard/filters. Empty fields clear the
// corresponding criterion; malformed dates are rejected without touching
// the current filters.
func (h *Handler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	var input UpdateFiltersInput
	if err := jsonutil.Decode(r, &input); err != nil {
		jsonutil.BadRequest(w, "invalid JSON body")
		return
	}

	from, err := parseBound(input.From)
	if err != nil {
		jsonutil.BadRequest(w, fmt.Sprintf("invalid from date %q", input.From))
		return
	}
	to, err := parseBound(input.To)
	if err != nil {
		jsonutil.BadRequest(w, fmt.Sprintf("invalid to date %q", input.To))
		return
	}

	snap := h.Data.SetFilters(from, to, input.Stores)
	h.Log.Debug("filters updated",
		zap.Strings("stores", input.Stores),
		zap.Int("filtered", len(snap.Filtered)),
	)
	jsonutil.OK(w, newSnapshotVM(snap))
}

// ToggleStore handles POST /api/dashboard/filters/stores/toggle.
func (h *Handler) ToggleStore(w http.ResponseWriter, r *http.Request) {
	var input ToggleStoreInput
	if err := jsonutil.Decode(r, &input); err != nil || input.Store == "" {
		jsonutil.BadRequest(w, "body must be {\"store\": \"name\"}")
		return
	}

	snap := h.Data.ToggleStore(input.Store)
	jsonutil.OK(w, newSnapshotVM(snap))
}

// ClearFilters handles DELETE /api/dashboard/filters.
func (h *Handler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, newSnapshotVM(h.Data.ClearFilters()))
}

// ServeExportCSV handles GET /api/dashboard/export.csv - the filtered view
// as a CSV download in the same column layout the parser ingests.
func (h *Handler) ServeExportCSV(w http.ResponseWriter, r *http.Request) {
	snap := h.Data.Snapshot()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=storepulse_%s.csv", time.Now().Format("2006-01-02")))

	cw := csv.NewWriter(w)
	defer cw.Flush()

	cw.Write([]string{"date", "store", "sales", "adspend", "orders", "roi"})
	for _, rec := range snap.Filtered {
		cw.Write([]string{
			rec.DateKey,
			rec.Store,
			strconv.FormatFloat(rec.Sales, 'f', -1, 64),
			strconv.FormatFloat(rec.AdSpend, 'f', -1, 64),
			strconv.FormatFloat(rec.Orders, 'f', -1, 64),
			strconv.FormatFloat(rec.ROI, 'f', -1, 64),
		})
	}
}

// parseBound parses an optional date bound; "" means unset.
func parseBound(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(models.DateFormat, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

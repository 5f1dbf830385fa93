// internal/app/features/dashboard/types.go
package dashboard

import (
	"time"

	"github.com/dalemusser/storepulse/internal/app/store/dataset"
	"github.com/dalemusser/storepulse/internal/domain/models"
)

// FiltersVM is the wire form of the active filters. Dates are formatted
// with models.DateFormat; a nil bound is omitted. An empty store list means
// "all stores".
type FiltersVM struct {
	From   *string  `json:"from,omitempty"`
	To     *string  `json:"to,omitempty"`
	Stores []string `json:"stores,omitempty"`
}

// SnapshotVM is the full dashboard payload: dataset identity plus every
// derived view the presentation layer consumes.
type SnapshotVM struct {
	Version       string                `json:"version"`
	Source        string                `json:"source"`
	LoadedAt      time.Time             `json:"loadedAt"`
	RecordCount   int                   `json:"recordCount"`
	FilteredCount int                   `json:"filteredCount"`
	Stores        []string              `json:"stores"`
	Filters       FiltersVM             `json:"filters"`
	KPIs          models.KPIs           `json:"kpis"`
	StoreTotals   []models.StoreTotal   `json:"storeTotals"`
	DailySummary  []models.DailySummary `json:"dailySummary"`
}

// UpdateFiltersInput is the body of PUT /api/dashboard/filters. Empty or
// absent fields clear that criterion.
type UpdateFiltersInput struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Stores []string `json:"stores"`
}

// ToggleStoreInput is the body of POST /api/dashboard/filters/stores/toggle.
type ToggleStoreInput struct {
	Store string `json:"store"`
}

func newFiltersVM(f models.Filters) FiltersVM {
	vm := FiltersVM{Stores: f.StoreList()}
	if f.From != nil {
		s := f.From.Format(models.DateFormat)
		vm.From = &s
	}
	if f.To != nil {
		s := f.To.Format(models.DateFormat)
		vm.To = &s
	}
	return vm
}

func newSnapshotVM(snap dataset.Snapshot) SnapshotVM {
	return SnapshotVM{
		Version:       snap.Version.String(),
		Source:        snap.Source,
		LoadedAt:      snap.LoadedAt,
		RecordCount:   len(snap.Records),
		FilteredCount: len(snap.Filtered),
		Stores:        snap.Stores,
		Filters:       newFiltersVM(snap.Filters),
		KPIs:          snap.KPIs,
		StoreTotals:   snap.StoreTotals,
		DailySummary:  snap.DailySummary,
	}
}

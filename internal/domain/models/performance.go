package models

import (
	"sort"
	"time"
)

// DateFormat is the wire format for dates in ingested CSV rows and in the
// JSON API. It is fixed, not configurable.
const DateFormat = "2006-01-02"

// PerformanceRecord is one normalized per-store, per-day marketing
// observation. Records are immutable once constructed; the parser is the
// only place they are built.
type PerformanceRecord struct {
	Date    time.Time `json:"date"`    // validated calendar date
	DateKey string    `json:"dateKey"` // original date token, stable grouping/display key
	Store   string    `json:"store"`
	Sales   float64   `json:"sales"`
	AdSpend float64   `json:"adspend"`
	Orders  float64   `json:"orders"`
	ROI     float64   `json:"roi"` // supplied if nonzero, else sales/adspend, else 0
}

// Filters holds the active date-range and store-set criteria.
// A nil bound means "unbounded"; an empty store set means "all stores".
type Filters struct {
	From   *time.Time      `json:"from,omitempty"`
	To     *time.Time      `json:"to,omitempty"`
	Stores map[string]bool `json:"-"`
}

// StoreList returns the selected store names in sorted order for JSON output.
func (f Filters) StoreList() []string {
	if len(f.Stores) == 0 {
		return nil
	}
	out := make([]string, 0, len(f.Stores))
	for s := range f.Stores {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// KPIs are the aggregate figures over the entire filtered view.
// ROI is recomputed from the summed figures, not averaged per row.
type KPIs struct {
	TotalSales   float64 `json:"totalSales"`
	TotalAdSpend float64 `json:"totalAdspend"`
	TotalOrders  float64 `json:"totalOrders"`
	ROI          float64 `json:"roi"`
}

// StoreTotal is the per-store aggregate over the filtered view.
type StoreTotal struct {
	Store   string  `json:"store"`
	Sales   float64 `json:"sales"`
	AdSpend float64 `json:"adspend"`
	Orders  float64 `json:"orders"`
	ROI     float64 `json:"roi"`
}

// DailySummary is the per-date aggregate across all stores in the filtered
// view. Orders are intentionally excluded from this view.
//
// ChangePct is the day-over-day percentage change in sales against the
// chronologically previous summary. It is nil (JSON null) for the first
// entry and whenever the previous entry's sales is zero; it is never NaN.
type DailySummary struct {
	DateKey   string    `json:"dateKey"`
	Date      time.Time `json:"date"`
	Sales     float64   `json:"sales"`
	AdSpend   float64   `json:"adspend"`
	ROI       float64   `json:"roi"`
	Profit    float64   `json:"profit"`
	ProfitPct float64   `json:"profitPct"`
	ChangePct *float64  `json:"changePct"`
}

// StoreGroup maps a store name to its date-ordered slice of the filtered view.
type StoreGroup map[string][]PerformanceRecord

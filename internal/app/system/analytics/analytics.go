// Package analytics holds the pure derivation functions over normalized
// performance records: date/store filtering, KPI totals, per-store totals,
// per-date summaries with day-over-day trend, and per-store grouping.
//
// Every function is a total function of its arguments with no side effects;
// callers recompute rather than patch, so repeated invocation with the same
// inputs always yields the same result.
package analytics

import (
	"sort"
	"time"

	"github.com/dalemusser/storepulse/internal/domain/models"
)

// Filter returns the records passing the date-range and store-set
// predicates. Bounds are inclusive and a nil bound passes everything on
// that side. An empty store set means "all stores" — the UI never needs an
// explicit select-all. Input order is preserved, so filtering an already
// filtered slice with the same predicates is a no-op.
func Filter(records []models.PerformanceRecord, from, to *time.Time, stores map[string]bool) []models.PerformanceRecord {
	out := make([]models.PerformanceRecord, 0, len(records))
	for _, rec := range records {
		if from != nil && rec.Date.Before(*from) {
			continue
		}
		if to != nil && rec.Date.After(*to) {
			continue
		}
		if len(stores) > 0 && !stores[rec.Store] {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// ComputeKPIs sums sales, adspend, and orders over the filtered view and
// recomputes the aggregate ROI from those sums. This is deliberately not an
// average of per-row ROI values.
func ComputeKPIs(records []models.PerformanceRecord) models.KPIs {
	var k models.KPIs
	for _, rec := range records {
		k.TotalSales += rec.Sales
		k.TotalAdSpend += rec.AdSpend
		k.TotalOrders += rec.Orders
	}
	if k.TotalAdSpend > 0 {
		k.ROI = k.TotalSales / k.TotalAdSpend
	}
	return k
}

// ComputeStoreTotals groups the filtered view by store, sums each group,
// and derives a per-group ROI. The result is sorted descending by summed
// sales; ties keep first-encountered group order.
func ComputeStoreTotals(records []models.PerformanceRecord) []models.StoreTotal {
	index := make(map[string]int, 8)
	totals := make([]models.StoreTotal, 0, 8)
	for _, rec := range records {
		i, ok := index[rec.Store]
		if !ok {
			i = len(totals)
			index[rec.Store] = i
			totals = append(totals, models.StoreTotal{Store: rec.Store})
		}
		totals[i].Sales += rec.Sales
		totals[i].AdSpend += rec.AdSpend
		totals[i].Orders += rec.Orders
	}
	for i := range totals {
		if totals[i].AdSpend > 0 {
			totals[i].ROI = totals[i].Sales / totals[i].AdSpend
		}
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Sales > totals[j].Sales
	})
	return totals
}

// ComputeDailySummary groups the filtered view by date key across all
// stores, summing sales and adspend (orders are excluded from this view).
// The result is sorted ascending by date, then walked once to derive the
// day-over-day sales change against the previous entry in sorted order.
// ChangePct is nil for the first entry and whenever the previous entry's
// sales is zero.
func ComputeDailySummary(records []models.PerformanceRecord) []models.DailySummary {
	index := make(map[string]int, 32)
	days := make([]models.DailySummary, 0, 32)
	for _, rec := range records {
		i, ok := index[rec.DateKey]
		if !ok {
			i = len(days)
			index[rec.DateKey] = i
			days = append(days, models.DailySummary{DateKey: rec.DateKey, Date: rec.Date})
		}
		days[i].Sales += rec.Sales
		days[i].AdSpend += rec.AdSpend
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	for i := range days {
		d := &days[i]
		if d.AdSpend > 0 {
			d.ROI = d.Sales / d.AdSpend
		}
		d.Profit = d.Sales - d.AdSpend
		if d.Sales != 0 {
			d.ProfitPct = d.Profit / d.Sales * 100
		}
		if i > 0 && days[i-1].Sales != 0 {
			pct := (d.Sales - days[i-1].Sales) / days[i-1].Sales * 100
			d.ChangePct = &pct
		}
	}
	return days
}

// GroupByStore partitions the filtered view into per-store slices,
// preserving the date-ascending input order within each store. The input is
// never mutated.
func GroupByStore(records []models.PerformanceRecord) models.StoreGroup {
	groups := make(models.StoreGroup, 8)
	for _, rec := range records {
		groups[rec.Store] = append(groups[rec.Store], rec)
	}
	return groups
}

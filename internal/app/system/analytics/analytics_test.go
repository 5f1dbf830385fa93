package analytics

import (
	"math"
	"reflect"
	"testing"

	"github.com/dalemusser/storepulse/internal/domain/models"
	"github.com/dalemusser/storepulse/internal/testutil"
)

func TestFilter_DateBoundsInclusive(t *testing.T) {
	records := testutil.Records(t)

	from := testutil.DatePtr(t, "2025-07-26")
	to := testutil.DatePtr(t, "2025-07-26")

	got := Filter(records, from, to, nil)
	if len(got) != 2 {
		t.Fatalf("Filter() len = %d, want 2 (both bounds inclusive)", len(got))
	}
	for _, rec := range got {
		if rec.DateKey != "2025-07-26" {
			t.Errorf("record date = %s, want 2025-07-26", rec.DateKey)
		}
	}
}

func TestFilter_UnsetBoundsPassEverything(t *testing.T) {
	records := testutil.Records(t)

	got := Filter(records, nil, nil, nil)
	if len(got) != len(records) {
		t.Errorf("Filter() len = %d, want %d", len(got), len(records))
	}
}

func TestFilter_EmptyStoreSetMeansAllStores(t *testing.T) {
	records := testutil.Records(t)

	all := Filter(records, nil, nil, map[string]bool{})
	if len(all) != len(records) {
		t.Errorf("empty store set: len = %d, want %d (no narrowing)", len(all), len(records))
	}

	one := Filter(records, nil, nil, map[string]bool{"Magic Box": true})
	if len(one) != 3 {
		t.Errorf("single store: len = %d, want 3", len(one))
	}
	for _, rec := range one {
		if rec.Store != "Magic Box" {
			t.Errorf("record store = %s, want Magic Box", rec.Store)
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	records := testutil.Records(t)
	from := testutil.DatePtr(t, "2025-07-25")
	to := testutil.DatePtr(t, "2025-07-26")
	stores := map[string]bool{"Urban Trend": true}

	once := Filter(records, from, to, stores)
	twice := Filter(once, from, to, stores)

	if !reflect.DeepEqual(once, twice) {
		t.Error("filtering an already-filtered slice with same predicates changed it")
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	records := testutil.Records(t)
	got := Filter(records, nil, nil, map[string]bool{"Urban Trend": true})
	for i := 1; i < len(got); i++ {
		if got[i].Date.Before(got[i-1].Date) {
			t.Fatalf("filter broke date order at index %d", i)
		}
	}
}

func TestComputeKPIs(t *testing.T) {
	records := testutil.Records(t)

	k := ComputeKPIs(records)
	wantSales := 12500.0 + 9450 + 9800 + 8200 + 10900 + 8600
	wantSpend := 4000.0 + 3400 + 3500 + 3100 + 3700 + 3150
	wantOrders := 78.0 + 59 + 60 + 51 + 68 + 54

	if k.TotalSales != wantSales {
		t.Errorf("TotalSales = %v, want %v", k.TotalSales, wantSales)
	}
	if k.TotalAdSpend != wantSpend {
		t.Errorf("TotalAdSpend = %v, want %v", k.TotalAdSpend, wantSpend)
	}
	if k.TotalOrders != wantOrders {
		t.Errorf("TotalOrders = %v, want %v", k.TotalOrders, wantOrders)
	}

	// ROI is recomputed from the sums, not averaged per row.
	if want := wantSales / wantSpend; k.ROI != want {
		t.Errorf("ROI = %v, want %v (sales/adspend over sums)", k.ROI, want)
	}
	var meanROI float64
	for _, rec := range records {
		meanROI += rec.ROI
	}
	meanROI /= float64(len(records))
	if k.ROI == meanROI {
		t.Error("ROI equals the per-row mean; it must be recomputed from sums")
	}
}

func TestComputeKPIs_ZeroAdSpend(t *testing.T) {
	records := []models.PerformanceRecord{
		testutil.Record(t, "2025-07-25", "S", 100, 0, 1),
	}
	if k := ComputeKPIs(records); k.ROI != 0 {
		t.Errorf("ROI = %v, want 0 when adspend sum is 0", k.ROI)
	}
}

func TestComputeKPIs_Empty(t *testing.T) {
	k := ComputeKPIs(nil)
	if k.TotalSales != 0 || k.TotalAdSpend != 0 || k.TotalOrders != 0 || k.ROI != 0 {
		t.Errorf("empty input KPIs = %+v, want zeroes", k)
	}
}

func TestComputeStoreTotals(t *testing.T) {
	records := testutil.Records(t)

	totals := ComputeStoreTotals(records)
	if len(totals) != 2 {
		t.Fatalf("len = %d, want 2", len(totals))
	}

	// Sorted descending by summed sales: Magic Box (33200) before Urban Trend (26250).
	if totals[0].Store != "Magic Box" || totals[1].Store != "Urban Trend" {
		t.Errorf("order = %s,%s, want Magic Box,Urban Trend", totals[0].Store, totals[1].Store)
	}
	if totals[0].Sales != 33200 {
		t.Errorf("Magic Box sales = %v, want 33200", totals[0].Sales)
	}
	if want := 33200.0 / 11200.0; totals[0].ROI != want {
		t.Errorf("Magic Box roi = %v, want %v", totals[0].ROI, want)
	}

	// Partition completeness: store sums add up to the input sum.
	var inputSales, totalSales float64
	for _, rec := range records {
		inputSales += rec.Sales
	}
	for _, st := range totals {
		totalSales += st.Sales
	}
	if inputSales != totalSales {
		t.Errorf("sum of StoreTotal.sales = %v, want %v", totalSales, inputSales)
	}
}

func TestComputeStoreTotals_TiesKeepFirstEncounteredOrder(t *testing.T) {
	records := []models.PerformanceRecord{
		testutil.Record(t, "2025-07-25", "Beta", 100, 10, 1),
		testutil.Record(t, "2025-07-25", "Alpha", 100, 10, 1),
	}
	totals := ComputeStoreTotals(records)
	if totals[0].Store != "Beta" || totals[1].Store != "Alpha" {
		t.Errorf("tie order = %s,%s, want Beta,Alpha", totals[0].Store, totals[1].Store)
	}
}

func TestComputeDailySummary(t *testing.T) {
	records := []models.PerformanceRecord{
		testutil.Record(t, "2025-07-25", "Magic Box", 12500, 4000, 78),
		testutil.Record(t, "2025-07-26", "Magic Box", 9800, 3500, 60),
	}

	days := ComputeDailySummary(records)
	if len(days) != 2 {
		t.Fatalf("len = %d, want 2", len(days))
	}

	if days[0].ChangePct != nil {
		t.Errorf("first entry ChangePct = %v, want nil", *days[0].ChangePct)
	}

	if days[1].ChangePct == nil {
		t.Fatal("second entry ChangePct = nil, want value")
	}
	if got, want := *days[1].ChangePct, (9800.0-12500.0)/12500.0*100; got != want {
		t.Errorf("ChangePct = %v, want %v", got, want)
	}
	if *days[1].ChangePct != -21.6 {
		t.Errorf("ChangePct = %v, want -21.6", *days[1].ChangePct)
	}
}

func TestComputeDailySummary_Derivations(t *testing.T) {
	records := testutil.Records(t)

	days := ComputeDailySummary(records)
	if len(days) != 3 {
		t.Fatalf("len = %d, want 3 distinct dates", len(days))
	}

	d := days[0] // 2025-07-25 across both stores
	if d.Sales != 12500+9450 {
		t.Errorf("sales = %v, want %v", d.Sales, 12500+9450.0)
	}
	if d.AdSpend != 4000+3400 {
		t.Errorf("adspend = %v, want %v", d.AdSpend, 4000+3400.0)
	}
	if want := d.Sales / d.AdSpend; d.ROI != want {
		t.Errorf("roi = %v, want %v", d.ROI, want)
	}
	if want := d.Sales - d.AdSpend; d.Profit != want {
		t.Errorf("profit = %v, want %v", d.Profit, want)
	}
	if want := d.Profit / d.Sales * 100; d.ProfitPct != want {
		t.Errorf("profitPct = %v, want %v", d.ProfitPct, want)
	}

	// Ascending by date.
	for i := 1; i < len(days); i++ {
		if days[i].Date.Before(days[i-1].Date) {
			t.Fatalf("daily summary not sorted ascending at index %d", i)
		}
	}
}

func TestComputeDailySummary_NullChangeAfterZeroSalesDay(t *testing.T) {
	records := []models.PerformanceRecord{
		testutil.Record(t, "2025-07-25", "S", 0, 0, 0),
		testutil.Record(t, "2025-07-26", "S", 500, 100, 5),
	}

	days := ComputeDailySummary(records)
	if len(days) != 2 {
		t.Fatalf("len = %d, want 2", len(days))
	}
	if days[1].ChangePct != nil {
		t.Errorf("ChangePct after zero-sales day = %v, want nil", *days[1].ChangePct)
	}
	if days[0].ProfitPct != 0 {
		t.Errorf("profitPct with zero sales = %v, want 0", days[0].ProfitPct)
	}
	for _, d := range days {
		if math.IsNaN(d.ROI) || math.IsNaN(d.ProfitPct) {
			t.Errorf("NaN leaked into daily summary: %+v", d)
		}
	}
}

func TestComputeDailySummary_ChangeUsesSortedOrderNotInsertion(t *testing.T) {
	// Insertion order deliberately scrambled; groups must be walked in
	// chronological order when computing the change.
	records := []models.PerformanceRecord{
		testutil.Record(t, "2025-07-27", "S", 300, 100, 3),
		testutil.Record(t, "2025-07-25", "S", 100, 100, 1),
		testutil.Record(t, "2025-07-26", "S", 200, 100, 2),
	}

	days := ComputeDailySummary(records)
	if len(days) != 3 {
		t.Fatalf("len = %d, want 3", len(days))
	}
	if days[0].DateKey != "2025-07-25" || days[2].DateKey != "2025-07-27" {
		t.Fatalf("order = %s..%s, want chronological", days[0].DateKey, days[2].DateKey)
	}
	if days[1].ChangePct == nil || *days[1].ChangePct != 100 {
		t.Errorf("mid-day ChangePct = %v, want 100", days[1].ChangePct)
	}
	if days[2].ChangePct == nil || *days[2].ChangePct != 50 {
		t.Errorf("last-day ChangePct = %v, want 50", days[2].ChangePct)
	}
}

func TestGroupByStore(t *testing.T) {
	records := testutil.Records(t)

	groups := GroupByStore(records)
	if len(groups) != 2 {
		t.Fatalf("len = %d, want 2", len(groups))
	}
	if len(groups["Magic Box"]) != 3 || len(groups["Urban Trend"]) != 3 {
		t.Errorf("group sizes = %d/%d, want 3/3", len(groups["Magic Box"]), len(groups["Urban Trend"]))
	}

	// Date order preserved within each group.
	for store, recs := range groups {
		for i := 1; i < len(recs); i++ {
			if recs[i].Date.Before(recs[i-1].Date) {
				t.Errorf("group %s out of date order at index %d", store, i)
			}
		}
	}

	// Applying twice yields an identical structure.
	again := GroupByStore(records)
	if !reflect.DeepEqual(groups, again) {
		t.Error("GroupByStore is not deterministic")
	}

	// Input untouched.
	if records[0].Store != "Magic Box" || len(records) != 6 {
		t.Error("GroupByStore mutated its input")
	}
}

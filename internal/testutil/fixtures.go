// Package testutil provides shared fixtures for tests: canned CSV input and
// record builders that mirror what the parser produces.
package testutil

import (
	"testing"
	"time"

	"github.com/dalemusser/storepulse/internal/domain/models"
)

// SampleCSV is a small well-formed dataset covering two stores over three
// days, including a row with a blank roi column.
const SampleCSV = `date,store,sales,adspend,orders,roi
2025-07-25,Magic Box,12500,4000,78,3.12
2025-07-25,Urban Trend,9450,3400,59,2.78
2025-07-26,Magic Box,9800,3500,60,2.8
2025-07-26,Urban Trend,8200,3100,51,
2025-07-27,Magic Box,10900,3700,68,2.95
2025-07-27,Urban Trend,8600,3150,54,2.73
`

// Date parses a 2006-01-02 date token or fails the test.
func Date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateFormat, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// DatePtr is Date returning a pointer, for filter bounds.
func DatePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d := Date(t, s)
	return &d
}

// Record builds a normalized record the way the parser would, deriving roi
// from sales/adspend when adspend is positive.
func Record(t *testing.T, date, store string, sales, adspend, orders float64) models.PerformanceRecord {
	t.Helper()
	roi := 0.0
	if adspend > 0 {
		roi = sales / adspend
	}
	return models.PerformanceRecord{
		Date:    Date(t, date),
		DateKey: date,
		Store:   store,
		Sales:   sales,
		AdSpend: adspend,
		Orders:  orders,
		ROI:     roi,
	}
}

// Records builds the normalized collection matching SampleCSV's rows in
// date order.
func Records(t *testing.T) []models.PerformanceRecord {
	t.Helper()
	recs := []models.PerformanceRecord{
		Record(t, "2025-07-25", "Magic Box", 12500, 4000, 78),
		Record(t, "2025-07-25", "Urban Trend", 9450, 3400, 59),
		Record(t, "2025-07-26", "Magic Box", 9800, 3500, 60),
		Record(t, "2025-07-26", "Urban Trend", 8200, 3100, 51),
		Record(t, "2025-07-27", "Magic Box", 10900, 3700, 68),
		Record(t, "2025-07-27", "Urban Trend", 8600, 3150, 54),
	}
	// SampleCSV carries explicit roi values for most rows; mirror them.
	recs[0].ROI = 3.12
	recs[1].ROI = 2.78
	recs[2].ROI = 2.8
	recs[4].ROI = 2.95
	recs[5].ROI = 2.73
	return recs
}

// Package parse converts raw delimited text into normalized performance
// records. It is the single ingestion boundary: every field coercion and
// every row-drop decision happens here, so downstream code never sees a
// malformed value.
package parse

import (
	"encoding/csv"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/storepulse/internal/domain/models"
)

// Required header columns, in any order. The roi column is optional; any
// other column may be absent per-row but not from the header.
var requiredColumns = []string{"date", "store", "sales", "adspend", "orders"}

// Records parses raw CSV text (header row first) into normalized records.
//
// Per-row behavior:
//   - a row whose date fails to parse is dropped entirely
//   - sales/adspend/orders coerce to 0 when absent, empty, or non-numeric
//   - roi uses the supplied value when it is a valid nonzero number,
//     otherwise sales/adspend when adspend > 0, otherwise 0; a supplied
//     roi of 0 is indistinguishable from absent and is always recomputed
//
// The result is sorted ascending by date; rows on the same date keep their
// input order. Malformed rows never produce an error — only a missing or
// incomplete header does.
func Records(raw string) ([]models.PerformanceRecord, error) {
	r := csv.NewReader(strings.NewReader(raw))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty input: missing header row")
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	var records []models.PerformanceRecord
	for _, row := range rows[1:] {
		dateKey := strings.TrimSpace(field(row, cols["date"]))
		date, err := time.Parse(models.DateFormat, dateKey)
		if err != nil {
			continue
		}

		sales := coerce(field(row, cols["sales"]))
		adspend := coerce(field(row, cols["adspend"]))
		orders := coerce(field(row, cols["orders"]))

		roi := 0.0
		if idx, ok := cols["roi"]; ok {
			roi = coerce(field(row, idx))
		}
		if roi == 0 && adspend > 0 {
			roi = sales / adspend
		}

		records = append(records, models.PerformanceRecord{
			Date:    date,
			DateKey: dateKey,
			Store:   strings.TrimSpace(field(row, cols["store"])),
			Sales:   sales,
			AdSpend: adspend,
			Orders:  orders,
			ROI:     roi,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

// headerIndex maps lowercased header names to column positions and verifies
// the required columns are all present.
func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q in header", name)
		}
	}
	return cols, nil
}

// field returns the column at idx, or "" when the row is short.
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// coerce parses a numeric token, substituting 0 for anything that is not a
// finite number. It never fails a row for one bad field.
func coerce(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Package resources bundles data shipped inside the binary: the sample
// dataset loaded at startup so the dashboard has something to show before
// any external source is configured.
package resources

import (
	_ "embed"
)

// Embed the bundled sample dataset.
//
//go:embed data/sample.csv
var sampleCSV string

// SampleCSV returns the bundled sample dataset as raw CSV text.
func SampleCSV() string {
	return sampleCSV
}

// Package timeouts provides centralized timeout values for handler operations.
package timeouts

import (
	"os"
	"sync"
	"time"
)

// Default timeout values (used if ConfigureFromEnv finds nothing).
const (
	DefaultShort = 5 * time.Second
	DefaultLong  = 30 * time.Second
	DefaultFetch = 15 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	short = DefaultShort
	long  = DefaultLong
	fetch = DefaultFetch
)

// Short returns the timeout for simple in-memory operations.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Long returns the timeout for request-scoped work.
func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}

// Fetch returns the timeout for upstream CSV retrieval.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// SetFetch overrides the upstream fetch timeout (from app config).
func SetFetch(d time.Duration) {
	if d <= 0 {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fetch = d
}

// ConfigureFromEnv reads timeout overrides from environment variables and
// returns how many were applied.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	configured := 0

	if v := os.Getenv("TIMEOUT_SHORT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			short = d
			configured++
		}
	}
	if v := os.Getenv("TIMEOUT_LONG"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			long = d
			configured++
		}
	}
	if v := os.Getenv("TIMEOUT_FETCH"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			fetch = d
			configured++
		}
	}

	return configured
}

// Reset restores all timeouts to defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	short = DefaultShort
	long = DefaultLong
	fetch = DefaultFetch
}

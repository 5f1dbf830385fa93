// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
type AppConfig struct {
	// Dataset bootstrap configuration
	SampleData bool   // load the bundled sample dataset at startup (default: true)
	SourceURL  string // optional CSV URL fetched at startup after the sample load

	// Upstream fetch configuration
	FetchTimeout  time.Duration // HTTP timeout for CSV fetches (default: 15s)
	FetchMaxBytes int64         // cap on fetched/uploaded CSV body size (default: 8 MiB)

	// Static assets configuration
	StaticDir string // directory served under /static (presentation assets)
	StaticURL string // URL prefix for static assets (default: /static)
}

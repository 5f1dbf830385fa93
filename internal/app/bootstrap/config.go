// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "STOREPULSE"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: source_url, fetch_timeout, etc.
//   - Environment variables: STOREPULSE_SOURCE_URL, STOREPULSE_FETCH_TIMEOUT, etc.
//   - Command-line flags: --source_url, --fetch_timeout, etc.
var appConfigKeys = []config.AppKey{
	{Name: "sample_data", Default: true, Desc: "Load the bundled sample dataset at startup"},
	{Name: "source_url", Default: "", Desc: "CSV URL fetched at startup (replaces the sample dataset; empty to skip)"},
	{Name: "fetch_timeout", Default: "15s", Desc: "HTTP timeout for CSV fetches (e.g., 15s, 1m)"},
	{Name: "fetch_max_bytes", Default: 8 << 20, Desc: "Max CSV body size in bytes for fetches and uploads"},
	{Name: "static_dir", Default: "static", Desc: "Directory served under the static URL prefix"},
	{Name: "static_url", Default: "/static", Desc: "URL prefix for static assets"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, STOREPULSE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SampleData: appValues.Bool("sample_data"),
		SourceURL:  appValues.String("source_url"),

		FetchTimeout:  appValues.Duration("fetch_timeout", 15*time.Second),
		FetchMaxBytes: int64(appValues.Int("fetch_max_bytes")),

		StaticDir: appValues.String("static_dir"),
		StaticURL: appValues.String("static_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.SourceURL != "" {
		u, err := url.Parse(appCfg.SourceURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			logger.Error("invalid source URL", zap.String("source_url", appCfg.SourceURL))
			return fmt.Errorf("source_url must be an http(s) URL: %q", appCfg.SourceURL)
		}
	}

	if appCfg.FetchMaxBytes <= 0 {
		return fmt.Errorf("fetch_max_bytes must be positive, got %d", appCfg.FetchMaxBytes)
	}

	return nil
}

// internal/app/bootstrap/deps.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/storepulse/internal/app/store/dataset"
	"github.com/dalemusser/storepulse/internal/app/system/fetch"
	"github.com/dalemusser/storepulse/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Deps holds the backends for this WAFFLE app.
//
// This struct is created in ConnectDB and passed to subsequent lifecycle
// hooks: EnsureSchema, Startup, BuildHandler, and Shutdown. This service
// keeps everything in volatile memory for the session, so its "backends"
// are the in-memory dataset store and the HTTP client used to fetch CSV
// sources — there is no database.
type Deps struct {
	// Dataset is the owning store for the normalized record collection and
	// every derived view.
	Dataset *dataset.Store

	// Fetcher retrieves CSV bodies from external URLs.
	Fetcher *fetch.Client
}

// ConnectDB builds the app's backends.
//
// WAFFLE calls this after configuration is loaded but before EnsureSchema
// and Startup. The hook name comes from the framework; this app has no
// database, but this is still where connection-like resources are built.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	timeouts.SetFetch(appCfg.FetchTimeout)

	deps := Deps{
		Dataset: dataset.New(logger),
		Fetcher: fetch.New(appCfg.FetchTimeout, appCfg.FetchMaxBytes),
	}

	logger.Info("initialized in-memory dataset store",
		zap.Duration("fetch_timeout", appCfg.FetchTimeout),
		zap.Int64("fetch_max_bytes", appCfg.FetchMaxBytes),
	)

	return deps, nil
}

// EnsureSchema sets up indexes or schema as needed.
//
// The dataset lives in memory and has no schema to ensure; the hook stays
// in the lifecycle as a no-op.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}

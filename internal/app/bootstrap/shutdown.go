// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown is an optional hook invoked during WAFFLE's shutdown phase.
//
// It is called after the HTTP server has stopped accepting new requests
// and existing requests have been drained (or the shutdown timeout has
// elapsed). The dataset lives in memory and needs no flushing; the only
// cleanup is releasing the fetch client's idle connections.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if deps.Fetcher != nil {
		logger.Info("closing idle fetch connections")
		deps.Fetcher.CloseIdle()
	}
	return nil
}

// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/storepulse/internal/app/resources"
	"github.com/dalemusser/storepulse/internal/app/system/parse"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after backends are built but before the HTTP handler
// is constructed and requests are served.
//
// It seeds the dataset so the dashboard is never empty on first paint:
//  1. the bundled sample dataset, unless disabled via sample_data=false
//  2. the configured source_url, if any — fetched and swapped in on top of
//     the sample; a failed fetch logs a warning and keeps whatever is
//     already loaded, the same rule a manual refresh follows
//
// Returning a non-nil error aborts startup. A fetch failure here is
// deliberately NOT an error: the service still comes up with the sample
// (or empty) dataset and can be refreshed later.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if appCfg.SampleData {
		records, err := parse.Records(resources.SampleCSV())
		if err != nil {
			// The sample ships inside the binary; failing to parse it is a
			// build defect, not a runtime condition.
			logger.Error("bundled sample dataset is unparsable", zap.Error(err))
			return err
		}
		deps.Dataset.Replace(records, "sample")
	}

	if appCfg.SourceURL != "" {
		raw, err := deps.Fetcher.CSV(ctx, appCfg.SourceURL)
		if err != nil {
			logger.Warn("startup source fetch failed, keeping current dataset",
				zap.String("source_url", appCfg.SourceURL),
				zap.Error(err),
			)
			return nil
		}
		records, err := parse.Records(raw)
		if err != nil {
			logger.Warn("startup source unparsable, keeping current dataset",
				zap.String("source_url", appCfg.SourceURL),
				zap.Error(err),
			)
			return nil
		}
		deps.Dataset.Replace(records, appCfg.SourceURL)
	}

	return nil
}

// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	dashboardfeature "github.com/dalemusser/storepulse/internal/app/features/dashboard"
	healthfeature "github.com/dalemusser/storepulse/internal/app/features/health"
	ingestfeature "github.com/dalemusser/storepulse/internal/app/features/ingest"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup, and the Startup
// hook have completed. At this point the dataset store already holds the
// initial dataset.
//
// The surface is a JSON API plus static assets:
//   - /api/dashboard/*  read-only derived views + filter mutations
//   - /api/ingest/*     dataset replacement triggers
//   - /health, /ready   probes
//   - /static/*         presentation assets (charts, tables — all client-side)
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// ─────────────────────────────────────────────────────────────────────────
	// Routes
	// ─────────────────────────────────────────────────────────────────────────

	// Health check endpoints for load balancers and orchestrators.
	// Readiness is tied to the initial dataset load.
	healthHandler := healthfeature.NewHandler(deps.Dataset, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// Dashboard consumption API: derived views and filter mutations.
	dashboardHandler := dashboardfeature.NewHandler(deps.Dataset, logger)
	r.Mount("/api/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Ingestion triggers: refresh-from-URL and raw CSV upload.
	ingestHandler := ingestfeature.NewHandler(deps.Dataset, deps.Fetcher, appCfg.FetchMaxBytes, logger)
	r.Mount("/api/ingest", ingestfeature.Routes(ingestHandler))

	// Static assets with pre-compressed file support (gzip/brotli).
	// The dashboard front end lives here; the API above is its data source.
	r.Handle(appCfg.StaticURL+"/*", fileserver.Handler(appCfg.StaticURL, appCfg.StaticDir))

	return r, nil
}

// internal/app/features/ingest/handler.go
package ingest

import (
	"context"
	"io"
	"net/http"

	"github.com/dalemusser/storepulse/internal/app/store/dataset"
	"github.com/dalemusser/storepulse/internal/app/system/fetch"
	"github.com/dalemusser/storepulse/internal/app/system/jsonutil"
	"github.com/dalemusser/storepulse/internal/app/system/parse"
	"github.com/dalemusser/storepulse/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler serves the ingestion triggers: refresh-from-URL and raw CSV
// upload. A failed fetch or an unparsable dataset never disturbs the
// current snapshot — the previous normalized collection stays in effect
// and the failure is reported to the caller.
type Handler struct {
	Data     *dataset.Store
	Fetcher  *fetch.Client
	MaxBytes int64
	Log      *zap.Logger
}

// NewHandler creates a new ingest handler. maxBytes caps uploaded bodies.
func NewHandler(data *dataset.Store, fetcher *fetch.Client, maxBytes int64, logger *zap.Logger) *Handler {
	return &Handler{
		Data:     data,
		Fetcher:  fetcher,
		MaxBytes: maxBytes,
		Log:      logger,
	}
}

// RefreshInput is the body of POST /api/ingest/refresh.
type RefreshInput struct {
	URL string `json:"url"`
}

// Refresh handles POST /api/ingest/refresh: fetch the CSV at the given URL,
// parse it, and replace the dataset wholesale.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var input RefreshInput
	if err := jsonutil.Decode(r, &input); err != nil || input.URL == "" {
		jsonutil.BadRequest(w, "body must be {\"url\": \"...\"}")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Fetch())
	defer cancel()

	raw, err := h.Fetcher.CSV(ctx, input.URL)
	if err != nil {
		h.Log.Warn("dataset refresh failed, keeping current data",
			zap.String("url", input.URL),
			zap.Error(err),
		)
		jsonutil.BadGateway(w, "could not fetch dataset; current data kept")
		return
	}

	h.replace(w, raw, input.URL)
}

// Upload handles POST /api/ingest: the request body is the raw CSV text.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, h.MaxBytes+1))
	if err != nil {
		jsonutil.BadRequest(w, "could not read request body")
		return
	}
	if int64(len(body)) > h.MaxBytes {
		jsonutil.Error(w, http.StatusRequestEntityTooLarge, "dataset too large")
		return
	}

	h.replace(w, string(body), "upload")
}

// replace parses raw text and swaps the dataset. Parse-level failure of the
// whole input (missing header) keeps the previous collection.
func (h *Handler) replace(w http.ResponseWriter, raw, source string) {
	records, err := parse.Records(raw)
	if err != nil {
		h.Log.Warn("dataset unparsable, keeping current data",
			zap.String("source", source),
			zap.Error(err),
		)
		jsonutil.UnprocessableEntity(w, err.Error())
		return
	}

	snap := h.Data.Replace(records, source)
	jsonutil.OK(w, map[string]any{
		"version":     snap.Version.String(),
		"source":      snap.Source,
		"loadedAt":    snap.LoadedAt,
		"recordCount": len(snap.Records),
		"stores":      snap.Stores,
	})
}

package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alumni-sante/sondage-backend/internal/service/results"
)

// resultsService defines the minimal interface needed by ResultsHandler.
type resultsService interface {
	Results(ctx context.Context, rawFilters map[string][]string) (*results.Output, error)
}

// ResultsHandler serves the aggregated dashboard payload.
type ResultsHandler struct {
	svc resultsService
	log *slog.Logger
}

// NewResultsHandler creates a ResultsHandler.
func NewResultsHandler(svc resultsService, logger *slog.Logger) *ResultsHandler {
	return &ResultsHandler{svc: svc, log: logger.With("handler", "results")}
}

type resultsRequest struct {
	Filters map[string][]string `json:"filters"`
}

// Results handles POST /api/results. Filters come in the body; the response
// carries a strong ETag and an If-None-Match hit short-circuits to 304.
// A malformed body counts as "no filters" rather than an error.
func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	var req resultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req.Filters = nil
	}

	out, err := h.svc.Results(r.Context(), req.Filters)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("ETag", out.ETag)

	if match := r.Header.Get("If-None-Match"); match != "" && match == out.ETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(out.Body) //nolint:errcheck
}

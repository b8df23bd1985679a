package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/alumni-sante/sondage-backend/internal/domain"
)

// dataService defines the minimal interface needed by DataHandler.
type dataService interface {
	Records(ctx context.Context) ([]domain.SurveyResponse, error)
}

// DataHandler serves the raw normalized records, for the comparison form
// and any client-side exploration.
type DataHandler struct {
	svc dataService
	log *slog.Logger
}

// NewDataHandler creates a DataHandler.
func NewDataHandler(svc dataService, logger *slog.Logger) *DataHandler {
	return &DataHandler{svc: svc, log: logger.With("handler", "data")}
}

// Data handles GET /api/data.
func (h *DataHandler) Data(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.Records(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600, s-maxage=3600")
	writeJSON(w, http.StatusOK, records)
}

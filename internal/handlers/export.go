package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/satram-seva/registration-api/internal/report"
	"github.com/satram-seva/registration-api/internal/store"
)

type ExportHandler struct {
	store store.RegistrationStore
}

func NewExportHandler(st store.RegistrationStore) *ExportHandler {
	return &ExportHandler{store: st}
}

// ServeCSV streams the flattened registration list as a CSV download.
// Registered as a plain chi route behind the admin middleware.
func (h *ExportHandler) ServeCSV(w http.ResponseWriter, r *http.Request) {
	regs, err := h.store.ListAll(r.Context())
	if err != nil {
		http.Error(w, "Failed to load registrations", http.StatusServiceUnavailable)
		return
	}

	filename := fmt.Sprintf("registrations_export_%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := report.WriteCSV(w, regs); err != nil {
		log.Error().Err(err).Msg("csv export failed mid-stream")
	}
}

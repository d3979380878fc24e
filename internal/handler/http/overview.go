package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/internal/utils"
	"github.com/MKhiriev/portfolio-cms/models"
)

func (h *Handler) getOverview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	overview, err := h.services.ContentService.GetOverview(r.Context())
	if err != nil {
		log.Err(err).Msg("error fetching overview")
		writeServerError(w, "Failed to fetch overview")
		return
	}

	// nil marshals to JSON null, which the public page treats as
	// "section not configured yet"
	_, _ = utils.WriteJSON(w, overview, http.StatusOK)
}

func (h *Handler) updateOverview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var insert models.InsertOverview
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Invalid overview data"}, http.StatusBadRequest)
		return
	}

	overview, err := h.services.ContentService.UpdateOverview(r.Context(), insert)
	if err != nil {
		if writeValidationError(w, err, "Invalid overview data") {
			return
		}
		log.Err(err).Msg("error updating overview")
		writeServerError(w, "Failed to update overview")
		return
	}

	_, _ = utils.WriteJSON(w, overview, http.StatusOK)
}

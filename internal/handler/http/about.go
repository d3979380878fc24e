package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/internal/utils"
	"github.com/MKhiriev/portfolio-cms/models"
)

func (h *Handler) getAbout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	about, err := h.services.ContentService.GetAbout(r.Context())
	if err != nil {
		log.Err(err).Msg("error fetching about")
		writeServerError(w, "Failed to fetch about")
		return
	}

	_, _ = utils.WriteJSON(w, about, http.StatusOK)
}

func (h *Handler) updateAbout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var insert models.InsertAbout
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Invalid about data"}, http.StatusBadRequest)
		return
	}

	about, err := h.services.ContentService.UpdateAbout(r.Context(), insert)
	if err != nil {
		if writeValidationError(w, err, "Invalid about data") {
			return
		}
		log.Err(err).Msg("error updating about")
		writeServerError(w, "Failed to update about")
		return
	}

	_, _ = utils.WriteJSON(w, about, http.StatusOK)
}

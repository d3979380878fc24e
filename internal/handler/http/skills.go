package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/internal/store"
	"github.com/MKhiriev/portfolio-cms/internal/utils"
	"github.com/MKhiriev/portfolio-cms/models"
)

func (h *Handler) listSkills(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	skills, err := h.services.PortfolioService.ListSkills(r.Context())
	if err != nil {
		log.Err(err).Msg("error fetching skills")
		writeServerError(w, "Failed to fetch skills")
		return
	}

	_, _ = utils.WriteJSON(w, skills, http.StatusOK)
}

func (h *Handler) createSkill(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var insert models.InsertSkill
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Invalid skill data"}, http.StatusBadRequest)
		return
	}

	skill, err := h.services.PortfolioService.CreateSkill(r.Context(), insert)
	if err != nil {
		if writeValidationError(w, err, "Invalid skill data") {
			return
		}
		log.Err(err).Msg("error creating skill")
		writeServerError(w, "Failed to create skill")
		return
	}

	_, _ = utils.WriteJSON(w, skill, http.StatusCreated)
}

func (h *Handler) updateSkill(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var update models.SkillUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Invalid skill data"}, http.StatusBadRequest)
		return
	}

	skill, err := h.services.PortfolioService.UpdateSkill(r.Context(), id, update)
	if err != nil {
		if writeValidationError(w, err, "Invalid skill data") {
			return
		}
		if writeNotFound(w, err, store.ErrSkillNotFound, "Skill not found") {
			return
		}
		log.Err(err).Str("id", id).Msg("error updating skill")
		writeServerError(w, "Failed to update skill")
		return
	}

	_, _ = utils.WriteJSON(w, skill, http.StatusOK)
}

func (h *Handler) deleteSkill(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.services.PortfolioService.DeleteSkill(r.Context(), id); err != nil {
		if writeNotFound(w, err, store.ErrSkillNotFound, "Skill not found") {
			return
		}
		log.Err(err).Str("id", id).Msg("error deleting skill")
		writeServerError(w, "Failed to delete skill")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Skill deleted successfully"}, http.StatusOK)
}

func (h *Handler) reorderSkills(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.ReorderSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Invalid skill data"}, http.StatusBadRequest)
		return
	}

	if err := h.services.PortfolioService.ReorderSkills(r.Context(), request.Skills); err != nil {
		log.Err(err).Msg("error reordering skills")
		writeServerError(w, "Failed to update skills order")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Skills order updated successfully"}, http.StatusOK)
}

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

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	projects, err := h.services.PortfolioService.ListProjects(r.Context())
	if err != nil {
		log.Err(err).Msg("error fetching projects")
		writeServerError(w, "Failed to fetch projects")
		return
	}

	_, _ = utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) listFeaturedProjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	projects, err := h.services.PortfolioService.ListFeaturedProjects(r.Context())
	if err != nil {
		log.Err(err).Msg("error fetching featured projects")
		writeServerError(w, "Failed to fetch featured projects")
		return
	}

	_, _ = utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var insert models.InsertProject
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Invalid project data"}, http.StatusBadRequest)
		return
	}

	project, err := h.services.PortfolioService.CreateProject(r.Context(), insert)
	if err != nil {
		if writeValidationError(w, err, "Invalid project data") {
			return
		}
		log.Err(err).Msg("error creating project")
		writeServerError(w, "Failed to create project")
		return
	}

	_, _ = utils.WriteJSON(w, project, http.StatusCreated)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var update models.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Invalid project data"}, http.StatusBadRequest)
		return
	}

	project, err := h.services.PortfolioService.UpdateProject(r.Context(), id, update)
	if err != nil {
		if writeValidationError(w, err, "Invalid project data") {
			return
		}
		if writeNotFound(w, err, store.ErrProjectNotFound, "Project not found") {
			return
		}
		log.Err(err).Str("id", id).Msg("error updating project")
		writeServerError(w, "Failed to update project")
		return
	}

	_, _ = utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.services.PortfolioService.DeleteProject(r.Context(), id); err != nil {
		if writeNotFound(w, err, store.ErrProjectNotFound, "Project not found") {
			return
		}
		log.Err(err).Str("id", id).Msg("error deleting project")
		writeServerError(w, "Failed to delete project")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Project deleted successfully"}, http.StatusOK)
}

func (h *Handler) reorderProjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.ReorderProjectsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Invalid project data"}, http.StatusBadRequest)
		return
	}

	if err := h.services.PortfolioService.ReorderProjects(r.Context(), request.Projects); err != nil {
		log.Err(err).Msg("error reordering projects")
		writeServerError(w, "Failed to update projects order")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Projects order updated successfully"}, http.StatusOK)
}

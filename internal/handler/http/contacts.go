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

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	contacts, err := h.services.ContactService.ListContacts(r.Context())
	if err != nil {
		log.Err(err).Msg("error fetching contacts")
		writeServerError(w, "Failed to fetch contacts")
		return
	}

	_, _ = utils.WriteJSON(w, contacts, http.StatusOK)
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var insert models.InsertContact
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Invalid contact data"}, http.StatusBadRequest)
		return
	}

	contact, err := h.services.ContactService.SubmitContact(r.Context(), insert)
	if err != nil {
		if writeValidationError(w, err, "Invalid contact data") {
			return
		}
		log.Err(err).Msg("error creating contact")
		writeServerError(w, "Failed to send message")
		return
	}

	_, _ = utils.WriteJSON(w, contact, http.StatusCreated)
}

func (h *Handler) markContactRead(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	contact, err := h.services.ContactService.MarkContactRead(r.Context(), id)
	if err != nil {
		if writeNotFound(w, err, store.ErrContactNotFound, "Contact not found") {
			return
		}
		log.Err(err).Str("id", id).Msg("error marking contact as read")
		writeServerError(w, "Failed to mark contact as read")
		return
	}

	_, _ = utils.WriteJSON(w, contact, http.StatusOK)
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/internal/service"
	"github.com/MKhiriev/portfolio-cms/internal/utils"
	"github.com/MKhiriev/portfolio-cms/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Login failed"}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			_, _ = utils.WriteJSON(w, models.LoginResponse{
				Success: false,
				Message: "Invalid credentials",
			}, http.StatusUnauthorized)
			return
		}
		log.Err(err).Msg("unexpected error occurred during login")
		writeServerError(w, "Login failed")
		return
	}

	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    &user,
	}, http.StatusOK)
}

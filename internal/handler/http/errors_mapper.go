// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/portfolio-cms/internal/utils"
	"github.com/MKhiriev/portfolio-cms/internal/validators"
	"github.com/MKhiriev/portfolio-cms/models"
)

// validationResponse is the 400 body the admin panel expects for schema
// failures: a summary message plus the per-field violations.
type validationResponse struct {
	Message string                  `json:"message"`
	Errors  []validators.FieldError `json:"errors"`
}

// writeValidationError writes the 400 payload when err is a schema
// validation failure. It reports whether err was handled.
func writeValidationError(w http.ResponseWriter, err error, message string) bool {
	var validationErr *validators.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}

	_, _ = utils.WriteJSON(w, validationResponse{Message: message, Errors: validationErr.Fields}, http.StatusBadRequest)
	return true
}

// writeNotFound writes the 404 payload when err matches sentinel.
// It reports whether err was handled.
func writeNotFound(w http.ResponseWriter, err, sentinel error, message string) bool {
	if !errors.Is(err, sentinel) {
		return false
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusNotFound)
	return true
}

// writeServerError writes the endpoint's 500 fallback payload.
func writeServerError(w http.ResponseWriter, message string) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusInternalServerError)
}
